package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/otel/mocks"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "frontdesk"
	cfg.App.APIKey = "internal-key"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 5
	cfg.JWT.RefreshExpireMin = 10

	return cfg
}

func ok(w http.ResponseWriter, r *http.Request) {
	if role, _ := r.Context().Value(constant.ContextKeyUserRole).(string); role != "" {
		w.Header().Set("X-Role", role)
	}

	w.WriteHeader(http.StatusOK)
}

func securedRouter(t *testing.T, cfg *config.Config, tokens jwt.JWT) *chi.Mux {
	t.Helper()

	policy, err := permissions.Get()
	require.NoError(t, err)

	auth := middleware.NewAuthRoleMiddleware(tokens, mocks.NewOtel(), policy, cfg)

	r := chi.NewRouter()
	r.Use(auth.APIKey, auth.Auth, auth.RBAC)

	r.Post("/v1/auth/login", ok)
	r.Route("/v1/staff", func(r chi.Router) {
		r.Get("/", ok)
		r.Delete("/{id}", ok)
	})
	r.Get("/v1/guests", ok)

	return r
}

func TestAuthRole(t *testing.T) {
	cfg := testConfig()
	tokens := jwt.New(cfg)

	manager, err := tokens.GenerateTokenPair("S0001", "manager@hotel.test", constant.RoleManager)
	require.NoError(t, err)

	clerk, err := tokens.GenerateTokenPair("S0002", "desk@hotel.test", constant.RoleFrontDesk)
	require.NoError(t, err)

	router := securedRouter(t, cfg, tokens)

	tests := []struct {
		name     string
		method   string
		path     string
		header   map[string]string
		wantCode int
		wantRole string
	}{
		{
			name:     "public route without token",
			method:   http.MethodPost,
			path:     "/v1/auth/login",
			wantCode: http.StatusOK,
		},
		{
			name:     "missing token",
			method:   http.MethodGet,
			path:     "/v1/guests",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "not a bearer token",
			method:   http.MethodGet,
			path:     "/v1/guests",
			header:   map[string]string{constant.RequestHeaderAuthorization: "Token " + clerk.AccessToken},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "refresh token is not an access token",
			method:   http.MethodGet,
			path:     "/v1/guests",
			header:   map[string]string{constant.RequestHeaderAuthorization: "Bearer " + clerk.RefreshToken},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "front desk reads guests",
			method:   http.MethodGet,
			path:     "/v1/guests",
			header:   map[string]string{constant.RequestHeaderAuthorization: "Bearer " + clerk.AccessToken},
			wantCode: http.StatusOK,
			wantRole: constant.RoleFrontDesk,
		},
		{
			name:     "front desk cannot remove staff",
			method:   http.MethodDelete,
			path:     "/v1/staff/S0003",
			header:   map[string]string{constant.RequestHeaderAuthorization: "Bearer " + clerk.AccessToken},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "manager removes staff",
			method:   http.MethodDelete,
			path:     "/v1/staff/S0003",
			header:   map[string]string{constant.RequestHeaderAuthorization: "Bearer " + manager.AccessToken},
			wantCode: http.StatusOK,
			wantRole: constant.RoleManager,
		},
		{
			name:     "manager lists staff without trailing slash",
			method:   http.MethodGet,
			path:     "/v1/staff",
			header:   map[string]string{constant.RequestHeaderAuthorization: "Bearer " + manager.AccessToken},
			wantCode: http.StatusOK,
			wantRole: constant.RoleManager,
		},
		{
			name:     "internal api key skips token",
			method:   http.MethodDelete,
			path:     "/v1/staff/S0003",
			header:   map[string]string{constant.RequestHeaderAPIKey: "internal-key"},
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong api key",
			method:   http.MethodGet,
			path:     "/v1/guests",
			header:   map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.header {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRole, rec.Header().Get("X-Role"))
		})
	}
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	otel := mocks.NewOtel()
	app := middleware.NewAppMiddleware(otel, cfg, cache.NewMemoryCache(otel))
	handler := chiMiddleware.RealIP(app.RateLimit()(http.HandlerFunc(ok)))

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, ip+", 10.0.0.1")
		req.Header.Set(constant.RequestHeaderUserAgent, "front-desk-tablet")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec
	}

	first := send("203.0.113.7")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get(constant.RequestHeaderRateLimit))
	assert.Equal(t, "1", first.Header().Get(constant.RequestHeaderRateLimitRemaining))

	second := send("203.0.113.7")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get(constant.RequestHeaderRateLimitRemaining))

	limited := send("203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "60", limited.Header().Get(constant.RequestHeaderRetryAfter))

	assert.Equal(t, http.StatusOK, send("198.51.100.2").Code)
}

func TestRateLimit_Login(t *testing.T) {
	cfg := testConfig()
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 100
	cfg.App.RateLimiter.WindowSeconds = 60
	cfg.App.RateLimiter.LoginMaxAttempts = 2
	cfg.App.RateLimiter.LoginWindowSeconds = 300

	otel := mocks.NewOtel()
	app := middleware.NewAppMiddleware(otel, cfg, cache.NewMemoryCache(otel))
	handler := app.RateLimit()(http.HandlerFunc(ok))

	login := func(agent string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:52100"
		req.Header.Set(constant.RequestHeaderUserAgent, agent)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, login("agent-1"))
	assert.Equal(t, http.StatusOK, login("agent-2"))
	assert.Equal(t, http.StatusTooManyRequests, login("agent-3"))

	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	req.RemoteAddr = "203.0.113.7:52100"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	otel := mocks.NewOtel()
	app := middleware.NewAppMiddleware(otel, testConfig(), cache.NewMemoryCache(otel))
	handler := app.RateLimit()(http.HandlerFunc(ok))

	for range 5 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
	}
}

func TestTracing(t *testing.T) {
	otel := &mocks.Otel{}
	app := middleware.NewAppMiddleware(otel, testConfig(), cache.NewMemoryCache(otel))

	r := chi.NewRouter()
	r.Use(app.Tracing)
	r.Get("/v1/rooms/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms/999", nil))

	scope := otel.Scope("GET /v1/rooms/999")
	require.NotNil(t, scope)

	assert.True(t, scope.Ended)
	assert.Equal(t, "GET /v1/rooms/{id}", scope.Name)
	assert.Equal(t, http.StatusNotFound, scope.Attributes["http.status_code"])
	assert.Equal(t, "/v1/rooms/{id}", scope.Attributes["http.route"])
}
