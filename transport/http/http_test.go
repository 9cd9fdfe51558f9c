package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/otel/mocks"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	server "frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newServer(t *testing.T) *server.HTTP {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "frontdesk"
	cfg.App.APIKey = "internal-key"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.Server.Env = constant.ServerEnvDevelopment
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	cfg.Server.Shutdown.CleanupPeriodSeconds = 1

	policy, err := permissions.Get()
	require.NoError(t, err)

	tracer := mocks.NewOtel()
	app := middleware.NewAppMiddleware(tracer, cfg, cache.NewMemoryCache(tracer))
	auth := middleware.NewAuthRoleMiddleware(jwt.New(cfg), tracer, policy, cfg)

	return server.New(cfg, router.New(router.DomainHandlers{}), app, auth)
}

func TestHTTP_Handler(t *testing.T) {
	srv := newServer(t)
	handler := srv.Handler()

	assert.Equal(t, server.ServerStateReady, srv.State())

	tests := []struct {
		name        string
		path        string
		header      map[string]string
		wantCode    int
		wantKey     string
		wantMessage string
	}{
		{name: "health is public", path: "/health", wantCode: http.StatusOK, wantKey: "message", wantMessage: constant.ResponseHealthy},
		{name: "api needs a token", path: "/v1/rooms", wantCode: http.StatusUnauthorized, wantKey: "error", wantMessage: "Missing authorization header"},
		{
			name:        "unknown route",
			path:        "/v1/ballroom",
			header:      map[string]string{constant.RequestHeaderAPIKey: "internal-key"},
			wantCode:    http.StatusNotFound,
			wantKey:     "message",
			wantMessage: constant.ResponseErrorRouteNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for key, value := range tt.header {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMessage, body[tt.wantKey])
		})
	}
}

func TestHTTP_ServeStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	srv := newServer(t)

	cleaned := false
	srv.OnShutdown(func() { cleaned = true })

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	require.NoError(t, srv.Serve(ctx))
	assert.True(t, cleaned)
	assert.Equal(t, server.ServerStateInCleanupPeriod, srv.State())
}
