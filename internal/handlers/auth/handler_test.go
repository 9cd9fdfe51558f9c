package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/auth/model/dto"
	staffDto "frontdesk/internal/domains/staff/model/dto"
	"frontdesk/internal/handlers/auth"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	login   func(req dto.LoginRequest) (dto.LoginResponse, error)
	changed string
}

func (f *fakeAuth) Login(_ context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	return f.login(req)
}

func (f *fakeAuth) RefreshToken(_ context.Context, _ dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error) {
	return dto.RefreshTokenResponse{}, failure.Unauthorized("refresh token expired")
}

func (f *fakeAuth) Me(_ context.Context, staffID string) (staffDto.StaffResponse, error) {
	return staffDto.StaffResponse{ID: staffID}, nil
}

func (f *fakeAuth) ChangePassword(_ context.Context, _ dto.ChangePasswordRequest, staffID string) (notify.Notification, error) {
	f.changed = staffID

	return notify.Notification{Title: "Password changed"}, nil
}

func serve(t *testing.T, svc *fakeAuth, req *http.Request) (int, map[string]any) {
	t.Helper()

	handler := auth.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandler_Login(t *testing.T) {
	svc := &fakeAuth{login: func(req dto.LoginRequest) (dto.LoginResponse, error) {
		if req.Password != "password123" {
			return dto.LoginResponse{}, failure.Unauthorized("invalid email or password")
		}

		res := dto.LoginResponse{Staff: staffDto.StaffResponse{ID: "S0001"}}
		res.AccessToken = "access"

		return res, nil
	}}

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantKey  string
	}{
		{name: "valid credentials", body: `{"email":"manager@hotel.com","password":"password123"}`, wantCode: http.StatusOK, wantKey: "data"},
		{name: "wrong password", body: `{"email":"manager@hotel.com","password":"nope"}`, wantCode: http.StatusUnauthorized, wantKey: "error"},
		{name: "invalid email", body: `{"email":"manager","password":"password123"}`, wantCode: http.StatusBadRequest, wantKey: "error"},
		{name: "empty body", body: ``, wantCode: http.StatusBadRequest, wantKey: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))

			code, body := serve(t, svc, req)

			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, body, tt.wantKey)
		})
	}
}

func TestHandler_RefreshTokenRejected(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{"refresh_token":"stale"}`))

	code, body := serve(t, &fakeAuth{}, req)

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "refresh token expired", body["error"])
}

func TestHandler_Me(t *testing.T) {
	code, body := serve(t, &fakeAuth{}, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "missing staff identity", body["error"])

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, "S0002"))

	code, body = serve(t, &fakeAuth{}, req)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "S0002", body["data"].(map[string]any)["id"])
}

func TestHandler_ChangePassword(t *testing.T) {
	svc := &fakeAuth{}
	payload := `{"current_password":"password123","new_password":"frontdesk-2024","confirm_password":"frontdesk-2024"}`

	req := httptest.NewRequest(http.MethodPut, "/auth/password", strings.NewReader(payload))
	req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, "S0001"))

	code, body := serve(t, svc, req)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "S0001", svc.changed)
	assert.NotContains(t, body, "data")
	assert.Equal(t, "Password changed", body["notification"].(map[string]any)["title"])
}
