package dto_test

import (
	"encoding/json"
	"strings"
	"testing"

	"frontdesk/infras/jwt"
	"frontdesk/internal/domains/auth/model/dto"
	"frontdesk/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, int64(900), response.ExpiresIn)
	assert.Equal(t, "Bearer", response.TokenType)
}

func TestLoginResponse_JSONIsFlat(t *testing.T) {
	var response dto.LoginResponse
	response.FromTokenPair(&jwt.TokenPair{AccessToken: "a", RefreshToken: "r", ExpiresIn: 60})

	body, err := json.Marshal(response)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "a", decoded["access_token"])
	assert.Equal(t, "Bearer", decoded["token_type"])
	assert.Contains(t, decoded, "staff")
	assert.NotContains(t, decoded, "Tokens")
}

func TestLoginRequest_Normalize(t *testing.T) {
	req := dto.LoginRequest{Email: "  sarah.manager@hotel.test \n", Password: " keep spaces "}
	req.Normalize()

	assert.Equal(t, "sarah.manager@hotel.test", req.Email)
	assert.Equal(t, " keep spaces ", req.Password)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestChangePasswordRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"current_password":"frontdesk123","new_password":"n3w-secret","confirm_password":"n3w-secret"}`},
		{name: "mismatched confirmation", body: `{"current_password":"frontdesk123","new_password":"n3w-secret","confirm_password":"other-secret"}`, wantErr: true},
		{name: "too short", body: `{"current_password":"frontdesk123","new_password":"short","confirm_password":"short"}`, wantErr: true},
		{name: "longer than bcrypt accepts", body: `{"current_password":"frontdesk123","new_password":"` + strings.Repeat("x", 73) + `","confirm_password":"` + strings.Repeat("x", 73) + `"}`, wantErr: true},
		{name: "unchanged", body: `{"current_password":"frontdesk123","new_password":"frontdesk123","confirm_password":"frontdesk123"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.ChangePasswordRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
