package jwt_test

import (
	"testing"

	"frontdesk/config"
	"frontdesk/infras/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "frontdesk"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestService_GenerateAndValidate(t *testing.T) {
	svc := newService()

	pair, err := svc.GenerateTokenPair("S1001", "manager@grandhotel.com", "manager")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "S1001", claims.UserID)
	assert.Equal(t, "manager", claims.Role)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("garbage", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestService_RefreshTokens(t *testing.T) {
	svc := newService()

	pair, err := svc.GenerateTokenPair("S1002", "desk@grandhotel.com", "front_desk")
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "front_desk", claims.Role)

	_, err = svc.RefreshTokens(pair.AccessToken)
	assert.Error(t, err)
}

func TestService_ValidateToken_Rejects(t *testing.T) {
	svc := newService()

	pair, err := svc.GenerateTokenPair("S1001", "manager@grandhotel.com", "manager")
	require.NoError(t, err)

	other := &config.Config{}
	other.App.Name = "another-hotel"
	other.JWT.AccessSecret = "access-secret"
	other.JWT.RefreshSecret = "refresh-secret"
	other.JWT.AccessExpireMin = 15

	_, err = jwt.New(other).ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	expired := &config.Config{}
	expired.App.Name = "frontdesk"
	expired.JWT.AccessSecret = "access-secret"
	expired.JWT.RefreshSecret = "refresh-secret"
	expired.JWT.AccessExpireMin = -10
	expired.JWT.RefreshExpireMin = 60

	stale, err := jwt.New(expired).GenerateTokenPair("S1001", "manager@grandhotel.com", "manager")
	require.NoError(t, err)

	_, err = svc.ValidateToken(stale.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.TokenType("session"))
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer abc.def", want: "abc.def"},
		{header: "bearer abc.def", want: "abc.def"},
		{header: "  Bearer   abc.def ", want: "abc.def"},
		{header: "Basic abc", wantErr: jwt.ErrHeaderFormat},
		{header: "Bearer", wantErr: jwt.ErrHeaderFormat},
		{header: "Bearer ", wantErr: jwt.ErrHeaderFormat},
		{header: "", wantErr: jwt.ErrMissingHeader},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
