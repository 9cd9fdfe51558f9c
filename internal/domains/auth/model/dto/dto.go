package dto

import (
	"strings"
	"time"

	"frontdesk/infras/jwt"
	staffDto "frontdesk/internal/domains/staff/model/dto"
)

const tokenTypeBearer = "Bearer"

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Normalize trims the email so a stray space pasted with it does not fail the lookup.
func (l *LoginRequest) Normalize() {
	l.Email = strings.TrimSpace(l.Email)
}

// Tokens is the credential part shared by the login and refresh responses.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (t *Tokens) FromTokenPair(tokenPair *jwt.TokenPair) {
	t.AccessToken = tokenPair.AccessToken
	t.RefreshToken = tokenPair.RefreshToken
	t.TokenType = tokenTypeBearer
	t.ExpiresIn = tokenPair.ExpiresIn
}

type LoginResponse struct {
	Tokens
	Staff staffDto.StaffResponse `json:"staff"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	Tokens
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// Audit fields are filled by shared.TransformFields.
type (
	UpdateLastLoginRequest struct {
		LastLogin time.Time `db:"last_login"`
	}

	UpdatePasswordRequest struct {
		Password string `db:"password"`
	}
)
