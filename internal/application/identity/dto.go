package identity

import (
	"time"

	"github.com/folio/backend/internal/domain/identity"
	"github.com/folio/backend/internal/infrastructure/auth"
)

// SignInRequest is the input for signing in
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the input for refreshing a token pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserResponse is the wire representation of an account
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name,omitempty"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// ToUserResponse maps a user to its wire representation
func ToUserResponse(u *identity.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		LastLoginAt: u.LastLoginAt,
	}
}

// SignInResponse carries the issued tokens and the signed-in account
type SignInResponse struct {
	AccessToken           string        `json:"access_token"`
	RefreshToken          string        `json:"refresh_token"`
	TokenType             string        `json:"token_type"`
	AccessTokenExpiresAt  time.Time     `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time     `json:"refresh_token_expires_at"`
	User                  *UserResponse `json:"user"`
}

func toSignInResponse(pair *auth.TokenPair, user *identity.User) *SignInResponse {
	return &SignInResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		TokenType:             pair.TokenType,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		User:                  ToUserResponse(user),
	}
}
