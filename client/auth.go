package client

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Session storage keys. A live session and a mock session are stored under
// separate keys so a stale mock session never shadows a real one.
const (
	sessionKey     = "session"
	mockSessionKey = "mock-admin-session"
)

// Demo credentials accepted by the mock sign-in when the service is
// unreachable. The mock session grants nothing server-side.
const (
	mockAdminEmail    = "admin@example.com"
	mockAdminPassword = "admin123"
	mockSessionTTL    = time.Hour
)

// ErrInvalidCredentials is returned when sign-in is rejected, including
// mock sign-in with credentials other than the demo pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// signInRequest mirrors the service's sign-in body.
type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signInResponse mirrors the service's sign-in payload.
type signInResponse struct {
	AccessToken          string    `json:"access_token"`
	RefreshToken         string    `json:"refresh_token"`
	TokenType            string    `json:"token_type"`
	AccessTokenExpiresAt time.Time `json:"access_token_expires_at"`
	User                 User      `json:"user"`
}

// AuthAPI handles sign-in, sign-out and session persistence. A successful
// remote sign-in stores the session and arms the Client's bearer token;
// when the service is unreachable, the demo credentials mint a local mock
// session under the mock-admin-session key instead.
type AuthAPI struct {
	client   *Client
	sessions SessionStore
}

// NewAuthAPI creates the auth facade over the given session store.
func NewAuthAPI(c *Client, sessions SessionStore) *AuthAPI {
	return &AuthAPI{client: c, sessions: sessions}
}

// SignIn authenticates with the service. Rejected credentials return the
// server's error even when a fallback would be possible; only an
// unreachable service triggers the mock path.
func (a *AuthAPI) SignIn(ctx context.Context, email, password string) (Result[Session], error) {
	var resp signInResponse
	err := a.client.Post(ctx, "/auth/signin", signInRequest{Email: email, Password: password}, &resp)
	if err == nil {
		session := Session{
			AccessToken:  resp.AccessToken,
			RefreshToken: resp.RefreshToken,
			TokenType:    resp.TokenType,
			ExpiresAt:    resp.AccessTokenExpiresAt,
			User:         resp.User,
		}
		if storeErr := a.storeSession(sessionKey, session); storeErr != nil {
			a.client.logger.Warn("failed to persist session", zap.Error(storeErr))
		}
		_ = a.sessions.Delete(mockSessionKey)
		a.client.SetToken(session.AccessToken)
		return live(session), nil
	}

	if !isRemoteDown(err) {
		var zero Result[Session]
		return zero, err
	}

	if email != mockAdminEmail || password != mockAdminPassword {
		var zero Result[Session]
		return zero, ErrInvalidCredentials
	}

	a.client.logger.Warn("auth backend unreachable, using mock admin session", zap.Error(err))
	session := Session{
		AccessToken: "mock-admin-token",
		TokenType:   "Bearer",
		ExpiresAt:   time.Now().UTC().Add(mockSessionTTL),
		User: User{
			ID:          "mock-admin",
			Email:       mockAdminEmail,
			DisplayName: "Demo Admin",
			Role:        "admin",
		},
		Mock: true,
	}
	if storeErr := a.storeSession(mockSessionKey, session); storeErr != nil {
		a.client.logger.Warn("failed to persist mock session", zap.Error(storeErr))
	}
	return fallback(session), nil
}

// GetSession returns the stored session, if any. A live session wins over a
// mock one; expired sessions are dropped.
func (a *AuthAPI) GetSession() (*Session, bool) {
	for _, key := range []string{sessionKey, mockSessionKey} {
		raw, ok := a.sessions.Get(key)
		if !ok {
			continue
		}
		var session Session
		if err := json.Unmarshal(raw, &session); err != nil {
			_ = a.sessions.Delete(key)
			continue
		}
		if !session.ExpiresAt.IsZero() && time.Now().After(session.ExpiresAt) {
			_ = a.sessions.Delete(key)
			continue
		}
		return &session, true
	}
	return nil, false
}

// SignOut revokes the remote session best-effort and clears stored
// sessions either way.
func (a *AuthAPI) SignOut(ctx context.Context) error {
	var remoteErr error
	if session, ok := a.GetSession(); ok && !session.Mock {
		remoteErr = a.client.Post(ctx, "/auth/signout", nil, nil)
	}
	_ = a.sessions.Delete(sessionKey)
	_ = a.sessions.Delete(mockSessionKey)
	a.client.SetToken("")
	if remoteErr != nil && isRemoteDown(remoteErr) {
		a.client.logger.Warn("remote sign-out failed", zap.Error(remoteErr))
		return nil
	}
	return remoteErr
}

func (a *AuthAPI) storeSession(key string, session Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return a.sessions.Set(key, raw)
}
