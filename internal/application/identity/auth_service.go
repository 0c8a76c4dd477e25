package identity

import (
	"context"

	"go.uber.org/zap"

	"github.com/folio/backend/internal/domain/identity"
	"github.com/folio/backend/internal/domain/shared"
	"github.com/folio/backend/internal/infrastructure/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service. blacklist may be nil
// when sign-out revocation is not configured.
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService, blacklist auth.TokenBlacklist, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// SignIn authenticates an account and issues a token pair. Unknown emails and
// wrong passwords produce the same error so probing is uninformative.
func (s *AuthService) SignIn(ctx context.Context, req SignInRequest) (*SignInResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Warn("sign-in for unknown email", zap.String("email", req.Email))
		return nil, shared.ErrInvalidCredentials
	}

	if !user.Active {
		s.logger.Warn("sign-in for deactivated account", zap.String("email", user.Email))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("sign-in with invalid password", zap.String("email", user.Email))
		return nil, shared.ErrInvalidCredentials
	}

	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	})
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to issue tokens")
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		// the sign-in already succeeded; losing the login stamp is tolerable
		s.logger.Error("failed to record login", zap.Error(err))
	}

	s.logger.Info("user signed in", zap.String("user_id", user.ID.String()))
	return toSignInResponse(pair, user), nil
}

// SignOut revokes the presented access token for its remaining lifetime
func (s *AuthService) SignOut(ctx context.Context, accessToken string) error {
	claims, err := s.jwtService.ValidateAccessToken(accessToken)
	if err != nil {
		return shared.ErrUnauthorized
	}
	if s.blacklist == nil {
		return nil
	}

	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("token revocation failed", zap.Error(err))
		return shared.NewDomainError("INTERNAL", "Failed to revoke token")
	}
	return nil
}

// Refresh exchanges a valid refresh token for a fresh pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*SignInResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if !user.Active {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	})
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to issue tokens")
	}
	return toSignInResponse(pair, user), nil
}

// GetUser returns the account for an authenticated subject
func (s *AuthService) GetUser(ctx context.Context, claims *auth.Claims) (*UserResponse, error) {
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// EnsureAdminAccount creates the bootstrap admin account when no account with
// the configured email exists yet. Called once on startup.
func (s *AuthService) EnsureAdminAccount(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil
	}

	user, err := identity.NewUser(email, password, identity.RoleAdmin)
	if err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}
	s.logger.Info("bootstrap admin account created", zap.String("email", user.Email))
	return nil
}
