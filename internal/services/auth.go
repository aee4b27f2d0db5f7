package services

import (
	"github.com/antoniuk-oleksandr/blogs-app/internal/config"
	"github.com/antoniuk-oleksandr/blogs-app/internal/models"
	"github.com/antoniuk-oleksandr/blogs-app/internal/token"
	"github.com/antoniuk-oleksandr/blogs-app/internal/utils"
	"github.com/antoniuk-oleksandr/blogs-app/pkg/logger"
	"gorm.io/gorm"
)

// AuthService orchestrates registration, login, token refresh and logout.
// Signing and claims handling are pure; the revocation store is the only
// shared mutable state and pushes all exclusion down to the database.
type AuthService struct {
	users   *UserService
	revoked *RevokedTokenStore
	signer  *token.Signer
	issuer  *token.Issuer
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	signer := token.NewSigner(jwtCfg.Secret)
	return &AuthService{
		users:   NewUserService(db),
		revoked: NewRevokedTokenStore(db),
		signer:  signer,
		issuer:  token.NewIssuer(signer, jwtCfg.AccessTTL(), jwtCfg.RefreshTTL()),
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Register creates a new account and returns a token pair for immediate use.
func (s *AuthService) Register(req *RegisterRequest) (*token.TokenPair, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(&CreateUserCommand{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return nil, err
	}

	return s.issuer.IssuePair(user)
}

// Login authenticates by username or email and returns a token pair. Lookup
// failures and password mismatches are indistinguishable to the caller.
func (s *AuthService) Login(req *LoginRequest) (*token.TokenPair, error) {
	user, err := s.users.FindByUsernameOrEmail(req.UsernameOrEmail)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issuer.IssuePair(user)
}

// Refresh exchanges a valid refresh token for a new access token. The checks
// run in a fixed order: revocation lookup first, then signature and expiry,
// then claim extraction, then the type tag. Every rejection surfaces as
// ErrUnauthorized so the specific failing check is not observable.
func (s *AuthService) Refresh(rawToken string) (string, error) {
	tokenHash := utils.HashToken(rawToken)

	revoked, err := s.revoked.IsRevoked(tokenHash)
	if err != nil {
		return "", err
	}
	if revoked {
		logger.Warn().Msg("refresh rejected: token revoked")
		return "", ErrUnauthorized
	}

	if !s.signer.Verify(rawToken) {
		logger.Warn().Msg("refresh rejected: invalid or expired token")
		return "", ErrUnauthorized
	}

	claims, err := s.signer.ParseClaims(rawToken)
	if err != nil {
		logger.Warn().Msg("refresh rejected: unparsable claims")
		return "", ErrUnauthorized
	}

	if claims["type"] != token.TypeRefresh {
		logger.Warn().Msg("refresh rejected: wrong token type")
		return "", ErrUnauthorized
	}

	subject, _ := claims["sub"].(string)

	// The new access token carries the identity snapshot from the refresh
	// token, not live user state.
	accessClaims := map[string]interface{}{
		"id":                claims["id"],
		"username":          claims["username"],
		"email":             claims["email"],
		"profilePictureUrl": claims["profilePictureUrl"],
		"type":              token.TypeAccess,
	}

	return s.issuer.IssueAccess(subject, accessClaims)
}

// Logout revokes a refresh token before its natural expiry. The revocation
// record inherits the token's own exp claim, so it is deleted once the token
// could no longer be replayed anyway. A token that cannot be parsed cannot be
// meaningfully revoked and is rejected.
func (s *AuthService) Logout(rawToken string) (*models.RevokedToken, error) {
	claims, err := s.signer.ParseClaims(rawToken)
	if err != nil {
		return nil, ErrUnauthorized
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrUnauthorized
	}

	return s.revoked.Save(utils.HashToken(rawToken), exp.Time)
}

// Signer exposes the verifier for the HTTP auth middleware.
func (s *AuthService) Signer() *token.Signer {
	return s.signer
}
