package token

import (
	"strconv"
	"time"

	"github.com/antoniuk-oleksandr/blogs-app/internal/models"
	"github.com/google/uuid"
)

// Token type tags embedded in the "type" claim.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// TokenPair is one short-lived access token plus one long-lived refresh
// token issued together. It is never stored server-side.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Issuer mints token pairs with embedded user claims. Each token gets its own
// random JTI as the signed subject, so the credential's subject is never the
// user's real identifier.
type Issuer struct {
	signer     *Signer
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewIssuer(signer *Signer, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		signer:     signer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair generates an access/refresh token pair for the user. Both tokens
// carry the same identity snapshot but independent JTIs and expirations.
func (i *Issuer) IssuePair(user *models.User) (*TokenPair, error) {
	accessToken, err := i.signer.Sign(NewJTI(), BuildClaims(user, TypeAccess), i.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := i.signer.Sign(NewJTI(), BuildClaims(user, TypeRefresh), i.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// IssueAccess mints a single access token with the given subject and claims.
// Used by the refresh path, which copies claims from the presented refresh
// token instead of re-fetching the user.
func (i *Issuer) IssueAccess(subject string, claims map[string]interface{}) (string, error) {
	return i.signer.Sign(subject, claims, i.accessTTL)
}

// BuildClaims maps a user identity into the claim set embedded in a token.
// profilePictureUrl is always present (empty string when unset) to keep the
// claim shape stable across tokens.
func BuildClaims(user *models.User, tokenType string) map[string]interface{} {
	return map[string]interface{}{
		"id":                strconv.FormatUint(uint64(user.ID), 10),
		"username":          user.Username,
		"email":             user.Email,
		"profilePictureUrl": user.ProfilePictureURL,
		"type":              tokenType,
	}
}

// NewJTI returns a fresh unguessable token identifier.
func NewJTI() string {
	return uuid.NewString()
}
