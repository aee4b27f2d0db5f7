package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned when a token cannot be parsed or its
// signature does not verify against the configured secret.
var ErrMalformedToken = errors.New("malformed token")

// Signer creates and verifies compact HS256-signed JWTs against a single
// shared secret. It holds no mutable state and is safe for concurrent use.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign produces a signed token with the given subject, extra claims and
// lifetime. The registered sub/iat/exp claims are always set; extra claims
// never override them.
func (s *Signer) Sign(subject string, claims map[string]interface{}, ttl time.Duration) (string, error) {
	now := time.Now()

	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["sub"] = subject
	mapClaims["iat"] = jwt.NewNumericDate(now)
	mapClaims["exp"] = jwt.NewNumericDate(now.Add(ttl))

	return jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims).SignedString(s.secret)
}

// Verify reports whether the token's signature checks out and its exp claim
// has not passed. Malformed input is reported as invalid, never as an error.
func (s *Signer) Verify(tokenString string) bool {
	token, err := jwt.Parse(tokenString, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	return err == nil && token.Valid
}

// ParseClaims returns the claim set embedded in the token, or
// ErrMalformedToken when the token cannot be parsed or fails verification.
// A parse failure is always a rejection; callers must not fall through to
// business logic with partial claims.
func (s *Signer) ParseClaims(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrMalformedToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

func (s *Signer) keyFunc(t *jwt.Token) (interface{}, error) {
	return s.secret, nil
}
