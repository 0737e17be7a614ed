package auth

import (
	"context"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/iamshakil01/clubsphere-servers/internal/domain"
)

// ContextEmailKey is the gin context key holding the verified email.
const ContextEmailKey = "auth_email"

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 bearer tokens and extracts their email claim.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrMissingCredential
	}

	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidCredential, err)
	}

	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.Email == "" {
		return "", domain.ErrInvalidCredential
	}

	return c.Email, nil
}

// Issue signs a token for email. Used by the ops CLI and tests.
func (v *Verifier) Issue(email string, ttl time.Duration) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
