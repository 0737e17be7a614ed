package auth

import (
	"context"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_RoundTrip(t *testing.T) {
	v := NewVerifier("secret")

	token, err := v.Issue("a@x.io", time.Hour)
	require.NoError(t, err)

	email, err := v.Verify(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "a@x.io", email)
}

func TestVerifier_Missing(t *testing.T) {
	_, err := NewVerifier("secret").Verify(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrMissingCredential)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifier_WrongSecret(t *testing.T) {
	token, err := NewVerifier("other").Issue("a@x.io", time.Hour)
	require.NoError(t, err)

	_, err = NewVerifier("secret").Verify(context.Background(), token)

	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestVerifier_Expired(t *testing.T) {
	v := NewVerifier("secret")
	token, err := v.Issue("a@x.io", -time.Minute)
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), token)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifier_NoEmailClaim(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewVerifier("secret").Verify(context.Background(), token)

	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestVerifier_RejectsOtherAlgorithms(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{Email: "a@x.io"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewVerifier("secret").Verify(context.Background(), token)

	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}
