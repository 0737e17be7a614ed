package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/iamshakil01/clubsphere-servers/internal/auth"
	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

type tokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// Auth rejects requests without a valid bearer token and stores the
// verified email under auth.ContextEmailKey.
func Auth(v tokenVerifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{
				"error": domain.ErrMissingCredential.Error(),
				"kind":  domain.Kind(domain.ErrMissingCredential),
			})
			return
		}

		email, err := v.Verify(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			msg := domain.ErrMissingCredential.Error()
			if !errors.Is(err, domain.ErrUnauthorized) {
				msg = "internal server error"
			}
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{
				"error": msg,
				"kind":  domain.Kind(domain.ErrUnauthorized),
			})
			return
		}

		c.Set(auth.ContextEmailKey, email)
		c.Next()
	}
}
