package middleware

import (
	"context"
	"time"

	"github.com/wb-go/wbf/ginext"
)

// Deadline bounds the request context so that store calls made by CRUD
// handlers cannot hang past d.
func Deadline(d time.Duration) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
