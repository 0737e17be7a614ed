package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery answers a panicking request with the same error body the handler
// uses and leaves the panic under "error" for RequestLogger.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			err := fmt.Errorf("panic: %v", rec)
			c.Set("error", err.Error())

			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", c.GetString(ContextRequestID)),
				logger.String("method", c.Request.Method),
				logger.String("path", c.FullPath()),
				logger.String("error", err.Error()),
				logger.String("stack", string(debug.Stack())),
			)

			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{
				"error": "internal server error",
				"kind":  domain.Kind(err),
			})
		}()

		c.Next()
	}
}
