package middleware

import (
	"go-biztime/internal/shared/apperror"
	"go-biztime/internal/shared/contextutil"
	"go-biztime/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponder is the single place failures become HTTP responses.
// Handlers attach errors with c.Error and return without writing.
func ErrorResponder(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	base := logger.Named("http.error")

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		httpErr := apperror.ToHTTP(err)

		log := contextutil.GetLogger(c.Request.Context(), base)
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.Error(err),
		}
		if httpErr.Status >= http.StatusInternalServerError {
			log.Error("request failed", fields...)
		} else {
			log.Warn("request failed", fields...)
		}

		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	}
}

// NoRoute answers unknown paths with the same error envelope.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperror.ErrRouteNotFound)
	}
}
