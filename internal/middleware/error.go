package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "moneybook/internal/errors"
	"moneybook/internal/logger"
)

// ErrorHandler turns the last error attached to the context into the
// {"error":{"code","message"}} body. Non-AppErrors become INTERNAL_ERROR.
// Nothing is written when a handler already produced a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		fields := []interface{}{
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", c.GetString(requestIDKey),
		}

		appErr := apperrors.ErrInternalServer
		var target *apperrors.AppError
		switch {
		case errors.As(err, &target):
			appErr = target
			if appErr.Internal != nil {
				logger.Get().Errorw("app error", append(fields, "code", appErr.Code, "internal", appErr.Internal.Error())...)
			}
		default:
			logger.Get().Errorw("unexpected error", append(fields, "error", err.Error())...)
		}

		if c.Writer.Written() {
			return
		}
		writeError(c, appErr.StatusCode, appErr.Code, appErr.Message)
	}
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
