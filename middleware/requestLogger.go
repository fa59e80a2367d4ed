package middleware

import (
	"guidely/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLoggerMiddleware installs a request-scoped logger on the context so
// every handler log line carries the request id, method and route.
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger().With(
			zap.String("requestId", uuid.New().String()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
		)
		c.Set("logger", logger)
		c.Next()
	}
}
