package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/constants"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

// Logger emits one structured line per request. Severity follows the
// response status so alerting can key off level alone.
func Logger(log logger.Interface) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		args := []any{
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency", param.Latency,
			"client_ip", param.ClientIP,
			"user_agent", param.Request.UserAgent(),
		}

		if rid, ok := param.Keys[constants.ContextKeyRequestID]; ok {
			args = append(args, "request_id", rid)
		}
		if param.ErrorMessage != "" {
			args = append(args, "error", param.ErrorMessage)
		}

		switch {
		case param.StatusCode >= 500:
			log.Errorw("HTTP request completed", args...)
		case param.StatusCode >= 400:
			log.Warnw("HTTP request completed", args...)
		default:
			log.Debugw("HTTP request completed", args...)
		}

		return ""
	})
}
