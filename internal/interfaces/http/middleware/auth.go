package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/auth"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/constants"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/utils"
)

// AdminAuthMiddleware guards the administrative API with bearer tokens.
type AdminAuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAdminAuthMiddleware(jwtService *auth.JWTService, log logger.Interface) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		jwtService: jwtService,
		logger:     log,
	}
}

func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		subject, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify admin token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdminSubject, subject)
		c.Next()
	}
}
