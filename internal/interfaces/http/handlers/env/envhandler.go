// Package env serves the mock per-environment API surface customers
// probe after provisioning.
package env

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/utils"
)

type EnvHandler struct{}

func NewEnvHandler() *EnvHandler {
	return &EnvHandler{}
}

// Health handles GET /api/env/:envName. The environment is simulated,
// so the endpoint always reports healthy.
func (h *EnvHandler) Health(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"status":    "healthy",
		"env":       c.Param("envName"),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
