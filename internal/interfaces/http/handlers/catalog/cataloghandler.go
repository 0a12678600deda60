// Package catalog serves the static selection catalogs the onboarding
// wizard renders.
package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domaincatalog "github.com/officeless-platform/officeless-self-service-portal/internal/domain/catalog"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/utils"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListPackages handles GET /api/catalog/packages
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", domaincatalog.Packages())
}

// ListInfraProfiles handles GET /api/catalog/infra-profiles
func (h *CatalogHandler) ListInfraProfiles(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", domaincatalog.InfraProfiles())
}

// ListAWSModes handles GET /api/catalog/aws-modes
func (h *CatalogHandler) ListAWSModes(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", domaincatalog.AWSModes())
}

// ListRegions handles GET /api/catalog/regions
func (h *CatalogHandler) ListRegions(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", domaincatalog.AWSRegions())
}
