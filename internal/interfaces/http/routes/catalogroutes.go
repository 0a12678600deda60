package routes

import (
	"github.com/gin-gonic/gin"

	cataloghandlers "github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/http/handlers/catalog"
	termshandlers "github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/http/handlers/terms"
)

type CatalogRouteConfig struct {
	CatalogHandler *cataloghandlers.CatalogHandler
	TermsHandler   *termshandlers.TermsHandler
}

func SetupCatalogRoutes(engine *gin.Engine, config *CatalogRouteConfig) {
	catalog := engine.Group("/api/catalog")
	{
		catalog.GET("/packages", config.CatalogHandler.ListPackages)
		catalog.GET("/infra-profiles", config.CatalogHandler.ListInfraProfiles)
		catalog.GET("/aws-modes", config.CatalogHandler.ListAWSModes)
		catalog.GET("/regions", config.CatalogHandler.ListRegions)
	}

	engine.GET("/api/terms", config.TermsHandler.GetTerms)
}
