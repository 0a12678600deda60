package routes

import (
	"github.com/gin-gonic/gin"

	envhandlers "github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/http/handlers/env"
)

type EnvRouteConfig struct {
	EnvHandler *envhandlers.EnvHandler
}

func SetupEnvRoutes(engine *gin.Engine, config *EnvRouteConfig) {
	engine.GET("/api/env/:envName", config.EnvHandler.Health)
}
