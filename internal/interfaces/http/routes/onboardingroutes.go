package routes

import (
	"github.com/gin-gonic/gin"

	onboardinghandlers "github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/http/handlers/onboarding"
)

type OnboardingRouteConfig struct {
	OnboardingHandler *onboardinghandlers.OnboardingHandler
}

func SetupOnboardingRoutes(engine *gin.Engine, config *OnboardingRouteConfig) {
	onboarding := engine.Group("/api/onboarding")
	{
		onboarding.POST("/start", config.OnboardingHandler.Start)
		onboarding.POST("/:id/package", config.OnboardingHandler.SelectPackage)
		onboarding.POST("/:id/infra-profile", config.OnboardingHandler.SelectInfraProfile)
		onboarding.POST("/:id/aws-mode", config.OnboardingHandler.SelectAWSMode)
		onboarding.POST("/:id/generate-plan", config.OnboardingHandler.GeneratePlan)
		onboarding.POST("/:id/submit", config.OnboardingHandler.SubmitForApproval)

		// Mock provisioning callbacks. A real provisioner would call
		// these from its pipeline.
		onboarding.POST("/:id/provision", config.OnboardingHandler.BeginProvisioning)
		onboarding.POST("/:id/provision/complete", config.OnboardingHandler.CompleteProvisioning)
	}

	engine.GET("/api/subscriptions/:id", config.OnboardingHandler.GetSubscription)
}
