package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	adminusecases "github.com/officeless-platform/officeless-self-service-portal/internal/application/admin/usecases"
	onboardingusecases "github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/usecases"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/auth"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/config"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/endpoints"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/pricing"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/repository"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/terraform"
	adminhandlers "github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/http/handlers/admin"
	cataloghandlers "github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/http/handlers/catalog"
	envhandlers "github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/http/handlers/env"
	onboardinghandlers "github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/http/handlers/onboarding"
	termshandlers "github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/http/handlers/terms"
	"github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/http/middleware"
	"github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/http/routes"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/constants"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/services/markdown"
)

// Router wires the HTTP surface of the portal.
type Router struct {
	engine            *gin.Engine
	cfg               *config.Config
	onboardingHandler *onboardinghandlers.OnboardingHandler
	catalogHandler    *cataloghandlers.CatalogHandler
	termsHandler      *termshandlers.TermsHandler
	envHandler        *envhandlers.EnvHandler
	adminHandler      *adminhandlers.AdminHandler
	authMiddleware    *middleware.AdminAuthMiddleware
	loginRateLimiter  *middleware.RateLimiter
	logger            logger.Interface
}

// NewRouter builds every use case and handler on top of the configured
// record stores.
func NewRouter(cfg *config.Config, stores *repository.Stores, log logger.Interface) (*Router, error) {
	engine := gin.New()

	planGenerator, err := terraform.NewPlanGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to load terraform catalog: %w", err)
	}
	costEstimator, err := pricing.NewEstimator()
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing table: %w", err)
	}
	endpointBuilder := endpoints.NewBuilder(cfg.Server.BaseURL)
	jwtService := auth.NewJWTService(&cfg.Admin.JWT)
	markdownService := markdown.NewMarkdownService()

	onboardingHandler := onboardinghandlers.NewOnboardingHandler(
		onboardingusecases.NewStartOnboardingUseCase(stores.Companies, stores.Subscriptions, log),
		onboardingusecases.NewSelectPackageUseCase(stores.Subscriptions, log),
		onboardingusecases.NewSelectInfraProfileUseCase(stores.Subscriptions, log),
		onboardingusecases.NewSelectAWSModeUseCase(stores.Subscriptions, log),
		onboardingusecases.NewGeneratePlanUseCase(stores.Subscriptions, planGenerator, costEstimator, log),
		onboardingusecases.NewSubmitForApprovalUseCase(stores.Subscriptions, stores.TermsAcceptances, log),
		onboardingusecases.NewBeginProvisioningUseCase(stores.Subscriptions, log),
		onboardingusecases.NewCompleteProvisioningUseCase(stores.Subscriptions, endpointBuilder, log),
		onboardingusecases.NewGetSubscriptionUseCase(stores.Subscriptions, stores.Companies, log),
		log,
	)

	adminHandler := adminhandlers.NewAdminHandler(
		&cfg.Admin,
		jwtService,
		adminusecases.NewApproveSubscriptionUseCase(stores.Subscriptions, stores.Companies, log),
		adminusecases.NewPauseSubscriptionUseCase(stores.Subscriptions, stores.AdminActions, log),
		adminusecases.NewBackupSubscriptionUseCase(stores.Subscriptions, stores.AdminActions, log),
		adminusecases.NewDestroySubscriptionUseCase(stores.Subscriptions, stores.Companies, stores.AdminActions, log),
		adminusecases.NewListSubscriptionsUseCase(stores.Subscriptions, stores.Companies, log),
		adminusecases.NewListAdminActionsUseCase(stores.AdminActions, log),
		log,
	)

	return &Router{
		engine:            engine,
		cfg:               cfg,
		onboardingHandler: onboardingHandler,
		catalogHandler:    cataloghandlers.NewCatalogHandler(),
		termsHandler:      termshandlers.NewTermsHandler(markdownService, log),
		envHandler:        envhandlers.NewEnvHandler(),
		adminHandler:      adminHandler,
		authMiddleware:    middleware.NewAdminAuthMiddleware(jwtService, log),
		loginRateLimiter: middleware.NewRateLimiter(
			stores.Redis,
			constants.LoginRateLimit,
			constants.LoginRateLimitWindowSeconds*time.Second,
		),
		logger: log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupOnboardingRoutes(r.engine, &routes.OnboardingRouteConfig{
		OnboardingHandler: r.onboardingHandler,
	})
	routes.SetupCatalogRoutes(r.engine, &routes.CatalogRouteConfig{
		CatalogHandler: r.catalogHandler,
		TermsHandler:   r.termsHandler,
	})
	routes.SetupEnvRoutes(r.engine, &routes.EnvRouteConfig{
		EnvHandler: r.envHandler,
	})
	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler:     r.adminHandler,
		AuthMiddleware:   r.authMiddleware,
		LoginRateLimiter: r.loginRateLimiter,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
