package onboarding

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/usecases"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/utils"
)

// OnboardingHandler serves the self-service onboarding flow.
type OnboardingHandler struct {
	startUC         *usecases.StartOnboardingUseCase
	selectPackageUC *usecases.SelectPackageUseCase
	selectProfileUC *usecases.SelectInfraProfileUseCase
	selectModeUC    *usecases.SelectAWSModeUseCase
	generatePlanUC  *usecases.GeneratePlanUseCase
	submitUC        *usecases.SubmitForApprovalUseCase
	beginUC         *usecases.BeginProvisioningUseCase
	completeUC      *usecases.CompleteProvisioningUseCase
	getUC           *usecases.GetSubscriptionUseCase
	logger          logger.Interface
}

func NewOnboardingHandler(
	startUC *usecases.StartOnboardingUseCase,
	selectPackageUC *usecases.SelectPackageUseCase,
	selectProfileUC *usecases.SelectInfraProfileUseCase,
	selectModeUC *usecases.SelectAWSModeUseCase,
	generatePlanUC *usecases.GeneratePlanUseCase,
	submitUC *usecases.SubmitForApprovalUseCase,
	beginUC *usecases.BeginProvisioningUseCase,
	completeUC *usecases.CompleteProvisioningUseCase,
	getUC *usecases.GetSubscriptionUseCase,
	log logger.Interface,
) *OnboardingHandler {
	return &OnboardingHandler{
		startUC:         startUC,
		selectPackageUC: selectPackageUC,
		selectProfileUC: selectProfileUC,
		selectModeUC:    selectModeUC,
		generatePlanUC:  generatePlanUC,
		submitUC:        submitUC,
		beginUC:         beginUC,
		completeUC:      completeUC,
		getUC:           getUC,
		logger:          log,
	}
}

// Start handles POST /api/onboarding/start
func (h *OnboardingHandler) Start(c *gin.Context) {
	var req StartOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for start onboarding", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.startUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Onboarding started")
}

// SelectPackage handles POST /api/onboarding/:id/package
func (h *OnboardingHandler) SelectPackage(c *gin.Context) {
	var req SelectPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.selectPackageUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Package selected", result)
}

// SelectInfraProfile handles POST /api/onboarding/:id/infra-profile
func (h *OnboardingHandler) SelectInfraProfile(c *gin.Context) {
	var req SelectInfraProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.SelectInfraProfileCommand{
		SubscriptionSID: c.Param("id"),
		InfraProfileID:  req.InfraProfileID,
	}
	result, err := h.selectProfileUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Infrastructure profile selected", result)
}

// SelectAWSMode handles POST /api/onboarding/:id/aws-mode
func (h *OnboardingHandler) SelectAWSMode(c *gin.Context) {
	var req SelectAWSModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.selectModeUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "AWS mode selected", result)
}

// GeneratePlan handles POST /api/onboarding/:id/generate-plan
func (h *OnboardingHandler) GeneratePlan(c *gin.Context) {
	cmd := usecases.GeneratePlanCommand{SubscriptionSID: c.Param("id")}
	result, err := h.generatePlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan generated", result)
}

// SubmitForApproval handles POST /api/onboarding/:id/submit
func (h *OnboardingHandler) SubmitForApproval(c *gin.Context) {
	var req SubmitForApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ipHash := req.IPHash
	if ipHash == "" {
		ipHash = utils.HashIP(c.ClientIP())
	}

	cmd := usecases.SubmitForApprovalCommand{
		SubscriptionSID: c.Param("id"),
		AcceptTerms:     req.AcceptTerms,
		IPHash:          ipHash,
	}
	result, err := h.submitUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Submitted for approval", result)
}

// BeginProvisioning handles POST /api/onboarding/:id/provision
func (h *OnboardingHandler) BeginProvisioning(c *gin.Context) {
	cmd := usecases.BeginProvisioningCommand{SubscriptionSID: c.Param("id")}
	result, err := h.beginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Provisioning started", result)
}

// CompleteProvisioning handles POST /api/onboarding/:id/provision/complete
func (h *OnboardingHandler) CompleteProvisioning(c *gin.Context) {
	cmd := usecases.CompleteProvisioningCommand{SubscriptionSID: c.Param("id")}
	result, err := h.completeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Environment ready", result)
}

// GetSubscription handles GET /api/subscriptions/:id
func (h *OnboardingHandler) GetSubscription(c *gin.Context) {
	cmd := usecases.GetSubscriptionCommand{SubscriptionSID: c.Param("id")}
	result, err := h.getUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
