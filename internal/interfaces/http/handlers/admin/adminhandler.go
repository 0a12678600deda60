// Package admin serves the administrative review and operations API.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/admin/usecases"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/auth"
	sharedConfig "github.com/officeless-platform/officeless-self-service-portal/internal/shared/config"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/utils"
)

type AdminHandler struct {
	adminCfg   *sharedConfig.AdminConfig
	jwtService *auth.JWTService
	approveUC  *usecases.ApproveSubscriptionUseCase
	pauseUC    *usecases.PauseSubscriptionUseCase
	backupUC   *usecases.BackupSubscriptionUseCase
	destroyUC  *usecases.DestroySubscriptionUseCase
	listSubsUC *usecases.ListSubscriptionsUseCase
	listActsUC *usecases.ListAdminActionsUseCase
	logger     logger.Interface
}

func NewAdminHandler(
	adminCfg *sharedConfig.AdminConfig,
	jwtService *auth.JWTService,
	approveUC *usecases.ApproveSubscriptionUseCase,
	pauseUC *usecases.PauseSubscriptionUseCase,
	backupUC *usecases.BackupSubscriptionUseCase,
	destroyUC *usecases.DestroySubscriptionUseCase,
	listSubsUC *usecases.ListSubscriptionsUseCase,
	listActsUC *usecases.ListAdminActionsUseCase,
	log logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		adminCfg:   adminCfg,
		jwtService: jwtService,
		approveUC:  approveUC,
		pauseUC:    pauseUC,
		backupUC:   backupUC,
		destroyUC:  destroyUC,
		listSubsUC: listSubsUC,
		listActsUC: listActsUC,
		logger:     log,
	}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username != h.adminCfg.Username || !auth.VerifyPassword(h.adminCfg.PasswordHash, req.Password) {
		h.logger.Warnw("failed admin login attempt", "username", req.Username, "client_ip", c.ClientIP())
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(req.Username)
	if err != nil {
		h.logger.Errorw("failed to issue admin token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"token":     token,
		"expiresAt": expiresAt,
	})
}

// ListSubscriptions handles GET /api/admin/subscriptions
func (h *AdminHandler) ListSubscriptions(c *gin.Context) {
	result, err := h.listSubsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListActions handles GET /api/admin/actions
func (h *AdminHandler) ListActions(c *gin.Context) {
	cmd := usecases.ListAdminActionsCommand{
		SubscriptionSID: c.Query("subscriptionId"),
		Kind:            c.Query("action"),
	}
	result, err := h.listActsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Approve handles POST /api/admin/subscriptions/:id/approve
func (h *AdminHandler) Approve(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.ApproveSubscriptionCommand{
		SubscriptionSID: c.Param("id"),
		Approved:        req.Approved,
	}
	result, err := h.approveUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Subscription rejected"
	if req.Approved {
		message = "Subscription approved"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// Pause handles POST /api/admin/subscriptions/:id/pause
func (h *AdminHandler) Pause(c *gin.Context) {
	cmd := usecases.PauseSubscriptionCommand{SubscriptionSID: c.Param("id")}
	result, err := h.pauseUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Subscription resumed"
	if result.Subscription.Paused {
		message = "Subscription paused"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// Backup handles POST /api/admin/subscriptions/:id/backup
func (h *AdminHandler) Backup(c *gin.Context) {
	cmd := usecases.BackupSubscriptionCommand{SubscriptionSID: c.Param("id")}
	result, err := h.backupUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Backup recorded", result)
}

// Destroy handles POST /api/admin/subscriptions/:id/destroy
func (h *AdminHandler) Destroy(c *gin.Context) {
	var req DestroyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.DestroySubscriptionCommand{
		SubscriptionSID:    c.Param("id"),
		ConfirmCompanyName: req.ConfirmCompanyName,
	}
	result, err := h.destroyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Environment destroyed", result)
}
