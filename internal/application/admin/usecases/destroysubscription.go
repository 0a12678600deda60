package usecases

import (
	"context"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/dto"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/company"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription/valueobjects"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/id"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

type DestroySubscriptionCommand struct {
	SubscriptionSID    string
	ConfirmCompanyName string
}

// DestroySubscriptionResult returns the destroyed subscription and the
// audit record of the teardown.
type DestroySubscriptionResult struct {
	Subscription *dto.SubscriptionDTO `json:"subscription"`
	Action       *dto.AdminActionDTO  `json:"action"`
}

// DestroySubscriptionUseCase tears down an environment. The caller must
// type the owning company's exact legal name as confirmation; a
// mismatch blocks the destroy before any write.
type DestroySubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	companyRepo      company.Repository
	actionRepo       subscription.AdminActionRepository
	logger           logger.Interface
}

func NewDestroySubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	companyRepo company.Repository,
	actionRepo subscription.AdminActionRepository,
	log logger.Interface,
) *DestroySubscriptionUseCase {
	return &DestroySubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		companyRepo:      companyRepo,
		actionRepo:       actionRepo,
		logger:           log,
	}
}

func (uc *DestroySubscriptionUseCase) Execute(ctx context.Context, cmd DestroySubscriptionCommand) (*DestroySubscriptionResult, error) {
	sub, err := loadSubscription(ctx, uc.subscriptionRepo, cmd.SubscriptionSID)
	if err != nil {
		return nil, err
	}

	owner, err := uc.companyRepo.GetBySID(ctx, sub.CompanySID())
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to load company", err.Error())
	}
	if owner == nil {
		return nil, apperrors.NewNotFoundError("company not found")
	}
	if !owner.MatchesLegalName(cmd.ConfirmCompanyName) {
		return nil, translateDomainError(subscription.ErrConfirmationMismatch)
	}

	if err := sub.Destroy(); err != nil {
		return nil, translateDomainError(err)
	}

	action, err := subscription.NewAdminAction(id.NewAdminActionSID(), sub.SID(), vo.ActionDestroy)
	if err != nil {
		return nil, apperrors.NewInternalError(err.Error())
	}

	details := map[string]interface{}{
		"description":        "Destroy VPC, EKS, EFS, S3, DB. Revoke IAM/OIDC. Mock: no real AWS change.",
		"confirmCompanyName": cmd.ConfirmCompanyName,
		"destroy_plan": []string{
			"VPC, subnets, NAT, IGW, route tables",
			"EKS cluster and node groups",
			"EFS, S3, ALB resources",
			"DB resources (if managed)",
		},
	}
	if err := action.Complete(details); err != nil {
		return nil, apperrors.NewInternalError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist destroy", "error", err, "subscription_sid", sub.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to update subscription", err.Error())
	}
	if err := uc.actionRepo.Create(ctx, action); err != nil {
		uc.logger.Errorw("failed to persist destroy action", "error", err, "subscription_sid", sub.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to record admin action", err.Error())
	}

	uc.logger.Infow("environment destroyed",
		"subscription_sid", sub.SID(),
		"env_name", sub.EnvName())

	return &DestroySubscriptionResult{
		Subscription: dto.NewSubscriptionDTO(sub),
		Action:       dto.NewAdminActionDTO(action),
	}, nil
}
