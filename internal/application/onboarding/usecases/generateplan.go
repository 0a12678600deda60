package usecases

import (
	"context"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/dto"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

type GeneratePlanCommand struct {
	SubscriptionSID string
}

// GeneratePlanResult returns the freshly generated snapshots.
type GeneratePlanResult struct {
	Plan         *subscription.PlanSnapshot `json:"plan"`
	CostEstimate *subscription.CostEstimate `json:"costEstimate"`
	Subscription *dto.SubscriptionDTO       `json:"subscription"`
}

// GeneratePlanUseCase computes the resource plan and cost estimate for
// the subscription's current profile and stores both snapshots on it.
// Rerunning it for the same selections yields identical snapshots.
type GeneratePlanUseCase struct {
	subscriptionRepo subscription.Repository
	planGenerator    PlanGenerator
	costEstimator    CostEstimator
	logger           logger.Interface
}

func NewGeneratePlanUseCase(
	subscriptionRepo subscription.Repository,
	planGenerator PlanGenerator,
	costEstimator CostEstimator,
	log logger.Interface,
) *GeneratePlanUseCase {
	return &GeneratePlanUseCase{
		subscriptionRepo: subscriptionRepo,
		planGenerator:    planGenerator,
		costEstimator:    costEstimator,
		logger:           log,
	}
}

func (uc *GeneratePlanUseCase) Execute(ctx context.Context, cmd GeneratePlanCommand) (*GeneratePlanResult, error) {
	sub, err := loadSubscription(ctx, uc.subscriptionRepo, cmd.SubscriptionSID)
	if err != nil {
		return nil, err
	}

	plan, err := uc.planGenerator.GeneratePlan(sub.InfraProfileID(), sub.EnvName())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	estimate, err := uc.costEstimator.EstimateForProfile(sub.InfraProfileID())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := sub.AttachPlan(&plan, &estimate); err != nil {
		return nil, translateDomainError(err)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist plan snapshots", "error", err, "subscription_sid", sub.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to update subscription", err.Error())
	}

	uc.logger.Infow("plan generated",
		"subscription_sid", sub.SID(),
		"infra_profile", sub.InfraProfileID(),
		"total_resources", plan.Summary.TotalResources,
		"under_cap", estimate.UnderCap)

	return &GeneratePlanResult{
		Plan:         &plan,
		CostEstimate: &estimate,
		Subscription: dto.NewSubscriptionDTO(sub),
	}, nil
}
