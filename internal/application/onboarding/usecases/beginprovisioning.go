package usecases

import (
	"context"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/dto"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

type BeginProvisioningCommand struct {
	SubscriptionSID string
}

// BeginProvisioningUseCase moves an approved subscription into
// provisioning. The actual provisioning run is external; this only
// flips the lifecycle state the completion callback requires.
type BeginProvisioningUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewBeginProvisioningUseCase(subscriptionRepo subscription.Repository, log logger.Interface) *BeginProvisioningUseCase {
	return &BeginProvisioningUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           log,
	}
}

func (uc *BeginProvisioningUseCase) Execute(ctx context.Context, cmd BeginProvisioningCommand) (*dto.SubscriptionDTO, error) {
	sub, err := loadSubscription(ctx, uc.subscriptionRepo, cmd.SubscriptionSID)
	if err != nil {
		return nil, err
	}

	if err := sub.BeginProvisioning(); err != nil {
		return nil, translateDomainError(err)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist provisioning start", "error", err, "subscription_sid", sub.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to update subscription", err.Error())
	}

	uc.logger.Infow("provisioning started", "subscription_sid", sub.SID())

	return dto.NewSubscriptionDTO(sub), nil
}
