package usecases

import (
	"context"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/dto"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

type CompleteProvisioningCommand struct {
	SubscriptionSID string
}

// CompleteProvisioningUseCase moves a provisioning subscription to
// ready and attaches its synthesized endpoints.
type CompleteProvisioningUseCase struct {
	subscriptionRepo subscription.Repository
	endpointBuilder  EndpointBuilder
	logger           logger.Interface
}

func NewCompleteProvisioningUseCase(
	subscriptionRepo subscription.Repository,
	endpointBuilder EndpointBuilder,
	log logger.Interface,
) *CompleteProvisioningUseCase {
	return &CompleteProvisioningUseCase{
		subscriptionRepo: subscriptionRepo,
		endpointBuilder:  endpointBuilder,
		logger:           log,
	}
}

func (uc *CompleteProvisioningUseCase) Execute(ctx context.Context, cmd CompleteProvisioningCommand) (*dto.SubscriptionDTO, error) {
	sub, err := loadSubscription(ctx, uc.subscriptionRepo, cmd.SubscriptionSID)
	if err != nil {
		return nil, err
	}

	endpoints := uc.endpointBuilder.Build(sub.SID(), sub.EnvName(), sub.AWSRegion())
	if err := sub.CompleteProvisioning(endpoints); err != nil {
		return nil, translateDomainError(err)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist provisioning completion", "error", err, "subscription_sid", sub.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to update subscription", err.Error())
	}

	uc.logger.Infow("environment ready",
		"subscription_sid", sub.SID(),
		"env_name", sub.EnvName())

	return dto.NewSubscriptionDTO(sub), nil
}
