package usecases

import (
	"context"
	"fmt"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/dto"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/catalog"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

type SelectInfraProfileCommand struct {
	SubscriptionSID string
	InfraProfileID  string
}

// SelectInfraProfileUseCase overwrites the sizing profile selection on
// a subscription.
type SelectInfraProfileUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewSelectInfraProfileUseCase(subscriptionRepo subscription.Repository, log logger.Interface) *SelectInfraProfileUseCase {
	return &SelectInfraProfileUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           log,
	}
}

func (uc *SelectInfraProfileUseCase) Execute(ctx context.Context, cmd SelectInfraProfileCommand) (*dto.SubscriptionDTO, error) {
	if !catalog.IsValidInfraProfileID(cmd.InfraProfileID) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown infra profile: %s", cmd.InfraProfileID))
	}

	sub, err := loadSubscription(ctx, uc.subscriptionRepo, cmd.SubscriptionSID)
	if err != nil {
		return nil, err
	}

	if err := sub.SelectInfraProfile(cmd.InfraProfileID); err != nil {
		return nil, translateDomainError(err)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist infra profile selection", "error", err, "subscription_sid", sub.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to update subscription", err.Error())
	}

	return dto.NewSubscriptionDTO(sub), nil
}
