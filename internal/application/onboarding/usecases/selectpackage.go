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

type SelectPackageCommand struct {
	SubscriptionSID string
	PackageID       string
	AddOns          []string
	ContractMonths  int
}

// SelectPackageUseCase overwrites the package selection on a
// subscription.
type SelectPackageUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewSelectPackageUseCase(subscriptionRepo subscription.Repository, log logger.Interface) *SelectPackageUseCase {
	return &SelectPackageUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           log,
	}
}

func (uc *SelectPackageUseCase) Execute(ctx context.Context, cmd SelectPackageCommand) (*dto.SubscriptionDTO, error) {
	if !catalog.IsValidPackageID(cmd.PackageID) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown package: %s", cmd.PackageID))
	}

	sub, err := loadSubscription(ctx, uc.subscriptionRepo, cmd.SubscriptionSID)
	if err != nil {
		return nil, err
	}

	if err := sub.SelectPackage(cmd.PackageID, cmd.AddOns, cmd.ContractMonths); err != nil {
		return nil, translateDomainError(err)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist package selection", "error", err, "subscription_sid", sub.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to update subscription", err.Error())
	}

	return dto.NewSubscriptionDTO(sub), nil
}
