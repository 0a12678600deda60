package usecases

import (
	"context"
	"errors"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
)

// loadSubscription fetches a subscription and translates the two
// storage outcomes every use case handles the same way.
func loadSubscription(ctx context.Context, repo subscription.Repository, sid string) (*subscription.Subscription, error) {
	if sid == "" {
		return nil, apperrors.NewValidationError("subscription id is required")
	}

	sub, err := repo.GetBySID(ctx, sid)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to load subscription", err.Error())
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}
	return sub, nil
}

// translateDomainError maps domain sentinel errors onto the API error
// taxonomy.
func translateDomainError(err error) error {
	switch {
	case errors.Is(err, subscription.ErrSubscriptionDestroyed),
		errors.Is(err, subscription.ErrSubscriptionRejected),
		errors.Is(err, subscription.ErrInvalidStatusTransition),
		errors.Is(err, subscription.ErrConfirmationMismatch):
		return apperrors.NewGuardViolationError(err.Error())
	case errors.Is(err, subscription.ErrContractTooShort),
		errors.Is(err, subscription.ErrPackageRequired),
		errors.Is(err, subscription.ErrInfraProfileRequired),
		errors.Is(err, subscription.ErrAWSModeRequired),
		errors.Is(err, subscription.ErrPlanSnapshotMissing):
		return apperrors.NewValidationError(err.Error())
	default:
		return apperrors.NewInternalError(err.Error())
	}
}
