package usecases

import (
	"context"
	"errors"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
)

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

func translateDomainError(err error) error {
	switch {
	case errors.Is(err, subscription.ErrSubscriptionDestroyed),
		errors.Is(err, subscription.ErrSubscriptionRejected),
		errors.Is(err, subscription.ErrInvalidStatusTransition),
		errors.Is(err, subscription.ErrConfirmationMismatch):
		return apperrors.NewGuardViolationError(err.Error())
	default:
		return apperrors.NewInternalError(err.Error())
	}
}
