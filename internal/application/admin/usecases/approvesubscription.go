package usecases

import (
	"context"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/dto"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/company"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

type ApproveSubscriptionCommand struct {
	SubscriptionSID string
	Approved        bool
}

// ApproveSubscriptionUseCase resolves a pending_approval subscription
// to approved or rejected. Approval also marks the owning company as
// verified.
type ApproveSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	companyRepo      company.Repository
	logger           logger.Interface
}

func NewApproveSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	companyRepo company.Repository,
	log logger.Interface,
) *ApproveSubscriptionUseCase {
	return &ApproveSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		companyRepo:      companyRepo,
		logger:           log,
	}
}

func (uc *ApproveSubscriptionUseCase) Execute(ctx context.Context, cmd ApproveSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	sub, err := loadSubscription(ctx, uc.subscriptionRepo, cmd.SubscriptionSID)
	if err != nil {
		return nil, err
	}

	if cmd.Approved {
		err = sub.Approve()
	} else {
		err = sub.Reject()
	}
	if err != nil {
		return nil, translateDomainError(err)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist approval decision", "error", err, "subscription_sid", sub.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to update subscription", err.Error())
	}

	if cmd.Approved {
		owner, err := uc.companyRepo.GetBySID(ctx, sub.CompanySID())
		if err != nil {
			return nil, apperrors.NewStoreUnavailableError("failed to load company", err.Error())
		}
		if owner != nil {
			owner.Approve()
			if err := uc.companyRepo.Update(ctx, owner); err != nil {
				return nil, apperrors.NewStoreUnavailableError("failed to update company", err.Error())
			}
		}
	}

	uc.logger.Infow("approval decision recorded",
		"subscription_sid", sub.SID(),
		"approved", cmd.Approved)

	return dto.NewSubscriptionDTO(sub), nil
}
