package usecases

import (
	"context"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/dto"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/constants"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/id"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

type SubmitForApprovalCommand struct {
	SubscriptionSID string
	AcceptTerms     bool
	IPHash          string
}

// SubmitForApprovalUseCase records the terms acceptance and moves a
// draft subscription to pending_approval. All guards run before any
// write so a failure leaves both records untouched.
type SubmitForApprovalUseCase struct {
	subscriptionRepo subscription.Repository
	termsRepo        subscription.TermsAcceptanceRepository
	logger           logger.Interface
}

func NewSubmitForApprovalUseCase(
	subscriptionRepo subscription.Repository,
	termsRepo subscription.TermsAcceptanceRepository,
	log logger.Interface,
) *SubmitForApprovalUseCase {
	return &SubmitForApprovalUseCase{
		subscriptionRepo: subscriptionRepo,
		termsRepo:        termsRepo,
		logger:           log,
	}
}

func (uc *SubmitForApprovalUseCase) Execute(ctx context.Context, cmd SubmitForApprovalCommand) (*dto.SubscriptionDTO, error) {
	if !cmd.AcceptTerms {
		return nil, apperrors.NewValidationError("terms of service must be accepted before submission")
	}

	sub, err := loadSubscription(ctx, uc.subscriptionRepo, cmd.SubscriptionSID)
	if err != nil {
		return nil, err
	}

	if err := sub.SubmitForApproval(); err != nil {
		return nil, translateDomainError(err)
	}

	acceptance, err := subscription.NewTermsAcceptance(
		id.NewTermsAcceptanceSID(),
		sub.SID(),
		constants.TermsVersion,
		cmd.IPHash,
	)
	if err != nil {
		return nil, apperrors.NewInternalError(err.Error())
	}

	if err := uc.termsRepo.Create(ctx, acceptance); err != nil {
		uc.logger.Errorw("failed to persist terms acceptance", "error", err, "subscription_sid", sub.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to record terms acceptance", err.Error())
	}
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist submission", "error", err, "subscription_sid", sub.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to update subscription", err.Error())
	}

	uc.logger.Infow("subscription submitted for approval",
		"subscription_sid", sub.SID(),
		"terms_version", acceptance.TermsVersion())

	return dto.NewSubscriptionDTO(sub), nil
}
