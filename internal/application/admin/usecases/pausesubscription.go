package usecases

import (
	"context"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/dto"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription/valueobjects"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/id"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

type PauseSubscriptionCommand struct {
	SubscriptionSID string
}

// PauseSubscriptionResult returns the toggled subscription and the
// audit record written for the operation.
type PauseSubscriptionResult struct {
	Subscription *dto.SubscriptionDTO `json:"subscription"`
	Action       *dto.AdminActionDTO  `json:"action"`
}

// PauseSubscriptionUseCase toggles the paused flag and appends one
// completed audit record. Guards run before any write, so a blocked
// toggle leaves both records untouched.
type PauseSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	actionRepo       subscription.AdminActionRepository
	logger           logger.Interface
}

func NewPauseSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	actionRepo subscription.AdminActionRepository,
	log logger.Interface,
) *PauseSubscriptionUseCase {
	return &PauseSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		actionRepo:       actionRepo,
		logger:           log,
	}
}

func (uc *PauseSubscriptionUseCase) Execute(ctx context.Context, cmd PauseSubscriptionCommand) (*PauseSubscriptionResult, error) {
	sub, err := loadSubscription(ctx, uc.subscriptionRepo, cmd.SubscriptionSID)
	if err != nil {
		return nil, err
	}

	wasPaused := sub.Paused()
	if wasPaused {
		err = sub.Unpause()
	} else {
		err = sub.Pause()
	}
	if err != nil {
		return nil, translateDomainError(err)
	}

	action, err := subscription.NewAdminAction(id.NewAdminActionSID(), sub.SID(), vo.ActionPause)
	if err != nil {
		return nil, apperrors.NewInternalError(err.Error())
	}

	details := map[string]interface{}{
		"description": "Scale node group to 0, retain DB. Mock: no real AWS change.",
		"paused":      !wasPaused,
	}
	if err := action.Complete(details); err != nil {
		return nil, apperrors.NewInternalError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist pause toggle", "error", err, "subscription_sid", sub.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to update subscription", err.Error())
	}
	if err := uc.actionRepo.Create(ctx, action); err != nil {
		uc.logger.Errorw("failed to persist pause action", "error", err, "subscription_sid", sub.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to record admin action", err.Error())
	}

	uc.logger.Infow("pause toggled",
		"subscription_sid", sub.SID(),
		"paused", sub.Paused())

	return &PauseSubscriptionResult{
		Subscription: dto.NewSubscriptionDTO(sub),
		Action:       dto.NewAdminActionDTO(action),
	}, nil
}
