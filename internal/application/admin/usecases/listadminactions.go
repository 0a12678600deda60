package usecases

import (
	"context"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/dto"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription/valueobjects"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

// ListAdminActionsCommand optionally narrows the audit log by
// subscription and action kind.
type ListAdminActionsCommand struct {
	SubscriptionSID string
	Kind            string
}

// ListAdminActionsUseCase returns audit records, most recently
// requested first.
type ListAdminActionsUseCase struct {
	actionRepo subscription.AdminActionRepository
	logger     logger.Interface
}

func NewListAdminActionsUseCase(actionRepo subscription.AdminActionRepository, log logger.Interface) *ListAdminActionsUseCase {
	return &ListAdminActionsUseCase{
		actionRepo: actionRepo,
		logger:     log,
	}
}

func (uc *ListAdminActionsUseCase) Execute(ctx context.Context, cmd ListAdminActionsCommand) ([]*dto.AdminActionDTO, error) {
	filter := subscription.AdminActionFilter{
		SubscriptionSID: cmd.SubscriptionSID,
	}
	if cmd.Kind != "" {
		kind := vo.ActionKind(cmd.Kind)
		if !vo.ValidActionKinds[kind] {
			return nil, apperrors.NewValidationError("invalid action kind: " + cmd.Kind)
		}
		filter.Kind = kind
	}

	actions, err := uc.actionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list admin actions", "error", err)
		return nil, apperrors.NewStoreUnavailableError("failed to list admin actions", err.Error())
	}

	result := make([]*dto.AdminActionDTO, 0, len(actions))
	for _, action := range actions {
		result = append(result, dto.NewAdminActionDTO(action))
	}
	return result, nil
}
