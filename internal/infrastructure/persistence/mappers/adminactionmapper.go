package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription/valueobjects"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/persistence/models"
)

// AdminActionMapper converts between admin action records and their
// GORM model
type AdminActionMapper struct{}

func NewAdminActionMapper() *AdminActionMapper {
	return &AdminActionMapper{}
}

func (m *AdminActionMapper) ToModel(action *subscription.AdminAction) (*models.AdminActionModel, error) {
	details, err := marshalJSON(action.Details())
	if err != nil {
		return nil, err
	}

	return &models.AdminActionModel{
		SID:             action.SID(),
		SubscriptionSID: action.SubscriptionSID(),
		Action:          action.Kind().String(),
		Status:          action.Status().String(),
		RequestedAt:     action.RequestedAt(),
		CompletedAt:     action.CompletedAt(),
		Details:         details,
	}, nil
}

func (m *AdminActionMapper) ToDomain(model *models.AdminActionModel) (*subscription.AdminAction, error) {
	var details map[string]interface{}
	if len(model.Details) > 0 {
		if err := json.Unmarshal(model.Details, &details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal action details: %w", err)
		}
	}

	return subscription.ReconstructAdminAction(
		model.SID,
		model.SubscriptionSID,
		vo.ActionKind(model.Action),
		vo.ActionStatus(model.Status),
		model.RequestedAt,
		model.CompletedAt,
		details,
	)
}
