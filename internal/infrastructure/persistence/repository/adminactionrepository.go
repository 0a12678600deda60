package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/persistence/mappers"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/persistence/models"
)

// GormAdminActionRepository implements subscription.AdminActionRepository
// using GORM
type GormAdminActionRepository struct {
	db     *gorm.DB
	mapper *mappers.AdminActionMapper
}

func NewGormAdminActionRepository(db *gorm.DB) subscription.AdminActionRepository {
	return &GormAdminActionRepository{
		db:     db,
		mapper: mappers.NewAdminActionMapper(),
	}
}

func (r *GormAdminActionRepository) Create(ctx context.Context, action *subscription.AdminAction) error {
	model, err := r.mapper.ToModel(action)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create admin action: %w", err)
	}
	return nil
}

func (r *GormAdminActionRepository) List(ctx context.Context, filter subscription.AdminActionFilter) ([]*subscription.AdminAction, error) {
	query := r.db.WithContext(ctx).Model(&models.AdminActionModel{})
	if filter.SubscriptionSID != "" {
		query = query.Where("subscription_sid = ?", filter.SubscriptionSID)
	}
	if filter.Kind != "" {
		query = query.Where("action = ?", filter.Kind.String())
	}

	var modelList []models.AdminActionModel
	if err := query.Order("requested_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list admin actions: %w", err)
	}

	actions := make([]*subscription.AdminAction, 0, len(modelList))
	for i := range modelList {
		action, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}
