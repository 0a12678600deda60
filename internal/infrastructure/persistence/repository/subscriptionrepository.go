package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/persistence/mappers"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/persistence/models"
)

// GormSubscriptionRepository implements subscription.Repository using
// GORM
type GormSubscriptionRepository struct {
	db     *gorm.DB
	mapper *mappers.SubscriptionMapper
}

func NewGormSubscriptionRepository(db *gorm.DB) subscription.Repository {
	return &GormSubscriptionRepository{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
	}
}

func (r *GormSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// GetBySID returns nil, nil when no subscription matches.
func (r *GormSubscriptionRepository) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *GormSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return err
	}

	// Select("*") forces zero values like paused=false through
	result := r.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("sid = ?", sub.SID()).
		Select("*").
		Omit("id", "sid", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return subscription.ErrSubscriptionNotFound
	}
	return nil
}

func (r *GormSubscriptionRepository) List(ctx context.Context) ([]*subscription.Subscription, error) {
	var modelList []models.SubscriptionModel
	err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	subs := make([]*subscription.Subscription, 0, len(modelList))
	for i := range modelList {
		sub, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
