package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/persistence/mappers"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/persistence/models"
)

// GormTermsAcceptanceRepository implements
// subscription.TermsAcceptanceRepository using GORM
type GormTermsAcceptanceRepository struct {
	db     *gorm.DB
	mapper *mappers.TermsAcceptanceMapper
}

func NewGormTermsAcceptanceRepository(db *gorm.DB) subscription.TermsAcceptanceRepository {
	return &GormTermsAcceptanceRepository{
		db:     db,
		mapper: mappers.NewTermsAcceptanceMapper(),
	}
}

func (r *GormTermsAcceptanceRepository) Create(ctx context.Context, acceptance *subscription.TermsAcceptance) error {
	model := r.mapper.ToModel(acceptance)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create terms acceptance: %w", err)
	}
	return nil
}

func (r *GormTermsAcceptanceRepository) ListBySubscription(ctx context.Context, subscriptionSID string) ([]*subscription.TermsAcceptance, error) {
	var modelList []models.TermsAcceptanceModel
	err := r.db.WithContext(ctx).
		Where("subscription_sid = ?", subscriptionSID).
		Order("accepted_at DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list terms acceptances: %w", err)
	}

	acceptances := make([]*subscription.TermsAcceptance, 0, len(modelList))
	for i := range modelList {
		acceptance, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		acceptances = append(acceptances, acceptance)
	}
	return acceptances, nil
}
