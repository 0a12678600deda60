package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/company"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/persistence/mappers"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/persistence/models"
)

// GormCompanyRepository implements company.Repository using GORM
type GormCompanyRepository struct {
	db     *gorm.DB
	mapper *mappers.CompanyMapper
}

func NewGormCompanyRepository(db *gorm.DB) company.Repository {
	return &GormCompanyRepository{
		db:     db,
		mapper: mappers.NewCompanyMapper(),
	}
}

func (r *GormCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

// GetBySID returns nil, nil when no company matches.
func (r *GormCompanyRepository) GetBySID(ctx context.Context, sid string) (*company.Company, error) {
	var model models.CompanyModel
	err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *GormCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	result := r.db.WithContext(ctx).
		Model(&models.CompanyModel{}).
		Where("sid = ?", c.SID()).
		Select("*").
		Omit("id", "sid", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}
