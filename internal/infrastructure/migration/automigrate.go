package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/persistence/models"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

// AutoMigrateModels returns every model the schema migration covers
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CompanyModel{},
		&models.SubscriptionModel{},
		&models.AdminActionModel{},
		&models.TermsAcceptanceModel{},
	}
}

// Run applies the schema for all registered models
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to auto-migrate schema: %w", err)
	}
	logger.Info("database schema migrated")
	return nil
}
