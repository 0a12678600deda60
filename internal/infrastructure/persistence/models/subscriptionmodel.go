package models

import (
	"time"

	"gorm.io/datatypes"
)

// SubscriptionModel is the GORM model for subscriptions
type SubscriptionModel struct {
	ID                   uint   `gorm:"primarykey"`
	SID                  string `gorm:"uniqueIndex;size:32;not null"`
	CompanySID           string `gorm:"index;size:32;not null"`
	PackageID            string `gorm:"size:64;not null"`
	AddOns               datatypes.JSON
	ContractMonths       int    `gorm:"not null;default:6"`
	Status               string `gorm:"index;size:32;not null;default:draft"`
	InfraProfileID       string `gorm:"size:16;not null"`
	AWSMode              string `gorm:"size:8;not null"`
	AWSRoleARN           *string `gorm:"size:255"`
	AWSAccountID         *string `gorm:"size:32"`
	AWSRegion            *string `gorm:"size:32"`
	EnvName              string  `gorm:"uniqueIndex;size:64;not null"`
	PlanSnapshot         datatypes.JSON
	CostEstimateSnapshot datatypes.JSON
	Paused               bool `gorm:"not null;default:false"`
	Destroyed            bool `gorm:"not null;default:false"`
	LastBackup           datatypes.JSON
	Endpoints            datatypes.JSON
	InitialSetupShownAt  *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time `gorm:"index"`
}

// TableName specifies the table name for SubscriptionModel
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
