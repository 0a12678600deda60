package models

import (
	"time"

	"gorm.io/datatypes"
)

// AdminActionModel is the GORM model for the admin action audit log
type AdminActionModel struct {
	ID              uint   `gorm:"primarykey"`
	SID             string `gorm:"uniqueIndex;size:32;not null"`
	SubscriptionSID string `gorm:"index;size:32;not null"`
	Action          string `gorm:"index;size:32;not null"`
	Status          string `gorm:"size:32;not null;default:pending"`
	RequestedAt     time.Time `gorm:"index;not null"`
	CompletedAt     *time.Time
	Details         datatypes.JSON
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for AdminActionModel
func (AdminActionModel) TableName() string {
	return "admin_actions"
}
