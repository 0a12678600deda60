package models

import "time"

// TermsAcceptanceModel is the GORM model for terms acceptance records
type TermsAcceptanceModel struct {
	ID              uint      `gorm:"primarykey"`
	SID             string    `gorm:"uniqueIndex;size:32;not null"`
	SubscriptionSID string    `gorm:"index;size:32;not null"`
	TermsVersion    string    `gorm:"size:32;not null"`
	AcceptedAt      time.Time `gorm:"not null"`
	IPHash          string    `gorm:"size:128"`
	CreatedAt       time.Time
}

// TableName specifies the table name for TermsAcceptanceModel
func (TermsAcceptanceModel) TableName() string {
	return "terms_acceptances"
}
