package models

import "time"

// CompanyModel is the GORM model for companies
type CompanyModel struct {
	ID                 uint   `gorm:"primarykey"`
	SID                string `gorm:"uniqueIndex;size:32;not null"`
	LegalName          string `gorm:"size:255;not null"`
	RegistrationNumber string `gorm:"size:128;not null"`
	Address            string `gorm:"size:512;not null"`
	BillingContact     string `gorm:"size:255;not null"`
	TechnicalContact   string `gorm:"size:255;not null"`
	VerificationStatus string `gorm:"size:32;not null;default:pending"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for CompanyModel
func (CompanyModel) TableName() string {
	return "companies"
}
