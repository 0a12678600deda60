// Package dto defines the serializable views the API layer returns.
package dto

import (
	"time"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/company"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
)

// CompanyDTO is the API view of a company
type CompanyDTO struct {
	ID                 string    `json:"id"`
	LegalName          string    `json:"legalName"`
	RegistrationNumber string    `json:"registrationNumber"`
	Address            string    `json:"address"`
	BillingContact     string    `json:"billingContact"`
	TechnicalContact   string    `json:"technicalContact"`
	VerificationStatus string    `json:"verificationStatus"`
	CreatedAt          time.Time `json:"createdAt"`
}

func NewCompanyDTO(c *company.Company) *CompanyDTO {
	return &CompanyDTO{
		ID:                 c.SID(),
		LegalName:          c.LegalName(),
		RegistrationNumber: c.RegistrationNumber(),
		Address:            c.Address(),
		BillingContact:     c.BillingContact(),
		TechnicalContact:   c.TechnicalContact(),
		VerificationStatus: c.VerificationStatus().String(),
		CreatedAt:          c.CreatedAt(),
	}
}

// SubscriptionDTO is the API view of a subscription. The two health
// fields are derived on every read and never stored.
type SubscriptionDTO struct {
	ID                   string                     `json:"id"`
	CompanyID            string                     `json:"companyId"`
	PackageID            string                     `json:"packageId"`
	AddOns               []string                   `json:"addOns"`
	ContractMonths       int                        `json:"contractMonths"`
	Status               string                     `json:"status"`
	InfraProfileID       string                     `json:"infraProfileId"`
	AWSMode              string                     `json:"awsMode"`
	AWSRoleARN           *string                    `json:"awsRoleArn,omitempty"`
	AWSAccountID         *string                    `json:"awsAccountId,omitempty"`
	AWSRegion            *string                    `json:"awsRegion,omitempty"`
	EnvName              string                     `json:"envName"`
	PlanSnapshot         *subscription.PlanSnapshot `json:"planSnapshot,omitempty"`
	CostEstimateSnapshot *subscription.CostEstimate `json:"costEstimateSnapshot,omitempty"`
	Paused               bool                       `json:"paused"`
	Destroyed            bool                       `json:"destroyed"`
	LastBackup           *subscription.BackupRecord `json:"lastBackup,omitempty"`
	Endpoints            *subscription.Endpoints    `json:"endpoints,omitempty"`
	InitialSetupShownAt  *time.Time                 `json:"initialSetupShownAt,omitempty"`
	StatusHealth         string                     `json:"statusHealth"`
	APIHealth            string                     `json:"apiHealth"`
	CreatedAt            time.Time                  `json:"createdAt"`
	UpdatedAt            time.Time                  `json:"updatedAt"`
}

func NewSubscriptionDTO(sub *subscription.Subscription) *SubscriptionDTO {
	return &SubscriptionDTO{
		ID:                   sub.SID(),
		CompanyID:            sub.CompanySID(),
		PackageID:            sub.PackageID(),
		AddOns:               sub.AddOns(),
		ContractMonths:       sub.ContractMonths(),
		Status:               sub.Status().String(),
		InfraProfileID:       sub.InfraProfileID(),
		AWSMode:              sub.AWSMode(),
		AWSRoleARN:           sub.AWSRoleARN(),
		AWSAccountID:         sub.AWSAccountID(),
		AWSRegion:            sub.AWSRegion(),
		EnvName:              sub.EnvName(),
		PlanSnapshot:         sub.PlanSnapshot(),
		CostEstimateSnapshot: sub.CostEstimate(),
		Paused:               sub.Paused(),
		Destroyed:            sub.Destroyed(),
		LastBackup:           sub.LastBackup(),
		Endpoints:            sub.Endpoints(),
		InitialSetupShownAt:  sub.InitialSetupShownAt(),
		StatusHealth:         sub.StatusHealth().String(),
		APIHealth:            sub.APIHealth().String(),
		CreatedAt:            sub.CreatedAt(),
		UpdatedAt:            sub.UpdatedAt(),
	}
}

// SubscriptionWithCompanyDTO pairs a subscription with its owning
// company for the read endpoints. Company is nil when the owning
// record cannot be resolved.
type SubscriptionWithCompanyDTO struct {
	Subscription *SubscriptionDTO `json:"subscription"`
	Company      *CompanyDTO      `json:"company,omitempty"`
}

// AdminActionDTO is the API view of an admin action audit record
type AdminActionDTO struct {
	ID             string                 `json:"id"`
	SubscriptionID string                 `json:"subscriptionId"`
	Action         string                 `json:"action"`
	Status         string                 `json:"status"`
	RequestedAt    time.Time              `json:"requestedAt"`
	CompletedAt    *time.Time             `json:"completedAt,omitempty"`
	Details        map[string]interface{} `json:"details,omitempty"`
}

func NewAdminActionDTO(action *subscription.AdminAction) *AdminActionDTO {
	return &AdminActionDTO{
		ID:             action.SID(),
		SubscriptionID: action.SubscriptionSID(),
		Action:         action.Kind().String(),
		Status:         action.Status().String(),
		RequestedAt:    action.RequestedAt(),
		CompletedAt:    action.CompletedAt(),
		Details:        action.Details(),
	}
}
