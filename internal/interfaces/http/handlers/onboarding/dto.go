package onboarding

import (
	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/usecases"
)

// StartOnboardingRequest is the company registration form.
type StartOnboardingRequest struct {
	LegalName          string `json:"legalName" binding:"required"`
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
	Address            string `json:"address" binding:"required"`
	BillingContact     string `json:"billingContact" binding:"required"`
	TechnicalContact   string `json:"technicalContact" binding:"required"`
}

func (r *StartOnboardingRequest) ToCommand() usecases.StartOnboardingCommand {
	return usecases.StartOnboardingCommand{
		LegalName:          r.LegalName,
		RegistrationNumber: r.RegistrationNumber,
		Address:            r.Address,
		BillingContact:     r.BillingContact,
		TechnicalContact:   r.TechnicalContact,
	}
}

type SelectPackageRequest struct {
	PackageID      string   `json:"packageId" binding:"required"`
	AddOns         []string `json:"addOns"`
	ContractMonths int      `json:"contractMonths" binding:"required"`
}

func (r *SelectPackageRequest) ToCommand(subscriptionSID string) usecases.SelectPackageCommand {
	return usecases.SelectPackageCommand{
		SubscriptionSID: subscriptionSID,
		PackageID:       r.PackageID,
		AddOns:          r.AddOns,
		ContractMonths:  r.ContractMonths,
	}
}

type SelectInfraProfileRequest struct {
	InfraProfileID string `json:"infraProfileId" binding:"required"`
}

type SelectAWSModeRequest struct {
	Mode         string  `json:"mode" binding:"required"`
	AWSRoleARN   *string `json:"awsRoleArn"`
	AWSAccountID *string `json:"awsAccountId"`
	AWSRegion    *string `json:"awsRegion"`
}

func (r *SelectAWSModeRequest) ToCommand(subscriptionSID string) usecases.SelectAWSModeCommand {
	return usecases.SelectAWSModeCommand{
		SubscriptionSID: subscriptionSID,
		Mode:            r.Mode,
		AWSRoleARN:      r.AWSRoleARN,
		AWSAccountID:    r.AWSAccountID,
		AWSRegion:       r.AWSRegion,
	}
}

type SubmitForApprovalRequest struct {
	AcceptTerms bool   `json:"acceptTerms"`
	IPHash      string `json:"ipHash"`
}
