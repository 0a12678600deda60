// Package memory provides in-memory record stores. They back the
// default zero-dependency deployment and the application-layer tests.
package memory

import (
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/company"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
)

func cloneCompany(c *company.Company) *company.Company {
	copied, err := company.ReconstructCompany(
		c.SID(), c.LegalName(), c.RegistrationNumber(), c.Address(),
		c.BillingContact(), c.TechnicalContact(), c.VerificationStatus(), c.CreatedAt(),
	)
	if err != nil {
		// Reconstructing from a valid aggregate cannot fail.
		panic(err)
	}
	return copied
}

func cloneSubscription(s *subscription.Subscription) *subscription.Subscription {
	copied, err := subscription.ReconstructSubscription(subscription.ReconstructSubscriptionParams{
		SID:                 s.SID(),
		CompanySID:          s.CompanySID(),
		PackageID:           s.PackageID(),
		AddOns:              s.AddOns(),
		ContractMonths:      s.ContractMonths(),
		Status:              s.Status(),
		InfraProfileID:      s.InfraProfileID(),
		AWSMode:             s.AWSMode(),
		AWSRoleARN:          s.AWSRoleARN(),
		AWSAccountID:        s.AWSAccountID(),
		AWSRegion:           s.AWSRegion(),
		EnvName:             s.EnvName(),
		PlanSnapshot:        s.PlanSnapshot(),
		CostEstimate:        s.CostEstimate(),
		Paused:              s.Paused(),
		Destroyed:           s.Destroyed(),
		LastBackup:          s.LastBackup(),
		Endpoints:           s.Endpoints(),
		InitialSetupShownAt: s.InitialSetupShownAt(),
		CreatedAt:           s.CreatedAt(),
		UpdatedAt:           s.UpdatedAt(),
	})
	if err != nil {
		panic(err)
	}
	return copied
}
