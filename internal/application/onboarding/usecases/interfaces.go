package usecases

import "github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"

// PlanGenerator produces the deterministic resource plan for a sizing
// profile.
type PlanGenerator interface {
	GeneratePlan(profileID, envName string) (subscription.PlanSnapshot, error)
}

// CostEstimator produces the deterministic monthly cost range for a
// sizing profile.
type CostEstimator interface {
	EstimateForProfile(profileID string) (subscription.CostEstimate, error)
}

// EndpointBuilder synthesizes the customer-facing endpoints when an
// environment reaches ready.
type EndpointBuilder interface {
	Build(subscriptionSID, envName string, region *string) subscription.Endpoints
}
