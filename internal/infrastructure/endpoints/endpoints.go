package endpoints

import (
	"fmt"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/constants"
)

// Builder synthesizes the customer-facing endpoints for an environment
// that just reached ready. Everything is derived from the subscription
// identity; no network call is ever made.
type Builder struct {
	baseURL string
}

func NewBuilder(baseURL string) *Builder {
	return &Builder{baseURL: baseURL}
}

// Build returns the endpoint set for a subscription. Region defaults to
// us-east-1 when the subscription never picked one.
func (b *Builder) Build(subscriptionSID, envName string, region *string) subscription.Endpoints {
	resolvedRegion := "us-east-1"
	if region != nil && *region != "" {
		resolvedRegion = *region
	}

	accountID := constants.MockAWSAccountID
	return subscription.Endpoints{
		DashboardURL:  fmt.Sprintf("%s/onboarding/status?id=%s", b.baseURL, subscriptionSID),
		APIEndpoint:   fmt.Sprintf("%s/api/env/%s", b.baseURL, envName),
		AWSConsoleURL: fmt.Sprintf("https://%s.signin.aws.amazon.com/console", accountID),
		AccountID:     accountID,
		Region:        resolvedRegion,
	}
}
