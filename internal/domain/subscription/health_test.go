package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription/valueobjects"
)

func reconstructWith(t *testing.T, status vo.OnboardingStatus, paused, destroyed bool) *Subscription {
	t.Helper()
	sub, err := ReconstructSubscription(ReconstructSubscriptionParams{
		SID:            "sub_health",
		CompanySID:     "co_health",
		PackageID:      "growth",
		ContractMonths: 6,
		Status:         status,
		InfraProfileID: "P2",
		AWSMode:        "C",
		EnvName:        "env-health",
		Paused:         paused,
		Destroyed:      destroyed,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	})
	require.NoError(t, err)
	return sub
}

func TestStatusHealth(t *testing.T) {
	tests := []struct {
		name      string
		status    vo.OnboardingStatus
		paused    bool
		destroyed bool
		want      vo.Health
	}{
		{"ready and running", vo.StatusReady, false, false, vo.HealthGreen},
		{"ready but paused", vo.StatusReady, true, false, vo.HealthAmber},
		{"destroyed wins over everything", vo.StatusReady, false, true, vo.HealthRed},
		{"destroyed wins over paused", vo.StatusReady, true, true, vo.HealthRed},
		{"rejected", vo.StatusRejected, false, false, vo.HealthRed},
		{"draft in flight", vo.StatusDraft, false, false, vo.HealthAmber},
		{"provisioning in flight", vo.StatusProvisioning, false, false, vo.HealthAmber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := reconstructWith(t, tt.status, tt.paused, tt.destroyed)
			assert.Equal(t, tt.want, sub.StatusHealth())
		})
	}
}

func TestAPIHealth(t *testing.T) {
	tests := []struct {
		name      string
		status    vo.OnboardingStatus
		paused    bool
		destroyed bool
		want      vo.Health
	}{
		{"ready and running", vo.StatusReady, false, false, vo.HealthGreen},
		{"ready but paused", vo.StatusReady, true, false, vo.HealthAmber},
		{"destroyed", vo.StatusDraft, false, true, vo.HealthRed},
		{"rejected is amber, not red", vo.StatusRejected, false, false, vo.HealthAmber},
		{"pending approval", vo.StatusPendingApproval, false, false, vo.HealthAmber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := reconstructWith(t, tt.status, tt.paused, tt.destroyed)
			assert.Equal(t, tt.want, sub.APIHealth())
		})
	}
}
