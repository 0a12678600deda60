package valueobjects

type OnboardingStatus string

const (
	StatusDraft           OnboardingStatus = "draft"
	StatusPendingApproval OnboardingStatus = "pending_approval"
	StatusApproved        OnboardingStatus = "approved"
	StatusRejected        OnboardingStatus = "rejected"
	StatusProvisioning    OnboardingStatus = "provisioning"
	StatusReady           OnboardingStatus = "ready"
)

func (s OnboardingStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether target is one lifecycle edge away.
// Rejected and ready have no outgoing edges.
func (s OnboardingStatus) CanTransitionTo(target OnboardingStatus) bool {
	transitions := map[OnboardingStatus][]OnboardingStatus{
		StatusDraft:           {StatusPendingApproval},
		StatusPendingApproval: {StatusApproved, StatusRejected},
		StatusApproved:        {StatusProvisioning},
		StatusProvisioning:    {StatusReady},
		StatusRejected:        {},
		StatusReady:           {},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	for _, allowedStatus := range allowed {
		if allowedStatus == target {
			return true
		}
	}
	return false
}

var ValidStatuses = map[OnboardingStatus]bool{
	StatusDraft:           true,
	StatusPendingApproval: true,
	StatusApproved:        true,
	StatusRejected:        true,
	StatusProvisioning:    true,
	StatusReady:           true,
}
