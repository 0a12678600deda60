package subscription

import (
	"fmt"
	"time"

	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription/valueobjects"
)

// AdminAction is an append-only audit record of an administrative
// operation against a subscription. Once completed or failed the record
// is never mutated again.
type AdminAction struct {
	sid             string
	subscriptionSID string
	kind            vo.ActionKind
	status          vo.ActionStatus
	requestedAt     time.Time
	completedAt     *time.Time
	details         map[string]interface{}
}

// NewAdminAction creates a pending action record.
func NewAdminAction(sid, subscriptionSID string, kind vo.ActionKind) (*AdminAction, error) {
	if sid == "" {
		return nil, fmt.Errorf("admin action SID is required")
	}
	if subscriptionSID == "" {
		return nil, fmt.Errorf("subscription SID is required")
	}
	if !vo.ValidActionKinds[kind] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidActionKind, kind)
	}

	return &AdminAction{
		sid:             sid,
		subscriptionSID: subscriptionSID,
		kind:            kind,
		status:          vo.ActionStatusPending,
		requestedAt:     time.Now(),
	}, nil
}

// ReconstructAdminAction reconstructs an action record from persistence
func ReconstructAdminAction(
	sid, subscriptionSID string,
	kind vo.ActionKind,
	status vo.ActionStatus,
	requestedAt time.Time,
	completedAt *time.Time,
	details map[string]interface{},
) (*AdminAction, error) {
	if sid == "" {
		return nil, fmt.Errorf("admin action SID is required")
	}
	if !vo.ValidActionKinds[kind] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidActionKind, kind)
	}
	if !vo.ValidActionStatuses[status] {
		return nil, fmt.Errorf("invalid admin action status: %s", status)
	}

	return &AdminAction{
		sid:             sid,
		subscriptionSID: subscriptionSID,
		kind:            kind,
		status:          status,
		requestedAt:     requestedAt,
		completedAt:     completedAt,
		details:         details,
	}, nil
}

func (a *AdminAction) SID() string             { return a.sid }
func (a *AdminAction) SubscriptionSID() string { return a.subscriptionSID }
func (a *AdminAction) Kind() vo.ActionKind     { return a.kind }
func (a *AdminAction) Status() vo.ActionStatus { return a.status }
func (a *AdminAction) RequestedAt() time.Time  { return a.requestedAt }
func (a *AdminAction) CompletedAt() *time.Time { return a.completedAt }

// Details returns the action-specific payload.
func (a *AdminAction) Details() map[string]interface{} {
	return a.details
}

// Complete finalizes the record as completed with its details payload.
func (a *AdminAction) Complete(details map[string]interface{}) error {
	if a.status.IsFinal() {
		return ErrActionFinalized
	}

	now := time.Now()
	a.status = vo.ActionStatusCompleted
	a.completedAt = &now
	a.details = details
	return nil
}

// Fail finalizes the record as failed with its details payload.
func (a *AdminAction) Fail(details map[string]interface{}) error {
	if a.status.IsFinal() {
		return ErrActionFinalized
	}

	now := time.Now()
	a.status = vo.ActionStatusFailed
	a.completedAt = &now
	a.details = details
	return nil
}
