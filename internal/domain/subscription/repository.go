package subscription

import (
	"context"

	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription/valueobjects"
)

// Repository defines the persistence contract for subscriptions
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetBySID(ctx context.Context, sid string) (*Subscription, error)
	Update(ctx context.Context, sub *Subscription) error
	// List returns all subscriptions ordered by most recently updated.
	List(ctx context.Context) ([]*Subscription, error)
}

// AdminActionFilter narrows an admin action listing. Zero values match
// everything.
type AdminActionFilter struct {
	SubscriptionSID string
	Kind            vo.ActionKind
}

// AdminActionRepository defines the persistence contract for the
// append-only admin action log
type AdminActionRepository interface {
	Create(ctx context.Context, action *AdminAction) error
	// List returns matching actions ordered by most recently requested.
	List(ctx context.Context, filter AdminActionFilter) ([]*AdminAction, error)
}

// TermsAcceptanceRepository defines the persistence contract for terms
// acceptance records
type TermsAcceptanceRepository interface {
	Create(ctx context.Context, acceptance *TermsAcceptance) error
	ListBySubscription(ctx context.Context, subscriptionSID string) ([]*TermsAcceptance, error)
}
