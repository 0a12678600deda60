package memory

import (
	"context"
	"sync"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
)

// TermsAcceptanceRepository is an in-memory implementation of
// subscription.TermsAcceptanceRepository
type TermsAcceptanceRepository struct {
	mu          sync.RWMutex
	acceptances []*subscription.TermsAcceptance
}

func NewTermsAcceptanceRepository() *TermsAcceptanceRepository {
	return &TermsAcceptanceRepository{}
}

func (r *TermsAcceptanceRepository) Create(ctx context.Context, acceptance *subscription.TermsAcceptance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.acceptances = append(r.acceptances, acceptance)
	return nil
}

func (r *TermsAcceptanceRepository) ListBySubscription(ctx context.Context, subscriptionSID string) ([]*subscription.TermsAcceptance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*subscription.TermsAcceptance
	for _, acceptance := range r.acceptances {
		if acceptance.SubscriptionSID() == subscriptionSID {
			out = append(out, acceptance)
		}
	}
	return out, nil
}
