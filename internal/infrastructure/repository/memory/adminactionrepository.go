package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
)

// AdminActionRepository is an in-memory implementation of
// subscription.AdminActionRepository
type AdminActionRepository struct {
	mu      sync.RWMutex
	actions []*subscription.AdminAction
}

func NewAdminActionRepository() *AdminActionRepository {
	return &AdminActionRepository{}
}

func (r *AdminActionRepository) Create(ctx context.Context, action *subscription.AdminAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, action)
	return nil
}

func (r *AdminActionRepository) List(ctx context.Context, filter subscription.AdminActionFilter) ([]*subscription.AdminAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*subscription.AdminAction
	for _, action := range r.actions {
		if filter.SubscriptionSID != "" && action.SubscriptionSID() != filter.SubscriptionSID {
			continue
		}
		if filter.Kind != "" && action.Kind() != filter.Kind {
			continue
		}
		out = append(out, action)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].RequestedAt().After(out[j].RequestedAt())
	})
	return out, nil
}
