package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
)

// SubscriptionRepository is an in-memory implementation of
// subscription.Repository
type SubscriptionRepository struct {
	mu            sync.RWMutex
	subscriptions map[string]*subscription.Subscription
}

func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{
		subscriptions: make(map[string]*subscription.Subscription),
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscriptions[sub.SID()] = cloneSubscription(sub)
	return nil
}

func (r *SubscriptionRepository) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, ok := r.subscriptions[sid]
	if !ok {
		return nil, nil
	}
	return cloneSubscription(sub), nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subscriptions[sub.SID()]; !ok {
		return subscription.ErrSubscriptionNotFound
	}
	r.subscriptions[sub.SID()] = cloneSubscription(sub)
	return nil
}

func (r *SubscriptionRepository) List(ctx context.Context) ([]*subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := make([]*subscription.Subscription, 0, len(r.subscriptions))
	for _, sub := range r.subscriptions {
		subs = append(subs, cloneSubscription(sub))
	}

	sort.Slice(subs, func(i, j int) bool {
		return subs[i].UpdatedAt().After(subs[j].UpdatedAt())
	})
	return subs, nil
}
