// Package testutil provides mock implementations for testing the
// application layer.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/company"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

// NopLogger is a logger.Interface that discards everything.
type NopLogger struct{}

func NewNopLogger() *NopLogger { return &NopLogger{} }

func (NopLogger) Debug(msg string, args ...any)                   {}
func (NopLogger) Info(msg string, args ...any)                    {}
func (NopLogger) Warn(msg string, args ...any)                    {}
func (NopLogger) Error(msg string, args ...any)                   {}
func (n NopLogger) With(args ...any) logger.Interface             { return n }
func (NopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (NopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (NopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (NopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

// MockCompanyRepository is an in-memory company.Repository with error
// injection for testing.
type MockCompanyRepository struct {
	mu        sync.RWMutex
	companies map[string]*company.Company

	createError error
	getError    error
	updateError error
}

func NewMockCompanyRepository() *MockCompanyRepository {
	return &MockCompanyRepository{
		companies: make(map[string]*company.Company),
	}
}

func (m *MockCompanyRepository) SetCreateError(err error) { m.createError = err }
func (m *MockCompanyRepository) SetGetError(err error)    { m.getError = err }
func (m *MockCompanyRepository) SetUpdateError(err error) { m.updateError = err }

func (m *MockCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createError != nil {
		return m.createError
	}
	m.companies[c.SID()] = c
	return nil
}

func (m *MockCompanyRepository) GetBySID(ctx context.Context, sid string) (*company.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}
	c, ok := m.companies[sid]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (m *MockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.updateError != nil {
		return m.updateError
	}
	if _, ok := m.companies[c.SID()]; !ok {
		return company.ErrCompanyNotFound
	}
	m.companies[c.SID()] = c
	return nil
}

// MockSubscriptionRepository is an in-memory subscription.Repository
// with error injection for testing.
type MockSubscriptionRepository struct {
	mu            sync.RWMutex
	subscriptions map[string]*subscription.Subscription

	createError error
	getError    error
	updateError error
	listError   error
}

func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{
		subscriptions: make(map[string]*subscription.Subscription),
	}
}

func (m *MockSubscriptionRepository) SetCreateError(err error) { m.createError = err }
func (m *MockSubscriptionRepository) SetGetError(err error)    { m.getError = err }
func (m *MockSubscriptionRepository) SetUpdateError(err error) { m.updateError = err }
func (m *MockSubscriptionRepository) SetListError(err error)   { m.listError = err }

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createError != nil {
		return m.createError
	}
	m.subscriptions[sub.SID()] = sub
	return nil
}

func (m *MockSubscriptionRepository) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}
	sub, ok := m.subscriptions[sid]
	if !ok {
		return nil, nil
	}
	return sub, nil
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.updateError != nil {
		return m.updateError
	}
	if _, ok := m.subscriptions[sub.SID()]; !ok {
		return subscription.ErrSubscriptionNotFound
	}
	m.subscriptions[sub.SID()] = sub
	return nil
}

func (m *MockSubscriptionRepository) List(ctx context.Context) ([]*subscription.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.listError != nil {
		return nil, m.listError
	}
	result := make([]*subscription.Subscription, 0, len(m.subscriptions))
	for _, sub := range m.subscriptions {
		result = append(result, sub)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt().After(result[j].UpdatedAt())
	})
	return result, nil
}

// MockAdminActionRepository is an in-memory
// subscription.AdminActionRepository with error injection for testing.
type MockAdminActionRepository struct {
	mu      sync.RWMutex
	actions []*subscription.AdminAction

	createError error
	listError   error
}

func NewMockAdminActionRepository() *MockAdminActionRepository {
	return &MockAdminActionRepository{}
}

func (m *MockAdminActionRepository) SetCreateError(err error) { m.createError = err }
func (m *MockAdminActionRepository) SetListError(err error)   { m.listError = err }

func (m *MockAdminActionRepository) Create(ctx context.Context, action *subscription.AdminAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createError != nil {
		return m.createError
	}
	m.actions = append(m.actions, action)
	return nil
}

func (m *MockAdminActionRepository) List(ctx context.Context, filter subscription.AdminActionFilter) ([]*subscription.AdminAction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.listError != nil {
		return nil, m.listError
	}
	result := make([]*subscription.AdminAction, 0, len(m.actions))
	for _, action := range m.actions {
		if filter.SubscriptionSID != "" && action.SubscriptionSID() != filter.SubscriptionSID {
			continue
		}
		if filter.Kind != "" && action.Kind() != filter.Kind {
			continue
		}
		result = append(result, action)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RequestedAt().After(result[j].RequestedAt())
	})
	return result, nil
}

// MockTermsAcceptanceRepository is an in-memory
// subscription.TermsAcceptanceRepository with error injection for
// testing.
type MockTermsAcceptanceRepository struct {
	mu          sync.RWMutex
	acceptances []*subscription.TermsAcceptance

	createError error
	listError   error
}

func NewMockTermsAcceptanceRepository() *MockTermsAcceptanceRepository {
	return &MockTermsAcceptanceRepository{}
}

func (m *MockTermsAcceptanceRepository) SetCreateError(err error) { m.createError = err }
func (m *MockTermsAcceptanceRepository) SetListError(err error)   { m.listError = err }

func (m *MockTermsAcceptanceRepository) Create(ctx context.Context, acceptance *subscription.TermsAcceptance) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createError != nil {
		return m.createError
	}
	m.acceptances = append(m.acceptances, acceptance)
	return nil
}

func (m *MockTermsAcceptanceRepository) ListBySubscription(ctx context.Context, subscriptionSID string) ([]*subscription.TermsAcceptance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.listError != nil {
		return nil, m.listError
	}
	result := make([]*subscription.TermsAcceptance, 0)
	for _, acceptance := range m.acceptances {
		if acceptance.SubscriptionSID() == subscriptionSID {
			result = append(result, acceptance)
		}
	}
	return result, nil
}
