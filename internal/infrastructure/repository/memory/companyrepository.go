package memory

import (
	"context"
	"sync"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/company"
)

// CompanyRepository is an in-memory implementation of
// company.Repository
type CompanyRepository struct {
	mu        sync.RWMutex
	companies map[string]*company.Company
}

func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{
		companies: make(map[string]*company.Company),
	}
}

func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies[c.SID()] = cloneCompany(c)
	return nil
}

func (r *CompanyRepository) GetBySID(ctx context.Context, sid string) (*company.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.companies[sid]
	if !ok {
		return nil, nil
	}
	return cloneCompany(c), nil
}

func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.companies[c.SID()]; !ok {
		return company.ErrCompanyNotFound
	}
	r.companies[c.SID()] = cloneCompany(c)
	return nil
}
