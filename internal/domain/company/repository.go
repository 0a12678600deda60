package company

import "context"

// Repository defines the persistence contract for companies
type Repository interface {
	Create(ctx context.Context, company *Company) error
	GetBySID(ctx context.Context, sid string) (*Company, error)
	Update(ctx context.Context, company *Company) error
}
