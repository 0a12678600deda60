package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/company"
	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/company/valueobjects"
)

type companyRecord struct {
	SID                string    `json:"sid"`
	LegalName          string    `json:"legalName"`
	RegistrationNumber string    `json:"registrationNumber"`
	Address            string    `json:"address"`
	BillingContact     string    `json:"billingContact"`
	TechnicalContact   string    `json:"technicalContact"`
	VerificationStatus string    `json:"verificationStatus"`
	CreatedAt          time.Time `json:"createdAt"`
}

// CompanyRepository is a Redis-backed implementation of
// company.Repository
type CompanyRepository struct {
	client *redis.Client
}

func NewCompanyRepository(client *redis.Client) *CompanyRepository {
	return &CompanyRepository{client: client}
}

func (r *CompanyRepository) set(ctx context.Context, c *company.Company) error {
	record := companyRecord{
		SID:                c.SID(),
		LegalName:          c.LegalName(),
		RegistrationNumber: c.RegistrationNumber(),
		Address:            c.Address(),
		BillingContact:     c.BillingContact(),
		TechnicalContact:   c.TechnicalContact(),
		VerificationStatus: c.VerificationStatus().String(),
		CreatedAt:          c.CreatedAt(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal company record: %w", err)
	}
	if err := r.client.Set(ctx, companyKey(c.SID()), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store company record: %w", err)
	}
	return nil
}

func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	return r.set(ctx, c)
}

func (r *CompanyRepository) GetBySID(ctx context.Context, sid string) (*company.Company, error) {
	data, err := r.client.Get(ctx, companyKey(sid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company record: %w", err)
	}

	var record companyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal company record: %w", err)
	}

	return company.ReconstructCompany(
		record.SID,
		record.LegalName,
		record.RegistrationNumber,
		record.Address,
		record.BillingContact,
		record.TechnicalContact,
		vo.VerificationStatus(record.VerificationStatus),
		record.CreatedAt,
	)
}

func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	exists, err := r.client.Exists(ctx, companyKey(c.SID())).Result()
	if err != nil {
		return fmt.Errorf("failed to check company record: %w", err)
	}
	if exists == 0 {
		return company.ErrCompanyNotFound
	}
	return r.set(ctx, c)
}
