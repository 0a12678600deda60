package usecases

import (
	"context"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/dto"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/company"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

// ListSubscriptionsUseCase returns every subscription with its owning
// company, most recently updated first. The review queue shows the
// company legal name next to each entry, and destroy confirmation
// needs it.
type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	companyRepo      company.Repository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	companyRepo company.Repository,
	log logger.Interface,
) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		companyRepo:      companyRepo,
		logger:           log,
	}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context) ([]*dto.SubscriptionWithCompanyDTO, error) {
	subs, err := uc.subscriptionRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, apperrors.NewStoreUnavailableError("failed to list subscriptions", err.Error())
	}

	// Companies are fetched once per distinct owner; most lists carry
	// one subscription per company anyway.
	companies := make(map[string]*dto.CompanyDTO)

	result := make([]*dto.SubscriptionWithCompanyDTO, 0, len(subs))
	for _, sub := range subs {
		entry := &dto.SubscriptionWithCompanyDTO{Subscription: dto.NewSubscriptionDTO(sub)}

		if cached, ok := companies[sub.CompanySID()]; ok {
			entry.Company = cached
		} else {
			owner, err := uc.companyRepo.GetBySID(ctx, sub.CompanySID())
			if err != nil {
				uc.logger.Warnw("failed to load owning company", "error", err, "company_sid", sub.CompanySID())
			} else if owner != nil {
				entry.Company = dto.NewCompanyDTO(owner)
				companies[sub.CompanySID()] = entry.Company
			}
		}

		result = append(result, entry)
	}
	return result, nil
}
