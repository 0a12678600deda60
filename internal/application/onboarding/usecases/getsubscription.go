package usecases

import (
	"context"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/dto"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/company"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

type GetSubscriptionCommand struct {
	SubscriptionSID string
}

// GetSubscriptionUseCase returns a subscription together with its
// owning company and derived health fields.
type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	companyRepo      company.Repository
	logger           logger.Interface
}

func NewGetSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	companyRepo company.Repository,
	log logger.Interface,
) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		companyRepo:      companyRepo,
		logger:           log,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, cmd GetSubscriptionCommand) (*dto.SubscriptionWithCompanyDTO, error) {
	sub, err := loadSubscription(ctx, uc.subscriptionRepo, cmd.SubscriptionSID)
	if err != nil {
		return nil, err
	}

	result := &dto.SubscriptionWithCompanyDTO{Subscription: dto.NewSubscriptionDTO(sub)}

	// A missing company does not fail the read; the subscription view
	// is still useful on its own.
	owner, err := uc.companyRepo.GetBySID(ctx, sub.CompanySID())
	if err != nil {
		uc.logger.Warnw("failed to load owning company", "error", err, "company_sid", sub.CompanySID())
	} else if owner != nil {
		result.Company = dto.NewCompanyDTO(owner)
	}

	return result, nil
}
