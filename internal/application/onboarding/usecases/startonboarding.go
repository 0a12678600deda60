package usecases

import (
	"context"
	"strings"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/dto"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/company"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/id"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

// StartOnboardingCommand carries the company registration form.
type StartOnboardingCommand struct {
	LegalName          string
	RegistrationNumber string
	Address            string
	BillingContact     string
	TechnicalContact   string
}

// StartOnboardingResult returns the created company and its draft
// subscription.
type StartOnboardingResult struct {
	Company      *dto.CompanyDTO      `json:"company"`
	Subscription *dto.SubscriptionDTO `json:"subscription"`
}

// StartOnboardingUseCase registers a company and opens a draft
// subscription with default selections.
type StartOnboardingUseCase struct {
	companyRepo      company.Repository
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewStartOnboardingUseCase(
	companyRepo company.Repository,
	subscriptionRepo subscription.Repository,
	log logger.Interface,
) *StartOnboardingUseCase {
	return &StartOnboardingUseCase{
		companyRepo:      companyRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           log,
	}
}

func (uc *StartOnboardingUseCase) Execute(ctx context.Context, cmd StartOnboardingCommand) (*StartOnboardingResult, error) {
	newCompany, err := company.NewCompany(
		id.NewCompanySID(),
		cmd.LegalName,
		cmd.RegistrationNumber,
		cmd.Address,
		cmd.BillingContact,
		cmd.TechnicalContact,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	// The env name is derived from the company SID so retries and log
	// correlation stay deterministic.
	envName := "env-" + strings.ToLower(strings.TrimPrefix(newCompany.SID(), "co_"))

	sub, err := subscription.NewSubscription(id.NewSubscriptionSID(), newCompany.SID(), envName)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create subscription", err.Error())
	}

	if err := uc.companyRepo.Create(ctx, newCompany); err != nil {
		uc.logger.Errorw("failed to persist company", "error", err)
		return nil, apperrors.NewStoreUnavailableError("failed to create company", err.Error())
	}
	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist subscription", "error", err, "company_sid", newCompany.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to create subscription", err.Error())
	}

	uc.logger.Infow("onboarding started",
		"company_sid", newCompany.SID(),
		"subscription_sid", sub.SID(),
		"env_name", envName)

	return &StartOnboardingResult{
		Company:      dto.NewCompanyDTO(newCompany),
		Subscription: dto.NewSubscriptionDTO(sub),
	}, nil
}
