package mappers

import (
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/persistence/models"
)

// TermsAcceptanceMapper converts between terms acceptance records and
// their GORM model
type TermsAcceptanceMapper struct{}

func NewTermsAcceptanceMapper() *TermsAcceptanceMapper {
	return &TermsAcceptanceMapper{}
}

func (m *TermsAcceptanceMapper) ToModel(acceptance *subscription.TermsAcceptance) *models.TermsAcceptanceModel {
	return &models.TermsAcceptanceModel{
		SID:             acceptance.SID(),
		SubscriptionSID: acceptance.SubscriptionSID(),
		TermsVersion:    acceptance.TermsVersion(),
		AcceptedAt:      acceptance.AcceptedAt(),
		IPHash:          acceptance.IPHash(),
	}
}

func (m *TermsAcceptanceMapper) ToDomain(model *models.TermsAcceptanceModel) (*subscription.TermsAcceptance, error) {
	return subscription.ReconstructTermsAcceptance(
		model.SID,
		model.SubscriptionSID,
		model.TermsVersion,
		model.IPHash,
		model.AcceptedAt,
	)
}
