package mappers

import (
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/company"
	companyVO "github.com/officeless-platform/officeless-self-service-portal/internal/domain/company/valueobjects"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/persistence/models"
)

// CompanyMapper converts between the company aggregate and its GORM
// model
type CompanyMapper struct{}

func NewCompanyMapper() *CompanyMapper {
	return &CompanyMapper{}
}

func (m *CompanyMapper) ToModel(c *company.Company) *models.CompanyModel {
	return &models.CompanyModel{
		SID:                c.SID(),
		LegalName:          c.LegalName(),
		RegistrationNumber: c.RegistrationNumber(),
		Address:            c.Address(),
		BillingContact:     c.BillingContact(),
		TechnicalContact:   c.TechnicalContact(),
		VerificationStatus: c.VerificationStatus().String(),
		CreatedAt:          c.CreatedAt(),
	}
}

func (m *CompanyMapper) ToDomain(model *models.CompanyModel) (*company.Company, error) {
	return company.ReconstructCompany(
		model.SID,
		model.LegalName,
		model.RegistrationNumber,
		model.Address,
		model.BillingContact,
		model.TechnicalContact,
		companyVO.VerificationStatus(model.VerificationStatus),
		model.CreatedAt,
	)
}
