package company

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/company/valueobjects"
)

// Company represents the company aggregate root. Identity fields are
// write-once: they are set at registration and never change afterwards.
type Company struct {
	sid                string
	legalName          string
	registrationNumber string
	address            string
	billingContact     string
	technicalContact   string
	verificationStatus vo.VerificationStatus
	createdAt          time.Time
}

// NewCompany creates a new company in pending verification state
func NewCompany(sid, legalName, registrationNumber, address, billingContact, technicalContact string) (*Company, error) {
	if strings.TrimSpace(legalName) == "" {
		return nil, ErrLegalNameRequired
	}
	if strings.TrimSpace(registrationNumber) == "" {
		return nil, ErrRegistrationNumberRequired
	}
	if strings.TrimSpace(address) == "" {
		return nil, ErrAddressRequired
	}
	if strings.TrimSpace(billingContact) == "" {
		return nil, ErrBillingContactRequired
	}
	if strings.TrimSpace(technicalContact) == "" {
		return nil, ErrTechnicalContactRequired
	}

	return &Company{
		sid:                sid,
		legalName:          legalName,
		registrationNumber: registrationNumber,
		address:            address,
		billingContact:     billingContact,
		technicalContact:   technicalContact,
		verificationStatus: vo.VerificationPending,
		createdAt:          time.Now(),
	}, nil
}

// ReconstructCompany reconstructs a company from persistence
func ReconstructCompany(
	sid, legalName, registrationNumber, address, billingContact, technicalContact string,
	verificationStatus vo.VerificationStatus,
	createdAt time.Time,
) (*Company, error) {
	if sid == "" {
		return nil, fmt.Errorf("company SID is required")
	}
	if !vo.ValidVerificationStatuses[verificationStatus] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidVerificationStatus, verificationStatus)
	}

	return &Company{
		sid:                sid,
		legalName:          legalName,
		registrationNumber: registrationNumber,
		address:            address,
		billingContact:     billingContact,
		technicalContact:   technicalContact,
		verificationStatus: verificationStatus,
		createdAt:          createdAt,
	}, nil
}

func (c *Company) SID() string {
	return c.sid
}

func (c *Company) LegalName() string {
	return c.legalName
}

func (c *Company) RegistrationNumber() string {
	return c.registrationNumber
}

func (c *Company) Address() string {
	return c.address
}

func (c *Company) BillingContact() string {
	return c.billingContact
}

func (c *Company) TechnicalContact() string {
	return c.technicalContact
}

func (c *Company) VerificationStatus() vo.VerificationStatus {
	return c.verificationStatus
}

func (c *Company) CreatedAt() time.Time {
	return c.createdAt
}

// Approve marks the company as verified. Approving an already approved
// company is a no-op.
func (c *Company) Approve() {
	c.verificationStatus = vo.VerificationApproved
}

// MatchesLegalName reports whether the given confirmation text matches
// the registered legal name exactly, byte for byte.
func (c *Company) MatchesLegalName(confirmation string) bool {
	return confirmation == c.legalName
}
