package company

import "errors"

var (
	ErrCompanyNotFound            = errors.New("company not found")
	ErrLegalNameRequired          = errors.New("legal name is required")
	ErrRegistrationNumberRequired = errors.New("registration number is required")
	ErrAddressRequired            = errors.New("address is required")
	ErrBillingContactRequired     = errors.New("billing contact is required")
	ErrTechnicalContactRequired   = errors.New("technical contact is required")
	ErrInvalidVerificationStatus  = errors.New("invalid verification status")
)
