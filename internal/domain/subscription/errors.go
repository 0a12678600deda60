package subscription

import (
	"errors"
	"fmt"
)

var (
	ErrSubscriptionNotFound    = errors.New("subscription not found")
	ErrSubscriptionDestroyed   = errors.New("subscription environment is destroyed")
	ErrSubscriptionRejected    = errors.New("subscription is rejected")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrContractTooShort        = errors.New("contract length below minimum")
	ErrPackageRequired         = errors.New("package id is required")
	ErrInfraProfileRequired    = errors.New("infra profile id is required")
	ErrAWSModeRequired         = errors.New("aws mode is required")
	ErrConfirmationMismatch    = errors.New("confirmation does not match company legal name")
	ErrPlanSnapshotMissing     = errors.New("plan snapshot has not been generated")
	ErrActionNotFound          = errors.New("admin action not found")
	ErrActionFinalized         = errors.New("admin action already finalized")
	ErrInvalidActionKind       = errors.New("invalid admin action kind")
)

func ErrInvalidTransition(from, to string) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
