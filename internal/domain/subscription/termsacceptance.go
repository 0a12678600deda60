package subscription

import (
	"fmt"
	"time"
)

// TermsAcceptance records that the customer accepted a given terms
// version for a subscription at submission time.
type TermsAcceptance struct {
	sid             string
	subscriptionSID string
	termsVersion    string
	acceptedAt      time.Time
	ipHash          string
}

// NewTermsAcceptance creates an acceptance record stamped now.
func NewTermsAcceptance(sid, subscriptionSID, termsVersion, ipHash string) (*TermsAcceptance, error) {
	if sid == "" {
		return nil, fmt.Errorf("terms acceptance SID is required")
	}
	if subscriptionSID == "" {
		return nil, fmt.Errorf("subscription SID is required")
	}
	if termsVersion == "" {
		return nil, fmt.Errorf("terms version is required")
	}

	return &TermsAcceptance{
		sid:             sid,
		subscriptionSID: subscriptionSID,
		termsVersion:    termsVersion,
		acceptedAt:      time.Now(),
		ipHash:          ipHash,
	}, nil
}

// ReconstructTermsAcceptance reconstructs a record from persistence
func ReconstructTermsAcceptance(sid, subscriptionSID, termsVersion, ipHash string, acceptedAt time.Time) (*TermsAcceptance, error) {
	if sid == "" {
		return nil, fmt.Errorf("terms acceptance SID is required")
	}

	return &TermsAcceptance{
		sid:             sid,
		subscriptionSID: subscriptionSID,
		termsVersion:    termsVersion,
		acceptedAt:      acceptedAt,
		ipHash:          ipHash,
	}, nil
}

func (t *TermsAcceptance) SID() string             { return t.sid }
func (t *TermsAcceptance) SubscriptionSID() string { return t.subscriptionSID }
func (t *TermsAcceptance) TermsVersion() string    { return t.termsVersion }
func (t *TermsAcceptance) AcceptedAt() time.Time   { return t.acceptedAt }
func (t *TermsAcceptance) IPHash() string          { return t.ipHash }
