package valueobjects

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
)

func (s VerificationStatus) String() string {
	return string(s)
}

func (s VerificationStatus) IsApproved() bool {
	return s == VerificationApproved
}

var ValidVerificationStatuses = map[VerificationStatus]bool{
	VerificationPending:  true,
	VerificationApproved: true,
}
