package subscription

import (
	"fmt"
	"time"

	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription/valueobjects"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/constants"
)

// Subscription represents the onboarding subscription aggregate root.
// The lifecycle status only ever moves forward along
// draft → pending_approval → approved → provisioning → ready, with
// rejected as an alternate terminal branch. The paused and destroyed
// flags overlay the status; destroyed is permanent and blocks every
// later mutation.
type Subscription struct {
	sid                 string
	companySID          string
	packageID           string
	addOns              []string
	contractMonths      int
	status              vo.OnboardingStatus
	infraProfileID      string
	awsMode             string
	awsRoleARN          *string
	awsAccountID        *string
	awsRegion           *string
	envName             string
	planSnapshot        *PlanSnapshot
	costEstimate        *CostEstimate
	paused              bool
	destroyed           bool
	lastBackup          *BackupRecord
	endpoints           *Endpoints
	initialSetupShownAt *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

// NewSubscription creates a draft subscription with default selections.
func NewSubscription(sid, companySID, envName string) (*Subscription, error) {
	if sid == "" {
		return nil, fmt.Errorf("subscription SID is required")
	}
	if companySID == "" {
		return nil, fmt.Errorf("company SID is required")
	}
	if envName == "" {
		return nil, fmt.Errorf("environment name is required")
	}

	now := time.Now()
	return &Subscription{
		sid:            sid,
		companySID:     companySID,
		packageID:      "essentials",
		addOns:         []string{},
		contractMonths: constants.MinContractMonths,
		status:         vo.StatusDraft,
		infraProfileID: "P1",
		awsMode:        "C",
		envName:        envName,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructSubscriptionParams carries the full persisted state of a
// subscription for rehydration.
type ReconstructSubscriptionParams struct {
	SID                 string
	CompanySID          string
	PackageID           string
	AddOns              []string
	ContractMonths      int
	Status              vo.OnboardingStatus
	InfraProfileID      string
	AWSMode             string
	AWSRoleARN          *string
	AWSAccountID        *string
	AWSRegion           *string
	EnvName             string
	PlanSnapshot        *PlanSnapshot
	CostEstimate        *CostEstimate
	Paused              bool
	Destroyed           bool
	LastBackup          *BackupRecord
	Endpoints           *Endpoints
	InitialSetupShownAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ReconstructSubscription reconstructs a subscription from persistence
func ReconstructSubscription(p ReconstructSubscriptionParams) (*Subscription, error) {
	if p.SID == "" {
		return nil, fmt.Errorf("subscription SID is required")
	}
	if p.CompanySID == "" {
		return nil, fmt.Errorf("company SID is required")
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid subscription status: %s", p.Status)
	}

	addOns := p.AddOns
	if addOns == nil {
		addOns = []string{}
	}

	return &Subscription{
		sid:                 p.SID,
		companySID:          p.CompanySID,
		packageID:           p.PackageID,
		addOns:              addOns,
		contractMonths:      p.ContractMonths,
		status:              p.Status,
		infraProfileID:      p.InfraProfileID,
		awsMode:             p.AWSMode,
		awsRoleARN:          p.AWSRoleARN,
		awsAccountID:        p.AWSAccountID,
		awsRegion:           p.AWSRegion,
		envName:             p.EnvName,
		planSnapshot:        p.PlanSnapshot,
		costEstimate:        p.CostEstimate,
		paused:              p.Paused,
		destroyed:           p.Destroyed,
		lastBackup:          p.LastBackup,
		endpoints:           p.Endpoints,
		initialSetupShownAt: p.InitialSetupShownAt,
		createdAt:           p.CreatedAt,
		updatedAt:           p.UpdatedAt,
	}, nil
}

func (s *Subscription) SID() string                     { return s.sid }
func (s *Subscription) CompanySID() string              { return s.companySID }
func (s *Subscription) PackageID() string               { return s.packageID }
func (s *Subscription) ContractMonths() int             { return s.contractMonths }
func (s *Subscription) Status() vo.OnboardingStatus     { return s.status }
func (s *Subscription) InfraProfileID() string          { return s.infraProfileID }
func (s *Subscription) AWSMode() string                 { return s.awsMode }
func (s *Subscription) AWSRoleARN() *string             { return s.awsRoleARN }
func (s *Subscription) AWSAccountID() *string           { return s.awsAccountID }
func (s *Subscription) AWSRegion() *string              { return s.awsRegion }
func (s *Subscription) EnvName() string                 { return s.envName }
func (s *Subscription) PlanSnapshot() *PlanSnapshot     { return s.planSnapshot }
func (s *Subscription) CostEstimate() *CostEstimate     { return s.costEstimate }
func (s *Subscription) Paused() bool                    { return s.paused }
func (s *Subscription) Destroyed() bool                 { return s.destroyed }
func (s *Subscription) LastBackup() *BackupRecord       { return s.lastBackup }
func (s *Subscription) Endpoints() *Endpoints           { return s.endpoints }
func (s *Subscription) InitialSetupShownAt() *time.Time { return s.initialSetupShownAt }
func (s *Subscription) CreatedAt() time.Time            { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time            { return s.updatedAt }

// AddOns returns a copy of the selected add-on identifiers.
func (s *Subscription) AddOns() []string {
	out := make([]string, len(s.addOns))
	copy(out, s.addOns)
	return out
}

func (s *Subscription) touch() {
	s.updatedAt = time.Now()
}

// SelectPackage overwrites the package selection. Legal at any point
// before destruction; repeated calls simply replace prior selections.
func (s *Subscription) SelectPackage(packageID string, addOns []string, contractMonths int) error {
	if s.destroyed {
		return ErrSubscriptionDestroyed
	}
	if packageID == "" {
		return ErrPackageRequired
	}
	if contractMonths < constants.MinContractMonths {
		return fmt.Errorf("%w: %d months (minimum %d)", ErrContractTooShort, contractMonths, constants.MinContractMonths)
	}

	if addOns == nil {
		addOns = []string{}
	}

	s.packageID = packageID
	s.addOns = addOns
	s.contractMonths = contractMonths
	s.touch()
	return nil
}

// SelectInfraProfile overwrites the sizing profile selection.
func (s *Subscription) SelectInfraProfile(profileID string) error {
	if s.destroyed {
		return ErrSubscriptionDestroyed
	}
	if profileID == "" {
		return ErrInfraProfileRequired
	}

	s.infraProfileID = profileID
	s.touch()
	return nil
}

// SelectAWSMode overwrites the AWS access mode selection along with the
// mode-specific fields.
func (s *Subscription) SelectAWSMode(mode string, roleARN, accountID, region *string) error {
	if s.destroyed {
		return ErrSubscriptionDestroyed
	}
	if mode == "" {
		return ErrAWSModeRequired
	}

	s.awsMode = mode
	s.awsRoleARN = roleARN
	s.awsAccountID = accountID
	s.awsRegion = region
	s.touch()
	return nil
}

// AttachPlan stores the generated plan and cost estimate snapshots.
func (s *Subscription) AttachPlan(plan *PlanSnapshot, estimate *CostEstimate) error {
	if s.destroyed {
		return ErrSubscriptionDestroyed
	}

	s.planSnapshot = plan
	s.costEstimate = estimate
	s.touch()
	return nil
}

// transition moves the status along one lifecycle edge. Destroyed
// environments never transition.
func (s *Subscription) transition(target vo.OnboardingStatus) error {
	if s.destroyed {
		return ErrSubscriptionDestroyed
	}
	if !s.status.CanTransitionTo(target) {
		return ErrInvalidTransition(s.status.String(), target.String())
	}

	s.status = target
	s.touch()
	return nil
}

// SubmitForApproval moves a draft subscription to pending_approval.
func (s *Subscription) SubmitForApproval() error {
	return s.transition(vo.StatusPendingApproval)
}

// Approve moves a pending subscription to approved.
func (s *Subscription) Approve() error {
	return s.transition(vo.StatusApproved)
}

// Reject moves a pending subscription to the rejected terminal state.
func (s *Subscription) Reject() error {
	return s.transition(vo.StatusRejected)
}

// BeginProvisioning moves an approved subscription to provisioning.
func (s *Subscription) BeginProvisioning() error {
	return s.transition(vo.StatusProvisioning)
}

// CompleteProvisioning moves a provisioning subscription to ready,
// records the synthesized endpoints, and marks the one-time setup view
// as shown.
func (s *Subscription) CompleteProvisioning(endpoints Endpoints) error {
	if err := s.transition(vo.StatusReady); err != nil {
		return err
	}

	now := time.Now()
	s.endpoints = &endpoints
	s.initialSetupShownAt = &now
	s.updatedAt = now
	return nil
}

// Pause flags the environment as paused. The status itself is left
// unchanged. Pausing an already paused subscription is a no-op.
func (s *Subscription) Pause() error {
	if s.destroyed {
		return ErrSubscriptionDestroyed
	}
	if s.status == vo.StatusRejected {
		return ErrSubscriptionRejected
	}

	if s.paused {
		return nil
	}
	s.paused = true
	s.touch()
	return nil
}

// Unpause clears the paused flag.
func (s *Subscription) Unpause() error {
	if s.destroyed {
		return ErrSubscriptionDestroyed
	}

	if !s.paused {
		return nil
	}
	s.paused = false
	s.touch()
	return nil
}

// RecordBackup advances the last-backup pointer. Each call overwrites
// the previous record.
func (s *Subscription) RecordBackup(record BackupRecord) error {
	if s.destroyed {
		return ErrSubscriptionDestroyed
	}

	s.lastBackup = &record
	s.touch()
	return nil
}

// Destroy permanently flags the environment as destroyed. The stored
// paused flag is left as-is; destroyed supersedes it on every read.
func (s *Subscription) Destroy() error {
	if s.destroyed {
		return ErrSubscriptionDestroyed
	}

	s.destroyed = true
	s.touch()
	return nil
}
