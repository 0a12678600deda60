package valueobjects

type ActionStatus string

const (
	ActionStatusPending   ActionStatus = "pending"
	ActionStatusCompleted ActionStatus = "completed"
	ActionStatusFailed    ActionStatus = "failed"
)

func (s ActionStatus) String() string {
	return string(s)
}

// IsFinal reports whether the action record may no longer be mutated.
func (s ActionStatus) IsFinal() bool {
	return s == ActionStatusCompleted || s == ActionStatusFailed
}

var ValidActionStatuses = map[ActionStatus]bool{
	ActionStatusPending:   true,
	ActionStatusCompleted: true,
	ActionStatusFailed:    true,
}
