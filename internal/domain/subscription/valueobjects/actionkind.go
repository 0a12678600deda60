package valueobjects

type ActionKind string

const (
	ActionPause   ActionKind = "pause"
	ActionBackup  ActionKind = "backup"
	ActionDestroy ActionKind = "destroy"
)

func (k ActionKind) String() string {
	return string(k)
}

var ValidActionKinds = map[ActionKind]bool{
	ActionPause:   true,
	ActionBackup:  true,
	ActionDestroy: true,
}
