package valueobjects

// Health is a traffic-light indicator derived from lifecycle state.
// It is computed on read and never persisted.
type Health string

const (
	HealthGreen Health = "green"
	HealthAmber Health = "amber"
	HealthRed   Health = "red"
)

func (h Health) String() string {
	return string(h)
}
