package session

// State is the lifecycle state of a vault session.
type State int

// Session states. A session starts Locked.
const (
	Locked State = iota
	Unlocking
	Unlocked
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case Unlocking:
		return "unlocking"
	case Unlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}
