package entity

type SessionState int

const (
	SessionInactive SessionState = iota
	SessionCapturing
	SessionActive
	SessionTerminating
)

func (s SessionState) String() string {
	switch s {
	case SessionInactive:
		return "inactive"
	case SessionCapturing:
		return "capturing"
	case SessionActive:
		return "active"
	case SessionTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

type InputKind string

const (
	InputMove     InputKind = "move"
	InputClick    InputKind = "click"
	InputKey      InputKind = "key"
	InputNavigate InputKind = "navigate"
)

// KeyEscape is the key name that cancels an active session.
const KeyEscape = "Escape"

type InputEvent struct {
	Kind  InputKind
	Point Point
	Key   string
}

// Pick is the result of a confirmed session.
type Pick struct {
	Color     Color
	Format    Format
	Formatted string
}
