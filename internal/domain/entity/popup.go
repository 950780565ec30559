package entity

// PopupState is the lifecycle state of the popup owned by a controller.
type PopupState int32

const (
	PopupNone PopupState = iota
	PopupHidden
	PopupVisible
	PopupDisposed
)

func (s PopupState) String() string {
	switch s {
	case PopupNone:
		return "no_popup"
	case PopupHidden:
		return "hidden"
	case PopupVisible:
		return "visible"
	case PopupDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// DismissPhase is the dismissal arbiter's state.
type DismissPhase int

const (
	// PhaseIdle means the popup is hidden.
	PhaseIdle DismissPhase = iota
	// PhaseArmed means the popup is visible and the pointer has not entered it yet.
	PhaseArmed
	// PhaseTracking means the pointer has entered the popup at least once.
	PhaseTracking
)

func (p DismissPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseArmed:
		return "armed"
	case PhaseTracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// ParseDismissPhase resolves a phase name as printed by String.
func ParseDismissPhase(name string) (DismissPhase, bool) {
	for _, p := range []DismissPhase{PhaseIdle, PhaseArmed, PhaseTracking} {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}

// DismissalState is the arbiter's per-visibility memory.
// MouseEntered is only ever true while the popup is visible.
type DismissalState struct {
	MouseEntered bool
}
