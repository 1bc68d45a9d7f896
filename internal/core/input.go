package core

// PointerKind classifies a host-neutral pointer event.
type PointerKind int

const (
	PointerNone    PointerKind = iota
	PointerPress               // Primary button went down
	PointerMotion              // Pointer moved, with or without a button held
	PointerRelease             // Primary button went up
)

// String returns a human-readable name for the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerNone:
		return "None"
	case PointerPress:
		return "Press"
	case PointerMotion:
		return "Motion"
	case PointerRelease:
		return "Release"
	default:
		return "Unknown"
	}
}

// PointerEvent is a pointer notification in client coordinates, already
// stripped of any terminal or toolkit specifics.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Action represents a keyboard intent, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionAdd           // Add a new box
	ActionClose         // Close the selected box
	ActionCycle         // Select the next box in stacking order
	ActionHelp          // Toggle the full help view
	ActionStats         // Open the session journal
	ActionBack          // Leave a secondary screen
	ActionQuit          // Exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAdd:
		return "Add"
	case ActionClose:
		return "Close"
	case ActionCycle:
		return "Cycle"
	case ActionHelp:
		return "Help"
	case ActionStats:
		return "Stats"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
