// Package shell holds the application state and the update step that
// turns events into new state and file dialog requests. It knows nothing
// about the toolkit that renders the state or shows the dialog.
package shell

import (
	"github.com/google/uuid"
)

// Outcome is the result of the most recent dialog.
type Outcome int

const (
	// OutcomeNone means no dialog has completed yet.
	OutcomeNone Outcome = iota
	// OutcomePicked means the last dialog returned a file.
	OutcomePicked
	// OutcomeCancelled means the last dialog was dismissed.
	OutcomeCancelled
)

// Phase is whether a dialog is outstanding.
type Phase int

const (
	Idle Phase = iota
	AwaitingDialog
)

func (p Phase) String() string {
	if p == AwaitingDialog {
		return "awaiting_dialog"
	}
	return "idle"
}

// Status messages shown to the user.
const (
	StatusInitial   = "No image selected"
	StatusCancelled = "No file selected"
	StatusSelected  = "Selected: "
)

// State is the application state. It is a value: Update returns a new
// State and never changes the one it was given.
type State struct {
	selected    string
	hasSelected bool
	outcome     Outcome
	pending     uuid.UUID
}

// Initial returns the state at process start.
func Initial() State {
	return State{}
}

// SelectedPath returns the chosen file, if any.
func (s State) SelectedPath() (string, bool) {
	return s.selected, s.hasSelected
}

// Outcome returns the result of the most recent dialog.
func (s State) Outcome() Outcome {
	return s.outcome
}

// Phase reports whether a dialog is outstanding.
func (s State) Phase() Phase {
	if s.pending != uuid.Nil {
		return AwaitingDialog
	}
	return Idle
}

// Pending returns the id of the outstanding request, or uuid.Nil.
func (s State) Pending() uuid.UUID {
	return s.pending
}

// StatusText is derived from the selection and the last outcome; it is
// never stored.
func (s State) StatusText() string {
	switch s.outcome {
	case OutcomePicked:
		return StatusSelected + s.selected
	case OutcomeCancelled:
		return StatusCancelled
	default:
		return StatusInitial
	}
}
