package shell

import (
	"path/filepath"

	"vectoriser/internal/dialog"

	"github.com/google/uuid"
)

// newRequestID is swapped in tests that need stable ids.
var newRequestID = uuid.New

// Update applies msg to s. It returns the new state and, for an accepted
// RequestFilePick, the single dialog request the caller must execute.
//
// A RequestFilePick while a dialog is outstanding is ignored. A result
// is applied in either phase, unless it names a request other than the
// outstanding one, in which case it is stale and dropped.
func Update(s State, msg Msg, opts dialog.Options) (State, *Request) {
	switch m := msg.(type) {
	case RequestFilePick:
		if s.Phase() == AwaitingDialog {
			return s, nil
		}
		id := newRequestID()
		s.pending = id
		dir := opts.StartDir
		if path, ok := s.SelectedPath(); ok {
			dir = filepath.Dir(path)
		}
		return s, &Request{ID: id, Options: opts.WithStartDir(dir)}

	case FilePicked:
		if IsStale(s, m.RequestID) {
			return s, nil
		}
		s.pending = uuid.Nil
		if m.OK && m.Path != "" {
			s.selected = m.Path
			s.hasSelected = true
			s.outcome = OutcomePicked
		} else {
			s.outcome = OutcomeCancelled
		}
		return s, nil

	case PickFailed:
		if IsStale(s, m.RequestID) {
			return s, nil
		}
		s.pending = uuid.Nil
		return s, nil
	}

	return s, nil
}

// IsStale reports whether a reply for id would be dropped by Update.
func IsStale(s State, id uuid.UUID) bool {
	return s.pending != uuid.Nil && id != uuid.Nil && id != s.pending
}
