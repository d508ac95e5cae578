package shell

import (
	"vectoriser/internal/dialog"
	"vectoriser/internal/log"
)

// Picker shows a file-open dialog for req and reports the outcome through
// reply exactly once. Pick must not block the caller; reply is expected
// on the same goroutine that drives the Shell.
type Picker interface {
	Pick(req Request, reply func(Msg))
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(req Request, reply func(Msg))

// Pick calls f.
func (f PickerFunc) Pick(req Request, reply func(Msg)) {
	f(req, reply)
}

// Shell owns the application state and feeds it through Update. All
// methods must be called from the UI goroutine.
type Shell struct {
	state     State
	opts      dialog.Options
	picker    Picker
	logger    *log.Logger
	listeners []func(State)
	onError   func(error)
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger used for event tracing.
func WithLogger(l *log.Logger) Option {
	return func(s *Shell) { s.logger = l }
}

// WithErrorHandler sets the function that surfaces dialog failures.
func WithErrorHandler(fn func(error)) Option {
	return func(s *Shell) { s.onError = fn }
}

// New creates a Shell in the initial state.
func New(picker Picker, opts dialog.Options, options ...Option) *Shell {
	s := &Shell{
		state:  Initial(),
		opts:   opts,
		picker: picker,
		logger: log.Default(),
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// State returns the current state.
func (s *Shell) State() State {
	return s.state
}

// Options returns the dialog options used for the next request.
func (s *Shell) Options() dialog.Options {
	return s.opts
}

// SetOptions replaces the dialog options for later requests. A dialog
// that is already open keeps the options it was opened with.
func (s *Shell) SetOptions(opts dialog.Options) {
	s.opts = opts
}

// OnChange registers fn to run after every state change.
func (s *Shell) OnChange(fn func(State)) {
	s.listeners = append(s.listeners, fn)
}

// Dispatch applies msg and executes the resulting dialog request, if any.
func (s *Shell) Dispatch(msg Msg) {
	prev := s.state
	next, req := Update(prev, msg, s.opts)
	s.trace(prev, next, msg, req)
	s.state = next

	if next != prev {
		for _, fn := range s.listeners {
			fn(next)
		}
	}

	if failed, ok := msg.(PickFailed); ok && !IsStale(prev, failed.RequestID) && s.onError != nil {
		s.onError(failed.Cause())
	}

	if req != nil {
		s.picker.Pick(*req, s.Dispatch)
	}
}

func (s *Shell) trace(prev, next State, msg Msg, req *Request) {
	switch m := msg.(type) {
	case RequestFilePick:
		if req == nil {
			s.logger.With(log.F("request_id", prev.Pending().String())).
				Debug("Dialog already open, ignoring request")
			return
		}
		s.logger.With(
			log.F("request_id", req.ID.String()),
			log.F("filter", req.Options.Pattern()),
			log.F("start_dir", req.Options.StartDir),
		).Debug("Opening file dialog")

	case FilePicked:
		l := s.logger.With(log.F("request_id", m.RequestID.String()))
		if IsStale(prev, m.RequestID) {
			l.Debug("Dropping stale dialog result")
			return
		}
		if path, ok := next.SelectedPath(); ok && next.Outcome() == OutcomePicked {
			l.With(log.F("path", path)).Info("Image selected")
		} else {
			l.Info("Dialog closed without a selection")
		}

	case PickFailed:
		if IsStale(prev, m.RequestID) {
			return
		}
		s.logger.WithError(m.Cause()).With(log.F("request_id", m.RequestID.String())).Error("File dialog failed")
	}
}
