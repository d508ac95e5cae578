package shell

import (
	"vectoriser/internal/dialog"
	"vectoriser/internal/errors"

	"github.com/google/uuid"
)

// Msg is an event handled by Update.
type Msg interface {
	msg()
}

// RequestFilePick is raised when the user activates the select button.
type RequestFilePick struct{}

// FilePicked carries the result of a dialog. OK is false when the dialog
// was dismissed without a choice.
type FilePicked struct {
	RequestID uuid.UUID
	Path      string
	OK        bool
}

// PickFailed reports a dialog that could not be shown or failed while
// open.
type PickFailed struct {
	RequestID uuid.UUID
	Err       error
}

// Cause returns the failure, never nil.
func (m PickFailed) Cause() error {
	if m.Err == nil {
		return errors.ErrDialogUnavailable
	}
	return m.Err
}

func (RequestFilePick) msg() {}
func (FilePicked) msg()      {}
func (PickFailed) msg()      {}

// Picked is the result of a dialog that returned path.
func Picked(id uuid.UUID, path string) FilePicked {
	return FilePicked{RequestID: id, Path: path, OK: true}
}

// Cancelled is the result of a dismissed dialog.
func Cancelled(id uuid.UUID) FilePicked {
	return FilePicked{RequestID: id}
}

// Request asks the toolkit to show one file-open dialog. The reply must
// carry ID.
type Request struct {
	ID      uuid.UUID
	Options dialog.Options
}
