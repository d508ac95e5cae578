//go:build !nogui

package gui

import (
	"vectoriser/internal/errors"
	"vectoriser/internal/log"
	"vectoriser/internal/shell"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// FilePicker shows the toolkit's file-open dialog over a window. The
// dialog is non-modal for the event loop: Pick returns at once and the
// callback runs on the UI goroutine when the user closes it.
type FilePicker struct {
	parent fyne.Window
}

// NewFilePicker creates a picker that opens dialogs over parent.
func NewFilePicker(parent fyne.Window) *FilePicker {
	return &FilePicker{parent: parent}
}

// Pick implements shell.Picker.
func (p *FilePicker) Pick(req shell.Request, reply func(shell.Msg)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			reply(shell.PickFailed{
				RequestID: req.ID,
				Err:       errors.NewDialogError("file dialog failed", req.Options.Title, errors.DialogFailed, err),
			})
			return
		}
		if reader == nil {
			reply(shell.Cancelled(req.ID))
			return
		}

		path := reader.URI().Path()
		if err := reader.Close(); err != nil {
			log.LogWithError(err).Warnf("Could not close %s", path)
		}
		reply(shell.Picked(req.ID, path))
	}, p.parent)

	d.SetTitleText(req.Options.Title)
	d.SetFilter(storage.NewExtensionFileFilter(req.Options.DotExtensions()))

	if req.Options.StartDir != "" {
		lister, err := storage.ListerForURI(storage.NewFileURI(req.Options.StartDir))
		if err != nil {
			log.LogWithError(err).Debug("Start directory not listable, using default location")
		} else {
			d.SetLocation(lister)
		}
	}

	d.Show()
}
