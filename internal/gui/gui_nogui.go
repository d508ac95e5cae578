//go:build nogui
// +build nogui

package gui

import (
	"vectoriser/internal/config"
	"vectoriser/internal/errors"
)

// Start is a stub implementation for builds with GUI disabled
func Start(_ *config.Config, _ string) error {
	return errors.NewDialogError("GUI not available in this build, use the tui command", "", errors.DialogUnavailable, nil)
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
