package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())
	assert.Equal(t, origErr, Unwrap(wrappedErr))

	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	configErr := NewConfigError("invalid extension", "dialog.extensions", InvalidConfig, nil)
	wrappedConfig := Wrapf(configErr, "invalid configuration in %s", "/etc/config.yaml")
	assert.Equal(t, InvalidConfig, KindOf(wrappedConfig))
	assert.True(t, IsInvalidConfig(wrappedConfig))
	assert.Equal(t, Unknown, KindOf(Wrap(fmt.Errorf("plain"), "wrapped")))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())
	assert.True(t, Is(deepWrapped, origErr))
}

func TestFileError(t *testing.T) {
	fileErr := NewFileError("cannot access", "/path/to/file", FileAccessDenied, nil)
	assert.Equal(t, "cannot access: /path/to/file", fileErr.Error())
	assert.Equal(t, "/path/to/file", fileErr.Path())
	assert.Equal(t, FileAccessDenied, fileErr.Kind())

	origErr := fmt.Errorf("permission denied")
	fileErr = NewFileError("cannot access", "/path/to/file", FileAccessDenied, origErr)
	assert.Equal(t, "cannot access: /path/to/file: permission denied", fileErr.Error())
	assert.Equal(t, origErr, Unwrap(fileErr))

	notFoundErr := NewFileError("file not found", "/missing/file", FileNotFound, nil)
	assert.True(t, IsFileNotFound(notFoundErr))
	assert.False(t, IsFileNotFound(fileErr))
}

func TestConfigError(t *testing.T) {
	configErr := NewConfigError("invalid value", "dialog.extensions", InvalidConfig, nil)
	assert.Equal(t, "invalid value: dialog.extensions", configErr.Error())
	assert.Equal(t, "dialog.extensions", configErr.Param())
	assert.True(t, IsInvalidConfig(configErr))
	assert.True(t, errors.Is(configErr, ErrInvalidConfig))

	wrapped := fmt.Errorf("loading: %w", configErr)
	assert.True(t, IsInvalidConfig(wrapped))
	assert.Equal(t, InvalidConfig, KindOf(wrapped))

	notFound := NewConfigError("config not found", "", ConfigNotFound, nil)
	assert.False(t, IsInvalidConfig(notFound))
	assert.False(t, errors.Is(notFound, ErrInvalidConfig))
}

func TestDialogError(t *testing.T) {
	cause := fmt.Errorf("no display")
	dialogErr := NewDialogError("file dialog failed", "Select an image", DialogFailed, cause)
	assert.Equal(t, `file dialog failed: "Select an image": no display`, dialogErr.Error())
	assert.Equal(t, "Select an image", dialogErr.Title())
	assert.True(t, IsDialogFailed(dialogErr))
	assert.True(t, Is(dialogErr, cause))

	assert.True(t, IsDialogFailed(ErrDialogUnavailable))
	assert.True(t, errors.Is(NewDialogError("unavailable", "x", DialogUnavailable, nil), ErrDialogUnavailable))
	assert.False(t, IsDialogFailed(New("plain")))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Unknown, KindOf(nil))
	assert.Equal(t, Unknown, KindOf(fmt.Errorf("plain")))
	assert.Equal(t, DialogFailed, KindOf(NewDialogError("failed", "", DialogFailed, nil)))
	assert.Equal(t, "dialog_failed", DialogFailed.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
}
