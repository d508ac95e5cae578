// Package errors provides standardized error handling for Vectoriser.
// It defines the error kinds the application distinguishes and helpers
// for creating, wrapping and classifying them.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileAccessDenied
	InvalidPath
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Dialog error kinds
	DialogFailed
	DialogUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "file_not_found"
	case FileAccessDenied:
		return "file_access_denied"
	case InvalidPath:
		return "invalid_path"
	case InvalidConfig:
		return "invalid_config"
	case ConfigNotFound:
		return "config_not_found"
	case DialogFailed:
		return "dialog_failed"
	case DialogUnavailable:
		return "dialog_unavailable"
	default:
		return "unknown"
	}
}

// Common error constants for frequently occurring errors
var (
	ErrInvalidConfig     = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrDialogUnavailable = NewDialogError("file dialog unavailable", "", DialogUnavailable, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to file operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		path:             path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		param:            param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// Is matches any ConfigError of the same kind, so callers can test
// against ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	return ok && t.param == "" && t.kind == e.kind
}

// DialogError represents a file dialog that could not be shown or failed
// while open.
type DialogError struct {
	ApplicationError
	title string
}

// NewDialogError creates a new dialog error
func NewDialogError(msg string, title string, kind ErrorKind, err error) *DialogError {
	return &DialogError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		title:            title,
	}
}

// Error returns the dialog error message
func (e *DialogError) Error() string {
	if e.title != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %q: %v", e.msg, e.title, e.err)
		}
		return fmt.Sprintf("%s: %q", e.msg, e.title)
	}
	return e.ApplicationError.Error()
}

// Title returns the title of the dialog that failed
func (e *DialogError) Title() string {
	return e.title
}

// Is matches any DialogError of the same kind.
func (e *DialogError) Is(target error) bool {
	t, ok := target.(*DialogError)
	return ok && t.title == "" && t.kind == e.kind
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{msg: msg, kind: Unknown}
}

// Wrap wraps an existing error with additional context. The wrapper
// keeps the kind of err.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: msg, err: err, kind: KindOf(err)}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: fmt.Sprintf(format, args...), err: err, kind: KindOf(err)}
}

// KindOf returns the kind of the first classified error in err's chain.
func KindOf(err error) ErrorKind {
	var k interface{ Kind() ErrorKind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return Unknown
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == FileNotFound
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsDialogFailed checks if the error came from a file dialog
func IsDialogFailed(err error) bool {
	var dialogErr *DialogError
	if errors.As(err, &dialogErr) {
		return dialogErr.Kind() == DialogFailed || dialogErr.Kind() == DialogUnavailable
	}
	return false
}
