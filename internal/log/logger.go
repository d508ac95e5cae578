// Package log is the application logger. It wraps logrus with the field
// helpers and error decoration used across Vectoriser.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"vectoriser/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug atomic.Bool
	logger  = NewLogger()
)

// Field is a single structured key/value attached to a log record.
type Field struct {
	Key   string
	Value interface{}
}

// F creates a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger writes leveled, structured records.
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

// Option configures a Logger.
type Option func(*options)

type options struct {
	out  io.Writer
	json bool
	file string
}

// WithOutput sets the destination writer.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithJSON switches to one JSON object per record.
func WithJSON() Option {
	return func(o *options) { o.json = true }
}

// WithFile also appends records to the named file.
func WithFile(path string) Option {
	return func(o *options) { o.file = path }
}

// NewLogger creates a logger writing text records to stdout unless
// options say otherwise. A log file that cannot be opened is reported
// on stderr and skipped.
func NewLogger(opts ...Option) *Logger {
	o := &options{out: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	l := &Logger{}
	out := o.out
	if o.file != "" {
		f, err := openLogFile(o.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: %v\n", err)
		} else {
			l.file = f
			out = io.MultiWriter(out, f)
		}
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(logrus.DebugLevel)
	if o.json {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			TimestampFormat:  "2006-01-02 15:04:05",
			DisableColors:    true,
			DisableSorting:   false,
			QuoteEmptyFields: true,
		})
	}

	l.entry = logrus.NewEntry(base)
	return l
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.NewFileError("cannot create log directory", filepath.Dir(path), errors.FileAccessDenied, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.NewFileError("cannot open log file", path, errors.FileAccessDenied, err)
	}
	return f, nil
}

// Configure replaces the package logger and closes the log file of the
// one it replaces.
func Configure(opts ...Option) {
	prev := logger
	logger = NewLogger(opts...)
	if err := prev.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
	}
}

// Default returns the package logger.
func Default() *Logger {
	return logger
}

// SetDebug toggles debug records for every logger.
func SetDebug(debug bool) {
	isDebug.Store(debug)
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	f := l.file
	l.file = nil
	return f.Close()
}

// With returns a logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data), file: l.file}
}

// WithContext attaches ctx to subsequent records.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	return &Logger{entry: l.entry.WithContext(ctx), file: l.file}
}

// WithError decorates the logger with err and whatever the error type
// knows about itself.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l.With(F("error", "<nil>"))
	}

	fields := []Field{
		F("error", err.Error()),
		F("error_kind", errors.KindOf(err).String()),
	}

	var fileErr *errors.FileError
	if errors.As(err, &fileErr) && fileErr.Path() != "" {
		fields = append(fields, F("path", fileErr.Path()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}
	var dialogErr *errors.DialogError
	if errors.As(err, &dialogErr) && dialogErr.Title() != "" {
		fields = append(fields, F("dialog", dialogErr.Title()))
	}

	return l.With(fields...)
}

func (l *Logger) Debug(msg string) {
	if isDebug.Load() {
		l.log(2, logrus.DebugLevel, msg)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug.Load() {
		l.log(2, logrus.DebugLevel, fmt.Sprintf(format, args...))
	}
}

func (l *Logger) Info(msg string) {
	l.log(2, logrus.InfoLevel, msg)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(2, logrus.InfoLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(msg string) {
	l.log(2, logrus.WarnLevel, msg)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(2, logrus.WarnLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(msg string) {
	l.log(2, logrus.ErrorLevel, msg)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(2, logrus.ErrorLevel, fmt.Sprintf(format, args...))
}

// log emits one record. depth is the number of frames between log and
// the code that called the public logging function.
func (l *Logger) log(depth int, level logrus.Level, msg string) {
	entry := l.entry
	if _, file, line, ok := runtime.Caller(depth); ok {
		entry = entry.WithField("caller", fmt.Sprintf("%s:%d", filepath.Base(file), line))
	}
	entry.Log(level, msg)
}

// Package-level helpers use the configured package logger.

func Debugf(format string, args ...interface{}) {
	if isDebug.Load() {
		logger.log(2, logrus.DebugLevel, fmt.Sprintf(format, args...))
	}
}

func Info(msg string) {
	logger.log(2, logrus.InfoLevel, msg)
}

func Infof(format string, args ...interface{}) {
	logger.log(2, logrus.InfoLevel, fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...interface{}) {
	logger.log(2, logrus.WarnLevel, fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...interface{}) {
	logger.log(2, logrus.ErrorLevel, fmt.Sprintf(format, args...))
}

// LogWithFields returns the package logger carrying fields.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns the package logger decorated with err.
func LogWithError(err error) *Logger {
	return logger.WithError(err)
}

// LogError logs err at error level with msg.
func LogError(err error, msg string) {
	logger.WithError(err).log(2, logrus.ErrorLevel, msg)
}
