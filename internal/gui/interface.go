//go:build !nogui

package gui

import (
	"vectoriser/internal/config"
	"vectoriser/internal/errors"
)

// Interface defines the contract for GUI operations
type Interface interface {
	Run() error
	ShowError(title string, err error)
}

// Factory creates GUI instances
type Factory struct {
	config     *config.Config
	configPath string
	options    []Option
}

// NewFactory creates a new GUI factory. configPath may be empty to
// disable live reload.
func NewFactory(cfg *config.Config, configPath string, opts ...Option) *Factory {
	return &Factory{
		config:     cfg,
		configPath: configPath,
		options:    opts,
	}
}

// Create returns a new GUI instance
func (f *Factory) Create() (Interface, error) {
	if f.config == nil {
		return nil, errors.ErrInvalidConfig
	}
	opts := f.options
	if f.configPath != "" {
		opts = append([]Option{WithConfigPath(f.configPath)}, opts...)
	}
	return NewApp(f.config, opts...), nil
}
