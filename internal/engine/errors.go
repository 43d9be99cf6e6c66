package engine

import (
	"errors"
	"fmt"
)

var (
	ErrConfig  = errors.New("invalid engine configuration")
	ErrRunning = errors.New("engine already running")
	ErrStopped = errors.New("engine stopped")
)

// ConfigError reports a configuration field rejected at construction.
type ConfigError struct {
	Field  string
	Detail string
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ErrConfig.Error()
	}
	return fmt.Sprintf("invalid engine configuration: %s: %s", e.Field, e.Detail)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

func configErr(field, detail string) error {
	return &ConfigError{Field: field, Detail: detail}
}
