// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"fmt"
	"strings"
)

// Validator validates configuration.
type Validator struct{}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates a configuration.
func (v *Validator) Validate(cfg *Config) error {
	if err := v.ValidateGlobal(&cfg.Global); err != nil {
		return err
	}
	if err := v.ValidateCheck(&cfg.Check); err != nil {
		return err
	}
	return nil
}

// ValidateGlobal validates global configuration.
func (v *Validator) ValidateGlobal(cfg *GlobalConfig) error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if cfg.LogLevel != "" {
		valid := false
		for _, level := range validLogLevels {
			if strings.EqualFold(cfg.LogLevel, level) {
				valid = true
				break
			}
		}
		if !valid {
			return &ValidationError{
				Field:   "global.log_level",
				Value:   cfg.LogLevel,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
			}
		}
	}
	return nil
}

// ValidateCheck validates document check settings.
func (v *Validator) ValidateCheck(cfg *CheckConfig) error {
	if strings.TrimSpace(cfg.ConfigFile) == "" {
		return &ValidationError{
			Field:   "check.config_file",
			Message: "must not be empty",
		}
	}
	for repo, path := range cfg.Manifests {
		if strings.TrimSpace(repo) == "" {
			return &ValidationError{
				Field:   "check.manifests",
				Message: "repository URL must not be empty",
			}
		}
		if strings.TrimSpace(path) == "" {
			return &ValidationError{
				Field:   "check.manifests." + repo,
				Message: "manifest path must not be empty",
			}
		}
	}
	return nil
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error for %s: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}
