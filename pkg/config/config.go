// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for hookcfg.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Global Config: $HOME/.hookcfg/config.yaml
// 3. Project Config: ./.hookcfg.yaml
// 4. Environment Variables: HOOKCFG_*
package config

// Config represents the complete application configuration.
type Config struct {
	Global GlobalConfig `yaml:"global"`
	Check  CheckConfig  `yaml:"check"`
}

// GlobalConfig contains global application settings.
type GlobalConfig struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// CheckConfig controls how pre-commit documents are checked.
type CheckConfig struct {
	// ConfigFile is the pre-commit document checked when no path is given.
	ConfigFile string `yaml:"config_file"`
	// StrictHookIDs rejects hook ids a known repository does not provide.
	// Nil means unset so that a later source can tell "false" from absent.
	StrictHookIDs *bool `yaml:"strict_hook_ids,omitempty"`
	// Manifests maps a repository URL to a local .pre-commit-hooks.yaml.
	Manifests map[string]string `yaml:"manifests,omitempty"`
}

// Strict reports whether hook ids are checked against the catalog.
func (c CheckConfig) Strict() bool {
	return c.StrictHookIDs == nil || *c.StrictHookIDs
}
