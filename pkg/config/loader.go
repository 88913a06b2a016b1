// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cicd-ai-toolkit/hookcfg/pkg/precommit"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix is the prefix for all environment variables.
	EnvPrefix = "HOOKCFG"
	// ProjectConfigFile is the project-level config file name.
	ProjectConfigFile = ".hookcfg.yaml"
	// GlobalConfigDir is the global config directory name.
	GlobalConfigDir = ".hookcfg"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Loader loads configuration from files and environment.
type Loader struct {
	projectRoot string
	skipGlobal  bool
}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// WithProjectRoot sets the project root directory.
func (l *Loader) WithProjectRoot(root string) *Loader {
	l.projectRoot = root
	return l
}

// SkipGlobal skips loading global config.
func (l *Loader) SkipGlobal() *Loader {
	l.skipGlobal = true
	return l
}

// Load loads configuration with full precedence order:
// 1. Defaults
// 2. Global Config ($HOME/.hookcfg/config.yaml)
// 3. Project Config (./.hookcfg.yaml)
// 4. Environment Variables (HOOKCFG_*)
//
// Missing files are skipped; unreadable or malformed ones are errors.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if !l.skipGlobal {
		if path, err := GetDefaultConfigPath(); err == nil {
			if err := l.mergeFile(cfg, path); err != nil {
				return nil, err
			}
		}
	}

	if err := l.mergeFile(cfg, GetProjectConfigPath(l.projectRoot)); err != nil {
		return nil, err
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path on top of defaults.
// Environment variables still override the file.
func (l *Loader) LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	src, err := readFile(path)
	if err != nil {
		return nil, err
	}
	mergeConfig(cfg, src)

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) mergeFile(cfg *Config, path string) error {
	src, err := readFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	mergeConfig(cfg, src)
	return nil
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return &cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
// Format: HOOKCFG_SECTION__KEY=value
func (l *Loader) applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("HOOKCFG_GLOBAL__LOG_LEVEL"); v != "" {
		cfg.Global.LogLevel = v
	}
	if v := os.Getenv("HOOKCFG_CHECK__CONFIG_FILE"); v != "" {
		cfg.Check.ConfigFile = v
	}
	if v := os.Getenv("HOOKCFG_CHECK__STRICT_HOOK_IDS"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return &ConfigError{
				Field: "check.strict_hook_ids",
				Err:   err,
			}
		}
		cfg.Check.StrictHookIDs = &strict
	}
	return nil
}

// mergeConfig merges src into dst (src overrides dst).
func mergeConfig(dst, src *Config) {
	if src.Global.LogLevel != "" {
		dst.Global.LogLevel = src.Global.LogLevel
	}
	if src.Check.ConfigFile != "" {
		dst.Check.ConfigFile = src.Check.ConfigFile
	}
	if src.Check.StrictHookIDs != nil {
		dst.Check.StrictHookIDs = src.Check.StrictHookIDs
	}
	if len(src.Check.Manifests) > 0 {
		if dst.Check.Manifests == nil {
			dst.Check.Manifests = make(map[string]string, len(src.Check.Manifests))
		}
		for repo, path := range src.Check.Manifests {
			dst.Check.Manifests[repo] = path
		}
	}
}

// Catalog builds the hook catalog described by the check settings.
// It returns nil when hook ids are not checked. Relative manifest paths
// are resolved against root.
func (c *Config) Catalog(root string) (precommit.Catalog, error) {
	if !c.Check.Strict() {
		return nil, nil
	}

	catalog := precommit.DefaultCatalog()
	for repo, path := range c.Check.Manifests {
		if !filepath.IsAbs(path) && root != "" {
			path = filepath.Join(root, path)
		}
		hooks, err := precommit.LoadManifest(path)
		if err != nil {
			return nil, &ConfigError{Field: "check.manifests." + repo, Err: err}
		}
		catalog.AddManifest(repo, hooks)
	}
	return catalog, nil
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Path  string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return "config error in " + e.Path + ": " + e.Err.Error()
	}
	if e.Field != "" {
		return "config error for " + e.Field + ": " + e.Err.Error()
	}
	return "config error: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DetectProjectRoot finds the project root by walking up from the working
// directory to the first directory holding a pre-commit document or a
// project config file.
func DetectProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, name := range []string{ProjectConfigFile, precommit.DefaultConfigFile} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return ".", nil
		}
		dir = parent
	}
}

// GetEnvConfig returns all environment variables that start with HOOKCFG_.
func GetEnvConfig() map[string]string {
	result := make(map[string]string)

	for _, env := range os.Environ() {
		if strings.HasPrefix(env, EnvPrefix+"_") {
			kv := strings.SplitN(env, "=", 2)
			if len(kv) == 2 {
				result[kv[0]] = kv[1]
			}
		}
	}

	return result
}
