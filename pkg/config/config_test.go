// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cicd-ai-toolkit/hookcfg/pkg/config"
	"github.com/cicd-ai-toolkit/hookcfg/pkg/precommit"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// TestDefaultConfig tests the default configuration.
func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.Global.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got '%s'", cfg.Global.LogLevel)
	}
	if cfg.Check.ConfigFile != precommit.DefaultConfigFile {
		t.Errorf("Expected default config file %q, got %q", precommit.DefaultConfigFile, cfg.Check.ConfigFile)
	}
	if !cfg.Check.Strict() {
		t.Error("Expected strict hook ids by default")
	}
}

// TestLoadFromPath tests loading config from a file.
func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `
global:
  log_level: debug
check:
  config_file: ci/pre-commit.yaml
  strict_hook_ids: false
  manifests:
    https://example.com/hooks: hooks.yaml
`)

	cfg, err := config.NewLoader().LoadFromPath(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Global.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got '%s'", cfg.Global.LogLevel)
	}
	if cfg.Check.ConfigFile != "ci/pre-commit.yaml" {
		t.Errorf("Expected config file 'ci/pre-commit.yaml', got '%s'", cfg.Check.ConfigFile)
	}
	if cfg.Check.Strict() {
		t.Error("Expected strict_hook_ids false")
	}
	if cfg.Check.Manifests["https://example.com/hooks"] != "hooks.yaml" {
		t.Errorf("Unexpected manifests: %v", cfg.Check.Manifests)
	}
}

// TestLoadFromPathEnvOverride tests that env overrides an explicit file.
func TestLoadFromPathEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "global:\n  log_level: debug\ncheck:\n  config_file: ci.yaml\n")
	t.Setenv("HOOKCFG_GLOBAL__LOG_LEVEL", "warn")
	t.Setenv("HOOKCFG_CHECK__STRICT_HOOK_IDS", "false")

	cfg, err := config.NewLoader().LoadFromPath(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Global.LogLevel != "warn" {
		t.Errorf("Expected log level 'warn' from env, got '%s'", cfg.Global.LogLevel)
	}
	if cfg.Check.ConfigFile != "ci.yaml" {
		t.Errorf("Expected config file 'ci.yaml', got '%s'", cfg.Check.ConfigFile)
	}
	if cfg.Check.Strict() {
		t.Error("Expected strict_hook_ids disabled from env")
	}

	t.Setenv("HOOKCFG_CHECK__STRICT_HOOK_IDS", "sometimes")
	if _, err := config.NewLoader().LoadFromPath(path); err == nil {
		t.Error("Expected error for invalid strict_hook_ids, got nil")
	}
}

// TestGetDefaultConfigPath tests the global config location.
func TestGetDefaultConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := config.GetDefaultConfigPath()
	if err != nil {
		t.Fatalf("GetDefaultConfigPath() error = %v", err)
	}
	if want := filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile); path != want {
		t.Errorf("GetDefaultConfigPath() = %q, want %q", path, want)
	}
}

// TestDetectProjectRoot tests walking up to the directory holding a document.
func TestDetectProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, precommit.DefaultConfigFile), "repos: []\n")
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, sub)

	got, err := config.DetectProjectRoot()
	if err != nil {
		t.Fatalf("DetectProjectRoot() error = %v", err)
	}
	want, _ := filepath.EvalSymlinks(root)
	if resolved, _ := filepath.EvalSymlinks(got); resolved != want {
		t.Errorf("DetectProjectRoot() = %q, want %q", got, root)
	}
}

// TestLoadFromPathInvalid tests loading an invalid config file.
func TestLoadFromPathInvalid(t *testing.T) {
	tests := map[string]string{
		"bad log level":  "global:\n  log_level: loud\n",
		"bad yaml":       "global: [unterminated\n",
		"empty manifest": "check:\n  manifests:\n    https://example.com/x: \"\"\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			writeFile(t, path, content)

			if _, err := config.NewLoader().LoadFromPath(path); err == nil {
				t.Error("Expected error for invalid config, got nil")
			}
		})
	}
}

// TestLoadPrecedence tests that project config overrides global config and
// environment overrides both.
func TestLoadPrecedence(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)

	writeFile(t, filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile), `
global:
  log_level: warn
check:
  config_file: global.yaml
`)
	writeFile(t, filepath.Join(project, config.ProjectConfigFile), `
check:
  config_file: project.yaml
`)

	cfg, err := config.NewLoader().WithProjectRoot(project).Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Global.LogLevel != "warn" {
		t.Errorf("Expected log level 'warn' from global config, got '%s'", cfg.Global.LogLevel)
	}
	if cfg.Check.ConfigFile != "project.yaml" {
		t.Errorf("Expected config file from project config, got '%s'", cfg.Check.ConfigFile)
	}

	t.Setenv("HOOKCFG_GLOBAL__LOG_LEVEL", "error")
	t.Setenv("HOOKCFG_CHECK__STRICT_HOOK_IDS", "false")

	cfg, err = config.NewLoader().WithProjectRoot(project).Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Global.LogLevel != "error" {
		t.Errorf("Expected log level 'error' from env, got '%s'", cfg.Global.LogLevel)
	}
	if cfg.Check.Strict() {
		t.Error("Expected strict_hook_ids disabled from env")
	}

	cfg, err = config.NewLoader().WithProjectRoot(project).SkipGlobal().Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Check.ConfigFile != "project.yaml" {
		t.Errorf("Expected config file 'project.yaml', got '%s'", cfg.Check.ConfigFile)
	}
}

// TestLoadWithEnvInvalidStrict tests an unparsable boolean from env.
func TestLoadWithEnvInvalidStrict(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HOOKCFG_CHECK__STRICT_HOOK_IDS", "sometimes")

	_, err := config.NewLoader().WithProjectRoot(t.TempDir()).Load()
	if err == nil {
		t.Fatal("Expected error for invalid strict_hook_ids, got nil")
	}

	var cfgErr *config.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "check.strict_hook_ids" {
		t.Errorf("Expected ConfigError for check.strict_hook_ids, got %v", err)
	}
}

// TestLoadMalformedProjectConfig tests that a broken project file is reported.
func TestLoadMalformedProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	writeFile(t, filepath.Join(project, config.ProjectConfigFile), "check: [\n")

	if _, err := config.NewLoader().WithProjectRoot(project).Load(); err == nil {
		t.Error("Expected error for malformed project config, got nil")
	}
}

// TestCatalog tests catalog construction from manifests.
func TestCatalog(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "hooks.yaml"), `
- id: lint-sql
  name: SQL lint
  entry: sqlfluff lint
  language: python
`)

	cfg := config.DefaultConfig()
	cfg.Check.Manifests = map[string]string{"https://example.com/sql-hooks": "hooks.yaml"}

	catalog, err := cfg.Catalog(root)
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	ids, ok := catalog.Lookup("https://example.com/sql-hooks")
	if !ok || len(ids) != 1 || ids[0] != "lint-sql" {
		t.Errorf("Lookup() = %v, %v", ids, ok)
	}
	if _, ok := catalog.Lookup("https://github.com/PyCQA/isort"); !ok {
		t.Error("Expected default repositories in catalog")
	}

	cfg.Check.Manifests["https://example.com/other"] = "missing.yaml"
	if _, err := cfg.Catalog(root); err == nil {
		t.Error("Expected error for missing manifest, got nil")
	}

	strict := false
	cfg.Check.StrictHookIDs = &strict
	catalog, err = cfg.Catalog(root)
	if err != nil || catalog != nil {
		t.Errorf("Catalog() with strict off = %v, %v; want nil, nil", catalog, err)
	}
}

// TestValidator tests validation rules directly.
func TestValidator(t *testing.T) {
	v := config.NewValidator()

	cfg := config.DefaultConfig()
	if err := v.Validate(cfg); err != nil {
		t.Errorf("Validate(default) = %v", err)
	}

	cfg.Global.LogLevel = "DEBUG"
	if err := v.Validate(cfg); err != nil {
		t.Errorf("log level should be case-insensitive: %v", err)
	}

	cfg.Check.ConfigFile = " "
	err := v.Validate(cfg)
	var ve *config.ValidationError
	if !errors.As(err, &ve) || ve.Field != "check.config_file" {
		t.Errorf("Validate() = %v, want error for check.config_file", err)
	}
}

// TestGetEnvConfig tests collecting prefixed environment variables.
func TestGetEnvConfig(t *testing.T) {
	t.Setenv("HOOKCFG_GLOBAL__LOG_LEVEL", "debug")
	t.Setenv("OTHER_VAR", "x")

	env := config.GetEnvConfig()
	if env["HOOKCFG_GLOBAL__LOG_LEVEL"] != "debug" {
		t.Errorf("Expected HOOKCFG_GLOBAL__LOG_LEVEL in env config, got %v", env)
	}
	if _, ok := env["OTHER_VAR"]; ok {
		t.Error("Unexpected OTHER_VAR in env config")
	}
}

// chdir changes the working directory for the duration of the test,
// matching testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	abs := dir
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(old, dir)
	}
	t.Setenv("PWD", abs)
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
