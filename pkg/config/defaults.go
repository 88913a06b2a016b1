// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"

	"github.com/cicd-ai-toolkit/hookcfg/pkg/precommit"
)

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	strict := true
	return &Config{
		Global: GlobalConfig{
			LogLevel: "info",
		},
		Check: CheckConfig{
			ConfigFile:    precommit.DefaultConfigFile,
			StrictHookIDs: &strict,
		},
	}
}

// GetDefaultConfigPath returns the default global config file path.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFile), nil
}

// GetProjectConfigPath returns the project config file path.
func GetProjectConfigPath(projectRoot string) string {
	if projectRoot == "" {
		projectRoot = "."
	}
	return filepath.Join(projectRoot, ProjectConfigFile)
}
