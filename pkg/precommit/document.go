// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package precommit loads and validates pre-commit configuration documents.
//
// A document is an ordered list of tool entries. Each entry pins an external
// repository at a revision and declares the hooks to run from it. The
// document is read once per run and never mutated; running the hooks is the
// job of the orchestrator that consumes it.
package precommit

// DefaultConfigFile is the conventional file name of a pre-commit document.
const DefaultConfigFile = ".pre-commit-config.yaml"

// Document is a parsed pre-commit configuration.
type Document struct {
	Repos                   []ToolEntry       `yaml:"repos"`
	DefaultInstallHookTypes []string          `yaml:"default_install_hook_types,omitempty"`
	DefaultLanguageVersion  map[string]string `yaml:"default_language_version,omitempty"`
	DefaultStages           []string          `yaml:"default_stages,omitempty"`
	Files                   string            `yaml:"files,omitempty"`
	Exclude                 string            `yaml:"exclude,omitempty"`
	FailFast                bool              `yaml:"fail_fast,omitempty"`
	MinimumPreCommitVersion string            `yaml:"minimum_pre_commit_version,omitempty"`

	// CI holds the pre-commit.ci settings block. It is carried through
	// unchecked.
	CI map[string]any `yaml:"ci,omitempty"`
}

// ToolEntry pins one external tool repository.
type ToolEntry struct {
	Repo  string     `yaml:"repo"`
	Rev   string     `yaml:"rev"`
	Hooks []HookSpec `yaml:"hooks"`
}

// HookSpec declares a single hook invocation from the enclosing repository.
//
// Entry and Language are only meaningful for local hooks; for other
// repositories they override the manifest.
type HookSpec struct {
	ID                     string   `yaml:"id"`
	Alias                  string   `yaml:"alias,omitempty"`
	Name                   string   `yaml:"name,omitempty"`
	Description            string   `yaml:"description,omitempty"`
	Entry                  string   `yaml:"entry,omitempty"`
	Language               string   `yaml:"language,omitempty"`
	LanguageVersion        string   `yaml:"language_version,omitempty"`
	Args                   []string `yaml:"args,omitempty"`
	AdditionalDependencies []string `yaml:"additional_dependencies,omitempty"`
	Files                  string   `yaml:"files,omitempty"`
	Exclude                string   `yaml:"exclude,omitempty"`
	Types                  []string `yaml:"types,omitempty"`
	TypesOr                []string `yaml:"types_or,omitempty"`
	ExcludeTypes           []string `yaml:"exclude_types,omitempty"`
	Stages                 []string `yaml:"stages,omitempty"`
	AlwaysRun              bool     `yaml:"always_run,omitempty"`
	// PassFilenames is nil when unset; pre-commit then passes file names.
	PassFilenames *bool  `yaml:"pass_filenames,omitempty"`
	RequireSerial bool   `yaml:"require_serial,omitempty"`
	Verbose       bool   `yaml:"verbose,omitempty"`
	LogFile       string `yaml:"log_file,omitempty"`

	MinimumPreCommitVersion string `yaml:"minimum_pre_commit_version,omitempty"`
}

// EntrySummary is a flattened view of a ToolEntry used for display.
type EntrySummary struct {
	Repo         string
	Rev          string
	HookIDs      []string
	Dependencies int
}

// HookCount returns the number of hooks across all entries.
func (d *Document) HookCount() int {
	n := 0
	for _, e := range d.Repos {
		n += len(e.Hooks)
	}
	return n
}

// Summary returns one EntrySummary per entry, in document order.
func (d *Document) Summary() []EntrySummary {
	out := make([]EntrySummary, 0, len(d.Repos))
	for _, e := range d.Repos {
		s := EntrySummary{
			Repo:    e.Repo,
			Rev:     e.Rev,
			HookIDs: make([]string, 0, len(e.Hooks)),
		}
		for _, h := range e.Hooks {
			s.HookIDs = append(s.HookIDs, h.ID)
			s.Dependencies += len(h.AdditionalDependencies)
		}
		out = append(out, s)
	}
	return out
}

// DisplayName returns the hook name, falling back to its id.
func (h HookSpec) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.ID
}
