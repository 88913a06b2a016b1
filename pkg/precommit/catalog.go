// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package precommit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/cicd-ai-toolkit/hookcfg/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the file a hook repository uses to publish its hooks.
const ManifestFile = ".pre-commit-hooks.yaml"

// Catalog resolves the hook ids a repository provides.
// ok is false when the repository is unknown; its hooks are then not checked.
type Catalog interface {
	Lookup(repo string) (ids []string, ok bool)
}

// StaticCatalog is an in-memory Catalog keyed by normalized repository URL.
type StaticCatalog struct {
	mu    sync.RWMutex
	repos map[string][]string
}

// NewStaticCatalog creates an empty catalog.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{repos: make(map[string][]string)}
}

// Add registers hook ids for a repository, merging with any already known.
func (c *StaticCatalog) Add(repo string, ids ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := normalizeRepo(repo)
	seen := make(map[string]bool, len(c.repos[key]))
	for _, id := range c.repos[key] {
		seen[id] = true
	}
	for _, id := range ids {
		if !seen[id] {
			c.repos[key] = append(c.repos[key], id)
			seen[id] = true
		}
	}
	sort.Strings(c.repos[key])
}

// AddManifest registers every hook declared in a manifest.
func (c *StaticCatalog) AddManifest(repo string, hooks []ManifestHook) {
	ids := make([]string, 0, len(hooks))
	for _, h := range hooks {
		ids = append(ids, h.ID)
	}
	c.Add(repo, ids...)
}

// Lookup implements Catalog.
func (c *StaticCatalog) Lookup(repo string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids, ok := c.repos[normalizeRepo(repo)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), ids...), true
}

// DefaultCatalog knows the hooks of widely used Python tooling repositories.
func DefaultCatalog() *StaticCatalog {
	c := NewStaticCatalog()
	c.Add("https://github.com/PyCQA/isort", "isort")
	c.Add("https://github.com/psf/black", "black", "black-jupyter")
	c.Add("https://github.com/psf/black-pre-commit-mirror", "black", "black-jupyter")
	c.Add("https://github.com/PyCQA/flake8", "flake8")
	c.Add("https://github.com/pre-commit/pre-commit-hooks",
		"check-added-large-files",
		"check-ast",
		"check-builtin-literals",
		"check-byte-order-marker",
		"check-case-conflict",
		"check-docstring-first",
		"check-executables-have-shebangs",
		"check-illegal-windows-names",
		"check-json",
		"check-merge-conflict",
		"check-shebang-scripts-are-executable",
		"check-symlinks",
		"check-toml",
		"check-vcs-permalinks",
		"check-xml",
		"check-yaml",
		"debug-statements",
		"destroyed-symlinks",
		"detect-aws-credentials",
		"detect-private-key",
		"double-quote-string-fixer",
		"end-of-file-fixer",
		"file-contents-sorter",
		"fix-byte-order-marker",
		"fix-encoding-pragma",
		"forbid-new-submodules",
		"forbid-submodules",
		"mixed-line-ending",
		"name-tests-test",
		"no-commit-to-branch",
		"pretty-format-json",
		"requirements-txt-fixer",
		"sort-simple-yaml",
		"trailing-whitespace",
	)
	return c
}

// normalizeRepo lowercases and strips a trailing ".git" or slash so that
// equivalent URLs share a key.
func normalizeRepo(repo string) string {
	r := strings.ToLower(strings.TrimSpace(repo))
	r = strings.TrimSuffix(r, "/")
	r = strings.TrimSuffix(r, ".git")
	return r
}

// ManifestHook is one hook published in a .pre-commit-hooks.yaml manifest.
type ManifestHook struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Entry       string   `yaml:"entry"`
	Language    string   `yaml:"language"`
	Description string   `yaml:"description,omitempty"`
	Types       []string `yaml:"types,omitempty"`
	Args        []string `yaml:"args,omitempty"`
}

// ParseManifest decodes a hook manifest. Manifests are not read strictly
// since pre-commit adds keys over time.
func ParseManifest(data []byte) ([]ManifestHook, error) {
	return parseManifest("", data)
}

func parseManifest(path string, data []byte) ([]ManifestHook, error) {
	var hooks []ManifestHook
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&hooks); err != nil && err != io.EOF {
		return nil, errors.ParseError("malformed manifest", newParseError(path, err))
	}
	for i, h := range hooks {
		if strings.TrimSpace(h.ID) == "" {
			return nil, errors.ValidationError("invalid manifest",
				&ValidationError{Entry: -1, Hook: -1, Field: fmt.Sprintf("[%d].id", i), Message: "is required"})
		}
	}
	return hooks, nil
}

// LoadManifest reads and parses a hook manifest from path.
func LoadManifest(path string) ([]ManifestHook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read manifest: %s", path), err)
	}
	return parseManifest(path, data)
}
