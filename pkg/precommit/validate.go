// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package precommit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cicd-ai-toolkit/hookcfg/pkg/errors"
)

// Stages pre-commit can install a hook for. The last three are legacy
// aliases still accepted by pre-commit.
var validStages = map[string]bool{
	"pre-commit":         true,
	"pre-merge-commit":   true,
	"pre-push":           true,
	"prepare-commit-msg": true,
	"commit-msg":         true,
	"post-checkout":      true,
	"post-commit":        true,
	"post-merge":         true,
	"post-rewrite":       true,
	"pre-rebase":         true,
	"manual":             true,
	"commit":             true,
	"push":               true,
	"merge-commit":       true,
}

// Validate checks required fields and, when catalog is non-nil, that each
// hook id is known for its repository. It stops at the first problem.
func Validate(doc *Document, catalog Catalog) error {
	if ve := validate(doc, catalog); ve != nil {
		return errors.ValidationError("invalid document", ve).
			WithContext("entry", ve.Entry).
			WithContext("field", ve.Field)
	}
	return nil
}

func validate(doc *Document, catalog Catalog) *ValidationError {
	if doc == nil || len(doc.Repos) == 0 {
		return &ValidationError{Entry: -1, Hook: -1, Field: "repos", Message: "at least one entry is required"}
	}
	for _, stage := range doc.DefaultStages {
		if !validStages[stage] {
			return &ValidationError{Entry: -1, Hook: -1, Field: "default_stages", Value: stage, Message: "unknown stage"}
		}
	}

	for i, entry := range doc.Repos {
		if strings.TrimSpace(entry.Repo) == "" {
			return &ValidationError{Entry: i, Hook: -1, Field: "repo", Message: "is required"}
		}
		if strings.TrimSpace(entry.Rev) == "" {
			return &ValidationError{Entry: i, Hook: -1, Field: "rev", Message: "is required"}
		}
		if len(entry.Hooks) == 0 {
			return &ValidationError{Entry: i, Hook: -1, Field: "hooks", Message: "must list at least one hook"}
		}

		var known []string
		checkIDs := false
		if catalog != nil {
			known, checkIDs = catalog.Lookup(entry.Repo)
		}

		for j, hook := range entry.Hooks {
			if strings.TrimSpace(hook.ID) == "" {
				return &ValidationError{Entry: i, Hook: j, Field: "id", Message: "is required"}
			}
			if checkIDs && !slices.Contains(known, hook.ID) {
				return &ValidationError{
					Entry:   i,
					Hook:    j,
					Field:   "id",
					Value:   hook.ID,
					Message: fmt.Sprintf("not provided by %s (known: %s)", entry.Repo, strings.Join(known, ", ")),
				}
			}
			for _, stage := range hook.Stages {
				if !validStages[stage] {
					return &ValidationError{Entry: i, Hook: j, Field: "stages", Value: stage, Message: "unknown stage"}
				}
			}
		}
	}

	return nil
}
