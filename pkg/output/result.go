// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package output

import (
	"errors"
	"fmt"

	herrors "github.com/cicd-ai-toolkit/hookcfg/pkg/errors"
	"github.com/cicd-ai-toolkit/hookcfg/pkg/precommit"
)

// Result is the outcome of checking one document.
type Result struct {
	File    string   `json:"file"`
	Valid   bool     `json:"valid"`
	Entries int      `json:"entries"`
	Hooks   int      `json:"hooks"`
	Problem *Comment `json:"problem,omitempty"`
}

// Comment describes why a document was rejected.
type Comment struct {
	File     string `json:"file"`
	Line     int    `json:"line,omitempty"`
	Location string `json:"location,omitempty"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
}

// Position renders file[:line].
func (c *Comment) Position() string {
	if c.Line > 0 {
		return fmt.Sprintf("%s:%d", c.File, c.Line)
	}
	return c.File
}

// NewResult builds the result for file from the outcome of loading it.
func NewResult(file string, doc *precommit.Document, err error) *Result {
	if err == nil {
		return &Result{
			File:    file,
			Valid:   true,
			Entries: len(doc.Repos),
			Hooks:   doc.HookCount(),
		}
	}

	c := &Comment{File: file, Kind: "config", Message: err.Error()}
	switch {
	case herrors.IsType(err, herrors.ErrParse):
		c.Kind = "parse"
	case herrors.IsType(err, herrors.ErrValidation):
		c.Kind = "validation"
	}

	var pe *precommit.ParseError
	if errors.As(err, &pe) {
		c.Line = pe.Line
	}
	var ve *precommit.ValidationError
	if errors.As(err, &ve) {
		c.Location = ve.Location()
	}

	return &Result{File: file, Problem: c}
}
