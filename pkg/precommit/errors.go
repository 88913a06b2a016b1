// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package precommit

import (
	"fmt"
	"regexp"
	"strconv"
)

var lineRe = regexp.MustCompile(`line (\d+)`)

// ParseError reports a document that does not conform to the YAML grammar
// or to the document shape. Line is zero when the decoder gave no position.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func newParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Err: err}
	if m := lineRe.FindStringSubmatch(err.Error()); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
	}
	return pe
}

func (e *ParseError) Error() string {
	loc := e.Path
	if loc == "" {
		loc = "<input>"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	return fmt.Sprintf("%s: %v", loc, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError names the entry, hook and field that failed validation.
// Entry is -1 for document-level fields, Hook is -1 for entry-level fields.
type ValidationError struct {
	Entry   int
	Hook    int
	Field   string
	Value   any
	Message string
}

// Location renders the YAML path of the offending field.
func (e *ValidationError) Location() string {
	switch {
	case e.Entry < 0:
		return e.Field
	case e.Hook < 0:
		return fmt.Sprintf("repos[%d].%s", e.Entry, e.Field)
	default:
		return fmt.Sprintf("repos[%d].hooks[%d].%s", e.Entry, e.Hook, e.Field)
	}
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (got: %v)", e.Location(), e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Location(), e.Message)
}
