// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package output provides result formatting and reporting.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Formatter formats validation results.
type Formatter struct {
	format string
}

// NewFormatter creates a new formatter for format (text or json).
func NewFormatter(format string) (*Formatter, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return &Formatter{format: FormatText}, nil
	case FormatJSON:
		return &Formatter{format: FormatJSON}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (must be text or json)", format)
	}
}

// Write formats results to w.
func (f *Formatter) Write(w io.Writer, results []*Result) error {
	if f.format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		if r.Valid {
			if _, err := fmt.Fprintf(w, "ok   %s (%d entries, %d hooks)\n", r.File, r.Entries, r.Hooks); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "FAIL %s: %s\n", r.Problem.Position(), r.Problem.Message); err != nil {
			return err
		}
	}
	return nil
}
