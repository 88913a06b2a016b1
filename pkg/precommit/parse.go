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

	"github.com/cicd-ai-toolkit/hookcfg/pkg/errors"
	"gopkg.in/yaml.v3"
)

type options struct {
	path    string
	catalog Catalog
}

// Option configures Parse and Load.
type Option func(*options)

// WithPath sets the file name reported in parse errors.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithCatalog sets the catalog used to check hook ids. A nil catalog
// disables the check.
func WithCatalog(c Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

func newOptions(opts []Option) *options {
	o := &options{catalog: DefaultCatalog()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Parse decodes and validates a document. Unknown keys are rejected.
// On any error the returned document is nil.
func Parse(data []byte, opts ...Option) (*Document, error) {
	o := newOptions(opts)

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(&doc)
	if err != nil && err != io.EOF {
		return nil, errors.ParseError("malformed document", newParseError(o.path, err))
	}
	if err == nil {
		// A stream holds exactly one document.
		var next yaml.Node
		switch err := dec.Decode(&next); {
		case err == nil:
			return nil, errors.ParseError("malformed document",
				&ParseError{Path: o.path, Line: next.Line, Err: fmt.Errorf("multiple documents in stream")})
		case err != io.EOF:
			return nil, errors.ParseError("malformed document", newParseError(o.path, err))
		}
	}

	if err := Validate(&doc, o.catalog); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read document: %s", path), err)
	}
	return Parse(data, append([]Option{WithPath(path)}, opts...)...)
}

// Marshal serializes a document in canonical form: two-space indentation,
// empty optional fields omitted, entry and hook order preserved.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.ConfigError("failed to encode document", err)
	}
	if err := enc.Close(); err != nil {
		return nil, errors.ConfigError("failed to encode document", err)
	}
	return buf.Bytes(), nil
}
