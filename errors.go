// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonc

import "fmt"

// SyntaxError is the concrete type of errors reported by the scanner and the
// parsers for malformed input.
type SyntaxError struct {
	Offset  int     // byte offset where the error was detected
	Pos     LineCol // line and column of the error
	Message string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Pos, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// TypeError is the concrete type of errors reported when a node or value of
// one kind is requested where another kind is present, or when a host value
// has no JSON representation. Must variants of accessors panic with a
// *TypeError rather than returning it.
type TypeError struct {
	Message string
}

func (t *TypeError) Error() string { return t.Message }

// StateError is the concrete type of errors reported when an operation is
// applied to a node that is no longer part of a tree. Mutation methods panic
// with a *StateError on detached receivers.
type StateError struct {
	Message string
}

func (s *StateError) Error() string { return s.Message }

// ConversionError is the concrete type of errors reported when a tree or
// host value cannot be converted, for example a member without a value or a
// non-finite floating-point number.
type ConversionError struct {
	Message string
}

func (c *ConversionError) Error() string { return c.Message }
