// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jsonc implements a scanner and parsers for JSONC, the JSON
// superset permitting comments, trailing and missing commas, single-quoted
// strings, hexadecimal and signed numbers, and bare-word property names.
// Each extension is individually selectable through an Options value.
//
// # Scanning
//
// The Scanner type implements a lexical scanner. Construct a scanner from an
// io.Reader and call its Next method to iterate over the stream:
//
//	s := jsonc.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//	if s.Err() != nil {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// The scanner reports whitespace, newlines, and comments as tokens, so the
// token texts of a scan concatenate back to the input exactly. This is what
// permits the cst subpackage to edit documents without disturbing their
// layout.
//
// # Streaming
//
// The Stream type implements an event-driven stream parser.  The parser
// works by calling methods on a Handler value to report the structure of the
// input. In case of error, parsing is terminated and an error of concrete
// type *jsonc.SyntaxError is returned.
//
// Construct a Stream from an io.Reader, and call its Parse method. Parse
// returns nil if the input was fully processed without error. If a Handler
// method reports an error, parsing stops and that error is returned.
//
//	s := jsonc.NewStream(input)
//	s.SetOptions(jsonc.AllExtensions())
//	if err := s.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// To parse a single value from the front of the input, call ParseOne. This
// method returns io.EOF if no further values are available. The stream
// parser elides trivia: whitespace and newlines are skipped, and comments
// are delivered out of band to a handler implementing CommentHandler.
//
// # Values
//
// ParseToValue parses a document directly into host values without building
// a tree: objects become Obj (an ordered field sequence), arrays []any,
// and scalars their natural Go types. For a full syntax tree that can be
// edited and written back losslessly, see the cst subpackage.
package jsonc
