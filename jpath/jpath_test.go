// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jpath_test

import (
	"testing"

	"github.com/creachadair/jsonc/jpath"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  []any
	}{
		{"$", []any{}},
		{"$.name", []any{"name"}},
		{"$.a.b.c", []any{"a", "b", "c"}},
		{"$[0]", []any{0}},
		{"$[-1]", []any{-1}},
		{"$.items[2].id", []any{"items", 2, "id"}},
		{"$['with space']", []any{"with space"}},
		{"$['a'][15].b['c d']", []any{"a", 15, "b", "c d"}},
		{"$['']", []any{""}},
	}
	for _, test := range tests {
		e, err := jpath.Parse(test.input)
		if err != nil {
			t.Errorf("Parse %q: %v", test.input, err)
			continue
		}
		if got := e.String(); got != test.input {
			t.Errorf("Parse %q:\n got %q\nwant %q", test.input, got, test.input)
		}
		if diff := cmp.Diff(test.want, e.Path()); diff != "" {
			t.Errorf("Parse %q: path: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",          // missing root marker
		"name",      // missing root marker
		"$.",        // missing name after dot
		"$.a.",      // ditto, later
		"$[",        // missing index
		"$[]",       // ditto
		"$[1",       // missing close bracket
		"$['x'",     // ditto
		"$[1.5]",    // not an integer index
		"$x",        // stray text after root
		"$.a b",     // stray text after step
		"$.'q'",     // quoted names need brackets
		`$["dq"]`,   // only single quotes are recognized
		"$..a",      // recursive descent is not supported
		"$.*",       // wildcards are not supported
		"$[?(@.x)]", // filters are not supported
	}
	for _, input := range tests {
		if e, err := jpath.Parse(input); err == nil {
			t.Errorf("Parse %q: got %v, wanted error", input, e)
		}
	}
}
