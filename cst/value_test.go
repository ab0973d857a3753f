// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cst_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jsonc"
	"github.com/creachadair/jsonc/cst"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestToValue(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"", nil},
		{"null", nil},
		{"false", false},
		{`"ok"`, "ok"},
		{"25", int64(25)},
		{"-2.5", -2.5},
		{"[]", []any{}},
		{"{}", jsonc.Obj{}},
		{`{"a": [1, "two"], "b": null}`, jsonc.Obj{
			{Key: "a", Value: []any{int64(1), "two"}},
			{Key: "b", Value: nil},
		}},
		{"// note\n{a: 0x1F,}", jsonc.Obj{{Key: "a", Value: int64(31)}}},
	}
	for _, test := range tests {
		root := mustParse(t, test.input)
		got, err := cst.ToValue(root)
		if err != nil {
			t.Errorf("Input: %#q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nValue: (-want, +got)\n%s", test.input, diff)
		}
	}
}

// Building the tree and converting it must agree with the direct
// value-parsing path.
func TestToValue_agree(t *testing.T) {
	for _, input := range roundTripInputs {
		root := mustParse(t, input)
		tv, err := cst.ToValue(root)
		if err != nil {
			t.Errorf("Input: %#q: ToValue failed: %v", input, err)
			continue
		}
		pv, err := jsonc.ParseToValue(strings.NewReader(input), nil)
		if err != nil {
			t.Errorf("Input: %#q: ParseToValue failed: %v", input, err)
			continue
		}
		if diff := cmp.Diff(pv, tv); diff != "" {
			t.Errorf("Input: %#q: values differ: (-parsed, +tree)\n%s", input, diff)
		}
	}
}

func TestToValue_nonValue(t *testing.T) {
	comma := mustParse(t, "[1, 2]").MustArray().Children()[2]
	if _, err := cst.ToValue(comma); err == nil {
		t.Error("ToValue of punctuation unexpectedly succeeded")
	}

	v := mtest.MustPanic(t, func() { cst.MustToValue(comma) })
	if _, ok := v.(*jsonc.ConversionError); !ok {
		t.Errorf("panic value: got %v, want a *ConversionError", v)
	}
}

func TestLeafAccessors(t *testing.T) {
	root := mustParse(t, `{"s": "a\tb", "n": 1.5, "b": true, "big": 123456789012345678901234567890}`)
	obj := root.MustObject()

	s := cst.Must[*cst.StringLit](obj.MustFind("s").Value())
	if got := s.Value(); got != "a\tb" {
		t.Errorf("StringLit.Value: got %#q, want %#q", got, "a\tb")
	}
	s.SetValue("x y")
	if got := s.Text(); got != `"x y"` {
		t.Errorf("StringLit.Text: got %#q, want %#q", got, `"x y"`)
	}

	n := cst.Must[*cst.NumberLit](obj.MustFind("n").Value())
	if got := n.Value(); got != "1.5" {
		t.Errorf("NumberLit.Value: got %q, want 1.5", got)
	}
	if f, err := n.Float64(); err != nil || f != 1.5 {
		t.Errorf("Float64: got %v, %v; want 1.5", f, err)
	}
	n.SetText("2e3")
	if f, err := n.Float64(); err != nil || f != 2000 {
		t.Errorf("Float64: got %v, %v; want 2000", f, err)
	}

	// A number too big for binary form keeps its text.
	big := cst.Must[*cst.NumberLit](obj.MustFind("big").Value())
	if got := big.Value(); got != "123456789012345678901234567890" {
		t.Errorf("NumberLit.Value: got %q, want the original digits", got)
	}

	b := cst.Must[*cst.BoolLit](obj.MustFind("b").Value())
	if !b.Value() {
		t.Error("BoolLit.Value: got false, want true")
	}
	b.SetValue(false)
	if got := b.Text(); got != "false" {
		t.Errorf("BoolLit.Text: got %q, want false", got)
	}

	if got := root.Text(); got != `{"s": "x y", "n": 2e3, "b": false, "big": 123456789012345678901234567890}` {
		t.Errorf("Text after edits: got %#q", got)
	}
}

func TestWordValue(t *testing.T) {
	root := mustParse(t, "{key: 1}")
	m := root.MustObject().MustFind("key")
	if got := m.Key(); got != "key" {
		t.Errorf("Key: got %q, want key", got)
	}
	w := cst.Must[*cst.WordLit](m.Children()[0])
	w.SetText("other")
	if got := root.Text(); got != "{other: 1}" {
		t.Errorf("Text: got %#q, want {other: 1}", got)
	}
}
