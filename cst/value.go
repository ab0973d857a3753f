// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cst

import (
	"fmt"

	"github.com/creachadair/jsonc"
)

// Value returns the decoded string the literal denotes.
func (s *StringLit) Value() string {
	dec, err := jsonc.DecodeString(s.text)
	if err != nil {
		return s.text
	}
	return dec
}

// SetValue rewrites the literal to denote the string v, double-quoted with
// canonical escaping.
func (s *StringLit) SetValue(v string) { s.text = jsonc.Quote(v) }

// Value returns the source text of the number. The text is exact where a
// binary representation might not be; see [NumberLit.Float64] and
// [ToValue] for conversions.
func (n *NumberLit) Value() string { return n.text }

// Float64 converts the literal to a float64.
func (n *NumberLit) Float64() (float64, error) {
	switch v := jsonc.DecodeNumber(n.text).(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return 0, fmt.Errorf("number %q out of range", n.text)
}

// SetText rewrites the literal's source text. The text must be a
// well-formed number; it is not checked here, but a malformed literal will
// fail to round-trip.
func (n *NumberLit) SetText(text string) { n.text = text }

// Value reports whether the literal is true.
func (b *BoolLit) Value() bool { return b.text == "true" }

// SetValue rewrites the literal to denote v.
func (b *BoolLit) SetValue(v bool) {
	if v {
		b.text = "true"
	} else {
		b.text = "false"
	}
}

// Value returns the word itself.
func (w *WordLit) Value() string { return w.text }

// SetText rewrites the word.
func (w *WordLit) SetText(text string) { w.text = text }

// ToValue converts the subtree at n to a host value: objects become
// jsonc.Obj, arrays []any, strings their decoded text, numbers int64 or
// float64 (or, out of range, their source text), booleans bool, and null
// nil. A root or member converts as its value; an empty root is nil.
// A member without a value or a non-value node yields a
// *jsonc.ConversionError.
func ToValue(n Node) (any, error) {
	switch t := n.(type) {
	case *Root:
		if v := t.Value(); v != nil {
			return ToValue(v)
		}
		return nil, nil
	case *Member:
		if v := t.Value(); v != nil {
			return ToValue(v)
		}
		return nil, &jsonc.ConversionError{Message: fmt.Sprintf("property %q has no value", t.Key())}
	case *Object:
		fields := jsonc.Obj{}
		for _, m := range t.Members() {
			mv := m.Value()
			if mv == nil {
				return nil, &jsonc.ConversionError{Message: fmt.Sprintf("property %q has no value", m.Key())}
			}
			v, err := ToValue(mv)
			if err != nil {
				return nil, err
			}
			fields = append(fields, jsonc.Field{Key: m.Key(), Value: v})
		}
		return fields, nil
	case *Array:
		elts := []any{}
		for _, e := range t.Elements() {
			v, err := ToValue(e)
			if err != nil {
				return nil, err
			}
			elts = append(elts, v)
		}
		return elts, nil
	case *StringLit:
		return t.Value(), nil
	case *WordLit:
		return t.Value(), nil
	case *NumberLit:
		return jsonc.DecodeNumber(t.text), nil
	case *BoolLit:
		return t.Value(), nil
	case *NullLit:
		return nil, nil
	}
	return nil, &jsonc.ConversionError{Message: fmt.Sprintf("%s is not a value", kindOf(n))}
}

// MustToValue is ToValue, panicking with the conversion error on failure.
func MustToValue(n Node) any {
	v, err := ToValue(n)
	if err != nil {
		panic(err.(*jsonc.ConversionError))
	}
	return v
}
