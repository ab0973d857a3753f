// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cst

import "github.com/creachadair/jsonc"

// Value returns the value of the document, or nil for an empty document.
func (r *Root) Value() Node { return firstSig(r) }

// MustValue returns the value of the document, or panics with a
// *jsonc.TypeError if the document is empty.
func (r *Root) MustValue() Node {
	if v := r.Value(); v != nil {
		return v
	}
	panic(&jsonc.TypeError{Message: "document has no value"})
}

// Object returns the document value as an object, or nil if the value is
// absent or of another kind.
func (r *Root) Object() *Object { o, _ := r.Value().(*Object); return o }

// Array returns the document value as an array, or nil if the value is
// absent or of another kind.
func (r *Root) Array() *Array { a, _ := r.Value().(*Array); return a }

// MustObject returns the document value as an object, or panics with a
// *jsonc.TypeError.
func (r *Root) MustObject() *Object { return Must[*Object](r.Value()) }

// MustArray returns the document value as an array, or panics with a
// *jsonc.TypeError.
func (r *Root) MustArray() *Array { return Must[*Array](r.Value()) }

// ForceObject returns the document value as an object, replacing the value
// (or filling an empty document) with a fresh empty object if necessary.
func (r *Root) ForceObject() *Object {
	if v := r.Value(); v != nil {
		return ForceObject(v)
	}
	return r.SetValue(Raw("{}")).(*Object)
}

// ForceArray returns the document value as an array, replacing the value
// (or filling an empty document) with a fresh empty array if necessary.
func (r *Root) ForceArray() *Array {
	if v := r.Value(); v != nil {
		return ForceArray(v)
	}
	return r.SetValue(Raw("[]")).(*Array)
}

// SetValue replaces the value of the document with a subtree synthesized
// from v, creating one if the document is empty, and returns the new node.
// Surrounding trivia is preserved.
func (r *Root) SetValue(v any) Node {
	if old := r.Value(); old != nil {
		return ReplaceWith(old, v)
	}
	n := makeValueNode(r, v, "")
	// A value must not join a trailing comment line.
	if kids := *r.kids(); len(kids) > 0 {
		if _, ok := kids[len(kids)-1].(*LineComment); ok {
			rawAppend(r, newNL(r.NewlineKind()))
		}
	}
	rawAppend(r, n)
	return n
}

// ClearChildren removes every child of the document, trivia included,
// leaving it empty. All removed nodes are detached.
func (r *Root) ClearChildren() { rawRemove(r, 0, len(*r.kids())) }

// SetTrailingCommas adds (or removes) trailing commas in every multiline
// object and array of the document.
func (r *Root) SetTrailingCommas(on bool) {
	walk(r, func(n Node) bool {
		switch c := n.(type) {
		case *Object:
			setTrailingCommas(c, on)
		case *Array:
			setTrailingCommas(c, on)
		}
		return true
	})
}
