// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cst

// Elements returns the value nodes of a in source order.
func (a *Array) Elements() []Node { return sigChildren(a) }

// Len reports the number of elements of a.
func (a *Array) Len() int { return len(a.Elements()) }

// At returns the element of a at position i, or nil if i is out of range.
// Negative positions count back from the end.
func (a *Array) At(i int) Node {
	elts := a.Elements()
	if i < 0 {
		i += len(elts)
	}
	if i < 0 || i >= len(elts) {
		return nil
	}
	return elts[i]
}

// Append adds a new element synthesized from v after the last element of
// a, matching the container's layout, and returns it.
func (a *Array) Append(v any) Node { return a.Insert(a.Len(), v) }

// Insert adds a new element synthesized from v at position i of a and
// returns it. Panics with a *jsonc.TypeError if i is out of range.
func (a *Array) Insert(i int, v any) Node {
	mustAttached(a)
	root := RootOf(a)
	n := makeValueNode(root, v, innerIndent(a, root.SingleIndentText()))
	insertNode(a, i, n)
	return n
}

// SetTrailingCommas adds (true) or removes (false) a comma after the last
// element of a. Single-line arrays are unaffected.
func (a *Array) SetTrailingCommas(on bool) {
	mustAttached(a)
	setTrailingCommas(a, on)
}

// EnsureMultiline rewrites a single-line array to place each element on
// its own line. Multiline and empty arrays are unchanged.
func (a *Array) EnsureMultiline() {
	mustAttached(a)
	ensureMultiline(a)
}

// Remove detaches a from its tree. If a is the value of a member, the
// whole member is removed.
func (a *Array) Remove() { Remove(a) }

// ReplaceWith replaces a with a subtree synthesized from v and returns the
// new node; a is detached.
func (a *Array) ReplaceWith(v any) Node { return ReplaceWith(a, v) }
