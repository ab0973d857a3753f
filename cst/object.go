// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cst

import (
	"fmt"

	"github.com/creachadair/jsonc"
)

// Members returns the members of o in source order.
func (o *Object) Members() []*Member {
	var out []*Member
	for _, kid := range *o.kids() {
		if m, ok := kid.(*Member); ok {
			out = append(out, m)
		}
	}
	return out
}

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.Members()) }

// Find returns the first member of o whose decoded key equals key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members() {
		if m.Key() == key {
			return m
		}
	}
	return nil
}

// MustFind returns the first member of o with the given key, or panics
// with a *jsonc.TypeError naming the key.
func (o *Object) MustFind(key string) *Member {
	if m := o.Find(key); m != nil {
		return m
	}
	panic(&jsonc.TypeError{Message: fmt.Sprintf("property %q not found", key)})
}

// FindObject returns the object value of the member with the given key, or
// nil if the member is absent or its value is of another kind.
func (o *Object) FindObject(key string) *Object {
	if m := o.Find(key); m != nil {
		return m.ObjectValue()
	}
	return nil
}

// FindArray returns the array value of the member with the given key, or
// nil if the member is absent or its value is of another kind.
func (o *Object) FindArray(key string) *Array {
	if m := o.Find(key); m != nil {
		return m.ArrayValue()
	}
	return nil
}

// MustFindObject returns the object value of the member with the given
// key, or panics with a *jsonc.TypeError.
func (o *Object) MustFindObject(key string) *Object { return Must[*Object](o.MustFind(key).Value()) }

// MustFindArray returns the array value of the member with the given key,
// or panics with a *jsonc.TypeError.
func (o *Object) MustFindArray(key string) *Array { return Must[*Array](o.MustFind(key).Value()) }

// ForceObject returns the object value of the member with the given key,
// creating the member or coercing its value to an empty object as needed.
func (o *Object) ForceObject(key string) *Object {
	mustAttached(o)
	if m := o.Find(key); m != nil {
		return m.ForceObject()
	}
	return o.Append(key, Raw("{}")).Value().(*Object)
}

// ForceArray returns the array value of the member with the given key,
// creating the member or coercing its value to an empty array as needed.
func (o *Object) ForceArray(key string) *Array {
	mustAttached(o)
	if m := o.Find(key); m != nil {
		return m.ForceArray()
	}
	return o.Append(key, Raw("[]")).Value().(*Array)
}

// Append adds a new member with the given key and value after the last
// member of o, matching the container's layout, and returns it. See
// [Raw] and synthText for the accepted value types.
func (o *Object) Append(key string, v any) *Member {
	return o.Insert(o.Len(), key, v)
}

// Insert adds a new member with the given key and value at position i
// among the members of o and returns it. Panics with a *jsonc.TypeError if
// i is out of range.
func (o *Object) Insert(i int, key string, v any) *Member {
	mustAttached(o)
	root := RootOf(o)
	m := makeMember(root, key, v, innerIndent(o, root.SingleIndentText()))
	insertNode(o, i, m)
	return m
}

// SetTrailingCommas adds (true) or removes (false) a comma after the last
// member of o. Single-line objects are unaffected.
func (o *Object) SetTrailingCommas(on bool) {
	mustAttached(o)
	setTrailingCommas(o, on)
}

// EnsureMultiline rewrites a single-line object to place each member on
// its own line. Multiline and empty objects are unchanged.
func (o *Object) EnsureMultiline() {
	mustAttached(o)
	ensureMultiline(o)
}

// Remove detaches o from its tree. If o is the value of a member, the
// whole member is removed.
func (o *Object) Remove() { Remove(o) }

// ReplaceWith replaces o with a subtree synthesized from v and returns the
// new node; o is detached.
func (o *Object) ReplaceWith(v any) Node { return ReplaceWith(o, v) }

// Name returns the name node of the member: a *StringLit, or a *WordLit
// under loose property names.
func (m *Member) Name() Node { return firstSig(m) }

// Key returns the decoded property name of the member.
func (m *Member) Key() string {
	name := m.Name()
	if name == nil {
		return ""
	}
	dec, err := jsonc.DecodeString(name.Text())
	if err != nil {
		return name.Text()
	}
	return dec
}

// Value returns the value node of the member, or nil if the member has
// none.
func (m *Member) Value() Node {
	if sigs := sigChildren(m); len(sigs) > 1 {
		return sigs[1]
	}
	return nil
}

// MustValue returns the value node of the member, or panics with a
// *jsonc.TypeError naming the key.
func (m *Member) MustValue() Node {
	if v := m.Value(); v != nil {
		return v
	}
	panic(&jsonc.TypeError{Message: fmt.Sprintf("property %q has no value", m.Key())})
}

// ObjectValue returns the value of m as an object, or nil if it is absent
// or of another kind.
func (m *Member) ObjectValue() *Object { o, _ := m.Value().(*Object); return o }

// ArrayValue returns the value of m as an array, or nil if it is absent or
// of another kind.
func (m *Member) ArrayValue() *Array { a, _ := m.Value().(*Array); return a }

// MustObjectValue returns the value of m as an object, or panics with a
// *jsonc.TypeError.
func (m *Member) MustObjectValue() *Object { return Must[*Object](m.Value()) }

// MustArrayValue returns the value of m as an array, or panics with a
// *jsonc.TypeError.
func (m *Member) MustArrayValue() *Array { return Must[*Array](m.Value()) }

// ForceObject returns the value of m as an object, coercing it in place to
// an empty object if it is of another kind.
func (m *Member) ForceObject() *Object {
	mustAttached(m)
	if o, ok := m.Value().(*Object); ok {
		return o
	}
	return m.SetValue(Raw("{}")).(*Object)
}

// ForceArray returns the value of m as an array, coercing it in place to
// an empty array if it is of another kind.
func (m *Member) ForceArray() *Array {
	mustAttached(m)
	if a, ok := m.Value().(*Array); ok {
		return a
	}
	return m.SetValue(Raw("[]")).(*Array)
}

// SetValue replaces the value of m with a subtree synthesized from v and
// returns the new node. The member's name and surrounding trivia are
// untouched.
func (m *Member) SetValue(v any) Node {
	mustAttached(m)
	if old := m.Value(); old != nil {
		return ReplaceWith(old, v)
	}
	n := makeValueNode(RootOf(m), v, lineIndent(m))
	rawAppend(m, newWS(" "))
	rawAppend(m, n)
	return n
}

// ReplaceWith replaces the whole member, name and value, with a freshly
// synthesized one and returns it; m is detached.
func (m *Member) ReplaceWith(key string, v any) *Member {
	mustAttached(m)
	nm := makeMember(RootOf(m), key, v, lineIndent(m))
	swapChild(m.base().up, m, nm)
	return nm
}

// Remove detaches m, its separator, and its blank same-line trivia from
// the enclosing object.
func (m *Member) Remove() { Remove(m) }

// Index reports the position of m among the members of its object, or -1
// if m is detached.
func (m *Member) Index() int {
	o, ok := m.Parent().(*Object)
	if !ok {
		return -1
	}
	for i, em := range o.Members() {
		if em == m {
			return i
		}
	}
	return -1
}

// PrevMember returns the member before m in its object, or nil.
func (m *Member) PrevMember() *Member {
	for n := PrevSibling(m); n != nil; n = PrevSibling(n) {
		if pm, ok := n.(*Member); ok {
			return pm
		}
	}
	return nil
}

// NextMember returns the member after m in its object, or nil.
func (m *Member) NextMember() *Member {
	for n := NextSibling(m); n != nil; n = NextSibling(n) {
		if nm, ok := n.(*Member); ok {
			return nm
		}
	}
	return nil
}
