// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cst

import "strings"

// multiline reports whether c lays its children out on multiple lines, that
// is, whether any direct child is a newline.
func multiline(c Container) bool {
	for _, kid := range *c.kids() {
		if _, ok := kid.(*Newline); ok {
			return true
		}
	}
	return false
}

// lineIndent returns the leading whitespace of the line n starts on. When
// the line begins outside n's container (for example the value of a member
// continues the member's line), the search continues in the ancestors.
func lineIndent(n Node) string {
	b := n.base()
	if b.up == nil {
		return ""
	}
	kids := *b.up.kids()

	// Scan backward to the start of n's line.
	i := b.idx
	for i > 0 {
		if _, ok := kids[i-1].(*Newline); ok {
			break
		}
		i--
	}
	if i == 0 {
		return lineIndent(b.up)
	}

	// Collect the whitespace at the start of the line.
	var sb strings.Builder
	for _, kid := range kids[i:] {
		ws, ok := kid.(*Whitespace)
		if !ok {
			break
		}
		sb.WriteString(ws.text)
	}
	return sb.String()
}

// ownLineIndent reports whether n is the first non-blank node on its line,
// and if so returns the indentation preceding it.
func ownLineIndent(n Node) (string, bool) {
	b := n.base()
	if b.up == nil {
		return "", false
	}
	kids := *b.up.kids()
	var ws string
	for i := b.idx - 1; i >= 0; i-- {
		switch t := kids[i].(type) {
		case *Whitespace:
			ws = t.text + ws
		case *Newline:
			return ws, true
		default:
			return "", false
		}
	}
	return "", false
}

// innerIndent returns the indentation for a new child line of c: the indent
// of an existing child that starts its own line, or failing that the indent
// of c's own line plus one unit.
func innerIndent(c Container, unit string) string {
	for _, s := range sigChildren(c) {
		if ind, ok := ownLineIndent(s); ok {
			return ind
		}
	}
	return lineIndent(c) + unit
}

// SingleIndentText returns the whitespace the document uses for a single
// level of indentation, derived from the first indented child found in the
// tree. It defaults to two spaces for documents with no indentation.
func (r *Root) SingleIndentText() string {
	unit := "  "
	walk(r, func(n Node) bool {
		switch n.(type) {
		case *Object, *Array:
		default:
			return true
		}
		c := n.(Container)
		base := lineIndent(c)
		for _, s := range sigChildren(c) {
			if ind, ok := ownLineIndent(s); ok && strings.HasPrefix(ind, base) && len(ind) > len(base) {
				unit = ind[len(base):]
				return false
			}
		}
		return true
	})
	return unit
}

// NewlineKind returns the line terminator of the document: "\r\n" if any
// CRLF newline appears in the tree, otherwise "\n".
func (r *Root) NewlineKind() string {
	kind := "\n"
	walk(r, func(n Node) bool {
		if nl, ok := n.(*Newline); ok && nl.text == "\r\n" {
			kind = "\r\n"
			return false
		}
		return true
	})
	return kind
}
