// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cst

import (
	"fmt"
	"slices"

	"github.com/creachadair/jsonc"
)

// rawAppend attaches n as the last child of c.
func rawAppend(c Container, n Node) {
	ks := c.kids()
	b := n.base()
	b.up, b.idx = c, len(*ks)
	*ks = append(*ks, n)
}

// rawInsert splices ns into the children of c at position i and restores
// the parent links and child indexes of everything at or after i.
func rawInsert(c Container, i int, ns ...Node) {
	ks := c.kids()
	*ks = slices.Insert(*ks, i, ns...)
	for j := i; j < len(*ks); j++ {
		b := (*ks)[j].base()
		b.up, b.idx = c, j
	}
}

// rawRemove detaches the children of c in positions [i, j) and reindexes
// the remainder.
func rawRemove(c Container, i, j int) {
	ks := c.kids()
	for _, n := range (*ks)[i:j] {
		b := n.base()
		b.up, b.idx = nil, 0
	}
	*ks = slices.Delete(*ks, i, j)
	for k := i; k < len(*ks); k++ {
		(*ks)[k].base().idx = k
	}
}

// mustAttached panics with a *jsonc.StateError if n has been detached from
// its tree.
func mustAttached(n Node) {
	if Detached(n) {
		panic(&jsonc.StateError{Message: fmt.Sprintf("operation on a detached node (%s)", kindOf(n))})
	}
}

// commaAfter returns the child index of the comma separating the
// significant child at index idx from its successor, or -1 if the
// separator is absent.
func commaAfter(c Container, idx int) int {
	kids := *c.kids()
	for j := idx + 1; j < len(kids); j++ {
		switch {
		case isComma(kids[j]):
			return j
		case IsTrivia(kids[j]):
		default:
			return -1
		}
	}
	return -1
}

// insertNode inserts n as a new significant child of c at significant
// position i; i equal to the number of significant children appends. The
// engine supplies separators and line layout matching the container.
func insertNode(c Container, i int, n Node) {
	sigs := sigChildren(c)
	if i < 0 || i > len(sigs) {
		panic(&jsonc.TypeError{Message: fmt.Sprintf("index %d out of range for %d children", i, len(sigs))})
	}
	if i == len(sigs) {
		appendNode(c, n)
	} else {
		insertBeforeNode(c, sigs[i], n)
	}
}

// appendNode adds n after the last significant child of c.
func appendNode(c Container, n Node) {
	root := RootOf(c)
	inner := innerIndent(c, root.SingleIndentText())
	nl := root.NewlineKind()

	last := lastSig(c)
	if last == nil {
		if multiline(c) {
			appendLine(c, n, inner, nl, false)
		} else {
			fillEmpty(c, n)
		}
		return
	}

	if !multiline(c) {
		rawInsert(c, last.base().idx+1, newSyntax(","), newWS(" "), n)
		return
	}

	// The container already ends with a comma exactly when it uses
	// trailing-comma style; then the new child gets one too. Otherwise a
	// separator goes after the current last child.
	trailing := commaAfter(c, last.base().idx) >= 0
	if !trailing {
		rawInsert(c, last.base().idx+1, newSyntax(","))
	}
	appendLine(c, n, inner, nl, trailing)
}

// appendLine places n on a line of its own after the last line of content
// in c. With comma set, a trailing comma follows n.
func appendLine(c Container, n Node, inner, nl string, comma bool) {
	kids := *c.kids()

	// Start after the last significant child, or after the open delimiter.
	j := 1
	if last := lastSig(c); last != nil {
		j = last.base().idx + 1
	}

	// Skip the remainder of that line: its trivia, the separating comma,
	// and the line terminator if one is present.
	hadNL := false
scan:
	for j < len(kids)-1 {
		switch kids[j].(type) {
		case *Whitespace, *LineComment, *BlockComment:
			j++
		case *Syntax:
			if !isComma(kids[j]) {
				break scan
			}
			j++
		case *Newline:
			j++
			hadNL = true
			break scan
		default:
			break scan
		}
	}

	var seq []Node
	if !hadNL {
		seq = append(seq, newNL(nl))
	}
	if inner != "" {
		seq = append(seq, newWS(inner))
	}
	seq = append(seq, n)
	if comma {
		seq = append(seq, newSyntax(","))
	}
	if hadNL {
		seq = append(seq, newNL(nl))
	}
	rawInsert(c, j, seq...)
}

// fillEmpty places n in an empty single-line container.
func fillEmpty(c Container, n Node) {
	kids := *c.kids()
	// A blank interior is dropped; comments and the like are kept.
	if len(kids) == 3 {
		if _, ok := kids[1].(*Whitespace); ok {
			rawRemove(c, 1, 2)
		}
	}
	pos := len(*c.kids()) - 1 // before the close delimiter
	if _, ok := c.(*Object); ok {
		rawInsert(c, pos, newWS(" "), n, newWS(" "))
	} else {
		rawInsert(c, pos, n)
	}
}

// insertBeforeNode inserts n ahead of the significant child target.
func insertBeforeNode(c Container, target, n Node) {
	root := RootOf(c)
	inner := innerIndent(c, root.SingleIndentText())
	nl := root.NewlineKind()
	kids := *c.kids()

	// When target starts its own line, n gets the line above it.
	j := target.base().idx
	for j > 0 {
		if _, ok := kids[j-1].(*Whitespace); !ok {
			break
		}
		j--
	}
	if j > 0 {
		if _, ok := kids[j-1].(*Newline); ok {
			seq := []Node{n, newSyntax(","), newNL(nl)}
			if inner != "" {
				seq = append([]Node{newWS(inner)}, seq...)
			}
			rawInsert(c, j, seq...)
			return
		}
	}
	rawInsert(c, target.base().idx, n, newSyntax(","), newWS(" "))
}

// removeSig removes the significant child x from c together with the
// separator comma and the contiguous same-line trivia that existed only to
// set x apart from its neighbors. Comments on preceding lines stay.
func removeSig(c Container, x Node) {
	kids := *c.kids()
	start, end := x.base().idx, x.base().idx+1

	// Forward: same-line trivia and the separating comma, stopping at the
	// next line or the next significant child.
	commaSeen := false
forward:
	for end < len(kids) {
		switch {
		case isComma(kids[end]) && !commaSeen:
			commaSeen = true
			end++
		case IsTrivia(kids[end]) && !Is[*Newline](kids[end]):
			end++
		default:
			break forward
		}
	}

	if commaSeen {
		// Collapse x's line if it had one of its own.
		j := start
		for j > 0 {
			if _, ok := kids[j-1].(*Whitespace); !ok {
				break
			}
			j--
		}
		if j > 0 {
			if _, ok := kids[j-1].(*Newline); ok {
				start = j - 1
			}
		}
	} else {
		// x was the last child; the comma that separated it from its
		// predecessor comes out too, when only blanks intervene.
		j, sawNL := start, false
	backward:
		for j > 0 {
			switch kids[j-1].(type) {
			case *Whitespace:
				j--
			case *Newline:
				if sawNL {
					break backward
				}
				sawNL = true
				j--
			default:
				break backward
			}
		}
		if j > 0 && isComma(kids[j-1]) {
			start = j - 1
		} else {
			// No separator; still collapse x's own line.
			j := start
			for j > 0 {
				if _, ok := kids[j-1].(*Whitespace); !ok {
					break
				}
				j--
			}
			if j > 0 {
				if _, ok := kids[j-1].(*Newline); ok {
					start = j - 1
				}
			}
		}
	}
	rawRemove(c, start, end)
}

// Remove detaches n from its tree, cleaning up the separators and blank
// trivia around it. Removing the value of a member removes the whole
// member, since a member cannot stand without a value. Panics with a
// *jsonc.StateError if n is already detached.
func Remove(n Node) {
	mustAttached(n)
	switch p := n.Parent().(type) {
	case *Member:
		Remove(p)
	case *Root:
		rawRemove(p, n.base().idx, n.base().idx+1)
	case *Object:
		removeSig(p, n)
	case *Array:
		removeSig(p, n)
	}
}

// ReplaceWith replaces the value node n with a fresh subtree synthesized
// from v, leaving the surrounding separators and trivia alone. The new node
// takes over n's position; n is detached. To replace a whole member, use
// [Member.ReplaceWith].
func ReplaceWith(n Node, v any) Node {
	mustAttached(n)
	switch n.(type) {
	case *Member:
		panic(&jsonc.TypeError{Message: "cannot replace a member with a value"})
	case *Root:
		panic(&jsonc.TypeError{Message: "cannot replace the document root; use Root.SetValue"})
	}
	c := n.base().up
	nn := makeValueNode(RootOf(n), v, lineIndent(n))
	swapChild(c, n, nn)
	return nn
}

// swapChild substitutes nn for old among the children of c; old is
// detached.
func swapChild(c Container, old, nn Node) {
	i := old.base().idx
	(*c.kids())[i] = nn
	b := nn.base()
	b.up, b.idx = c, i
	ob := old.base()
	ob.up, ob.idx = nil, 0
}

// ForceObject returns n if it is an object, and otherwise replaces it
// in place with a freshly synthesized empty object and returns that. A
// handle to a replaced node is left detached.
func ForceObject(n Node) *Object {
	switch t := n.(type) {
	case *Object:
		return t
	case *Root:
		return t.ForceObject()
	}
	mustAttached(n)
	return ReplaceWith(n, Raw("{}")).(*Object)
}

// ForceArray is ForceObject for arrays.
func ForceArray(n Node) *Array {
	switch t := n.(type) {
	case *Array:
		return t
	case *Root:
		return t.ForceArray()
	}
	mustAttached(n)
	return ReplaceWith(n, Raw("[]")).(*Array)
}

// setTrailingCommas adds or removes a comma after the last significant
// child of c. Single-line and empty containers are left alone.
func setTrailingCommas(c Container, on bool) {
	if !multiline(c) {
		return
	}
	last := lastSig(c)
	if last == nil {
		return
	}
	j := commaAfter(c, last.base().idx)
	if on && j < 0 {
		rawInsert(c, last.base().idx+1, newSyntax(","))
	} else if !on && j >= 0 {
		rawRemove(c, j, j+1)
	}
}

// ensureMultiline rewrites a single-line container so each significant
// child occupies a line of its own. Empty and already-multiline containers
// are unchanged.
func ensureMultiline(c Container) {
	if multiline(c) || lastSig(c) == nil {
		return
	}
	root := RootOf(c)
	base := lineIndent(c)
	inner := innerIndent(c, root.SingleIndentText())
	nl := root.NewlineKind()

	kids := *c.kids()
	open, closing := kids[0], kids[len(kids)-1]
	interior := kids[1 : len(kids)-1]

	fresh := []Node{open}
	for _, kid := range interior {
		switch kid.(type) {
		case *Whitespace:
			// Old separators are re-synthesized.
			kid.base().up = nil
			continue
		case *Syntax: // a comma stays on the line of what it follows
			fresh = append(fresh, kid)
		default:
			fresh = append(fresh, newNL(nl), newWS(inner), kid)
		}
	}
	fresh = append(fresh, newNL(nl))
	if base != "" {
		fresh = append(fresh, newWS(base))
	}
	fresh = append(fresh, closing)

	ks := c.kids()
	*ks = fresh
	for i, kid := range fresh {
		b := kid.base()
		b.up, b.idx = c, i
	}
}

func newSyntax(text string) *Syntax { return &Syntax{leaf{text: text}} }
func newWS(text string) *Whitespace { return &Whitespace{leaf{text: text}} }
func newNL(text string) *Newline    { return &Newline{leaf{text: text}} }
