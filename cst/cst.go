// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package cst implements a lossless concrete syntax tree for JSONC
// documents. Every token of the input, including whitespace, newlines,
// comments, and structural punctuation, is a node of the tree, so the
// serialized form of an unmodified tree is byte-for-byte identical to the
// source it was parsed from. Mutation operations edit the tree in place
// while matching the surrounding layout of the document.
package cst

import (
	"fmt"
	"iter"
	"strings"

	"github.com/creachadair/jsonc"
)

// A Node is a single node of a concrete syntax tree. The concrete type of a
// Node is one of the container types (*Root, *Object, *Array, *Member), the
// value leaves (*StringLit, *NumberLit, *BoolLit, *NullLit, *WordLit), the
// structural token type (*Syntax), or the trivia types (*Whitespace,
// *Newline, *LineComment, *BlockComment).
type Node interface {
	// Parent returns the container this node is a child of, or nil if the
	// node is a root or is detached from its tree.
	Parent() Node

	// ChildIndex reports the position of this node among the children of its
	// parent. The result is meaningless for a node with no parent.
	ChildIndex() int

	// Text returns the source text of this node. For a container, this is
	// the concatenated text of its children in order.
	Text() string

	base() *node
}

// A Container is a Node having children: a *Root, *Object, *Array, or
// *Member. The children of a container include its structural punctuation
// and trivia, not only its values; use [Object.Members], [Array.Elements],
// or [IsSignificant] to filter.
type Container interface {
	Node

	// Children returns the children of the container in source order.
	// The caller must not modify the returned slice.
	Children() []Node

	kids() *[]Node
}

// node carries the parent linkage shared by every kind of tree node.
type node struct {
	up  Container
	idx int
}

func (n *node) Parent() Node {
	if n.up == nil {
		return nil
	}
	return n.up
}

func (n *node) ChildIndex() int { return n.idx }
func (n *node) base() *node     { return n }

// leaf is a node with fixed text and no children.
type leaf struct {
	node
	text string
}

func (l *leaf) Text() string { return l.text }

// parent is a node with children and no text of its own.
type parent struct {
	node
	sub []Node
}

func (p *parent) Children() []Node { return p.sub }
func (p *parent) kids() *[]Node    { return &p.sub }

func (p *parent) Text() string {
	var sb strings.Builder
	p.writeTo(&sb)
	return sb.String()
}

type textWriter interface{ writeTo(*strings.Builder) }

func (p *parent) writeTo(sb *strings.Builder) {
	for _, kid := range p.sub {
		if w, ok := kid.(textWriter); ok {
			w.writeTo(sb)
		} else {
			sb.WriteString(kid.Text())
		}
	}
}

// A Root represents a whole document: an optional value together with any
// trivia surrounding it.
type Root struct{ parent }

// An Object is a brace-delimited sequence of members.
type Object struct{ parent }

// An Array is a bracket-delimited sequence of elements.
type Array struct{ parent }

// A Member is a single key-value property of an object. Its children are
// the name, the colon, the value, and any trivia between the name and the
// value; trivia after the value belongs to the enclosing object.
type Member struct{ parent }

// A StringLit is a quoted string literal.
type StringLit struct{ leaf }

// A NumberLit is a numeric literal. Its text is kept verbatim, so values
// outside the range of the host number types are not damaged.
type NumberLit struct{ leaf }

// A BoolLit is the literal true or false.
type BoolLit struct{ leaf }

// A NullLit is the literal null.
type NullLit struct{ leaf }

// A WordLit is a bare word used as an object property name.
type WordLit struct{ leaf }

// A Syntax is a structural token: a brace, bracket, comma, or colon.
type Syntax struct{ leaf }

// A Whitespace is a run of spaces and tabs.
type Whitespace struct{ leaf }

// A Newline is a single line terminator, either "\n" or "\r\n".
type Newline struct{ leaf }

// A LineComment is a comment from "//" to the end of its line, not
// including the line terminator.
type LineComment struct{ leaf }

// A BlockComment is a comment delimited by "/*" and "*/".
type BlockComment struct{ leaf }

// IsTrivia reports whether n is a whitespace, newline, or comment node.
func IsTrivia(n Node) bool {
	switch n.(type) {
	case *Whitespace, *Newline, *LineComment, *BlockComment:
		return true
	}
	return false
}

// IsSignificant reports whether n carries a value: that is, whether it is
// neither trivia nor structural punctuation.
func IsSignificant(n Node) bool {
	if n == nil {
		return false
	}
	switch n.(type) {
	case *Whitespace, *Newline, *LineComment, *BlockComment, *Syntax:
		return false
	}
	return true
}

// Is reports whether the concrete type of n is T.
func Is[T Node](n Node) bool { _, ok := n.(T); return ok }

// As returns n as a T if that is its concrete type, or a zero T otherwise.
func As[T Node](n Node) (T, bool) { t, ok := n.(T); return t, ok }

// Must returns n as a T, or panics with a *jsonc.TypeError if n does not
// have that concrete type.
func Must[T Node](n Node) T {
	t, ok := n.(T)
	if !ok {
		var zero T
		panic(&jsonc.TypeError{Message: fmt.Sprintf("node is %s, not %s", kindOf(n), kindOf(zero))})
	}
	return t
}

// kindOf renders the kind of a node for use in diagnostics.
func kindOf(n Node) string {
	switch n.(type) {
	case *Root:
		return "a document root"
	case *Object:
		return "an object"
	case *Array:
		return "an array"
	case *Member:
		return "an object member"
	case *StringLit:
		return "a string"
	case *NumberLit:
		return "a number"
	case *BoolLit:
		return "a boolean"
	case *NullLit:
		return "null"
	case *WordLit:
		return "a word"
	case *Syntax:
		return "punctuation"
	case *Whitespace:
		return "whitespace"
	case *Newline:
		return "a newline"
	case *LineComment:
		return "a line comment"
	case *BlockComment:
		return "a block comment"
	case nil:
		return "absent"
	}
	return fmt.Sprintf("%T", n)
}

// Detached reports whether n has been removed from the tree it was created
// in, that is, whether no document root is reachable from it. A node inside
// a removed subtree is detached even though its own parent link survives.
// A *Root is never detached.
func Detached(n Node) bool {
	if _, ok := n.(*Root); ok {
		return false
	}
	return RootOf(n) == nil
}

// PrevSibling returns the node immediately before n among the children of
// its parent, or nil if n is first or has no parent.
func PrevSibling(n Node) Node {
	b := n.base()
	if b.up == nil || b.idx == 0 {
		return nil
	}
	return (*b.up.kids())[b.idx-1]
}

// NextSibling returns the node immediately after n among the children of
// its parent, or nil if n is last or has no parent.
func NextSibling(n Node) Node {
	b := n.base()
	if b.up == nil {
		return nil
	}
	kids := *b.up.kids()
	if b.idx+1 >= len(kids) {
		return nil
	}
	return kids[b.idx+1]
}

// RootOf returns the document root that n belongs to, or nil if n is
// detached.
func RootOf(n Node) *Root {
	for {
		if r, ok := n.(*Root); ok {
			return r
		}
		p := n.Parent()
		if p == nil {
			return nil
		}
		n = p
	}
}

// Ancestors returns an iterator over the ancestors of n, beginning with its
// parent and ending with the root.
func Ancestors(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for p := n.Parent(); p != nil; p = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}

// walk visits n and every node beneath it in depth-first source order.
// It returns false if f stopped the walk early.
func walk(n Node, f func(Node) bool) bool {
	if !f(n) {
		return false
	}
	if c, ok := n.(Container); ok {
		for _, kid := range c.Children() {
			if !walk(kid, f) {
				return false
			}
		}
	}
	return true
}

// sigChildren returns the significant (value-bearing) children of c.
func sigChildren(c Container) []Node {
	var out []Node
	for _, kid := range *c.kids() {
		if IsSignificant(kid) {
			out = append(out, kid)
		}
	}
	return out
}

// firstSig returns the first significant child of c, or nil.
func firstSig(c Container) Node {
	for _, kid := range *c.kids() {
		if IsSignificant(kid) {
			return kid
		}
	}
	return nil
}

// lastSig returns the last significant child of c, or nil.
func lastSig(c Container) Node {
	kids := *c.kids()
	for i := len(kids) - 1; i >= 0; i-- {
		if IsSignificant(kids[i]) {
			return kids[i]
		}
	}
	return nil
}

// isComma reports whether n is a comma token.
func isComma(n Node) bool {
	s, ok := n.(*Syntax)
	return ok && s.text == ","
}
