// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cst

import (
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/jsonc"
)

// Parse parses a document from r into a concrete syntax tree. A nil
// *Options is treated as jsonc.AllExtensions. The text of the returned root
// is byte-for-byte identical to the input. In case of a syntax error the
// returned error has type [*jsonc.SyntaxError].
func Parse(r io.Reader, o *jsonc.Options) (*Root, error) {
	if o == nil {
		o = jsonc.AllExtensions()
	}
	sc := jsonc.NewScanner(r)
	sc.SetOptions(o)
	p := &parser{
		sc:     sc,
		tcomma: o.AllowTrailingCommas,
		mcomma: o.AllowMissingCommas,
	}
	return p.parse()
}

// ParseString is Parse on a string.
func ParseString(s string, o *jsonc.Options) (*Root, error) {
	return Parse(strings.NewReader(s), o)
}

// ParseStrict parses a standard JSON document into a concrete syntax tree,
// rejecting all grammar extensions.
func ParseStrict(r io.Reader) (*Root, error) { return Parse(r, &jsonc.Options{}) }

// ParseStrictString is ParseStrict on a string.
func ParseStrictString(s string) (*Root, error) { return ParseStrict(strings.NewReader(s)) }

// A parser builds a syntax tree from scanner tokens. Grammar errors are
// reported by panicking with a *jsonc.SyntaxError, recovered in parse.
type parser struct {
	sc     *jsonc.Scanner
	tcomma bool // allow trailing commas
	mcomma bool // allow missing commas

	tok  jsonc.Token
	text string
	eof  bool
}

func (p *parser) parse() (root *Root, err error) {
	defer func() {
		if v := recover(); v != nil {
			if serr, ok := v.(*jsonc.SyntaxError); ok {
				root, err = nil, serr
			} else {
				panic(v)
			}
		}
	}()

	r := &Root{}
	p.next()
	p.consumeTrivia(r)
	if !p.eof {
		p.parseValue(r)
		p.consumeTrivia(r)
		if !p.eof {
			p.failf("unexpected input after value")
		}
	}
	return r, nil
}

func (p *parser) next() {
	if p.sc.Next() {
		p.tok = p.sc.Token()
		p.text = string(p.sc.Text())
		return
	}
	if err := p.sc.Err(); err != nil {
		if serr, ok := err.(*jsonc.SyntaxError); ok {
			panic(serr)
		}
		p.failf("read error: %v", err)
	}
	p.eof = true
	p.tok, p.text = 0, ""
}

// consumeTrivia appends whitespace, newline, and comment tokens to c until
// a significant token or the end of input is reached.
func (p *parser) consumeTrivia(c Container) {
	for !p.eof {
		var n Node
		switch p.tok {
		case jsonc.Whitespace:
			n = &Whitespace{leaf{text: p.text}}
		case jsonc.Newline:
			n = &Newline{leaf{text: p.text}}
		case jsonc.LineComment:
			n = &LineComment{leaf{text: p.text}}
		case jsonc.BlockComment:
			n = &BlockComment{leaf{text: p.text}}
		default:
			return
		}
		rawAppend(c, n)
		p.next()
	}
}

// parseValue parses a single value beginning at the current token and
// appends it to c.
func (p *parser) parseValue(c Container) {
	if p.eof {
		p.failf("unexpected end of input")
	}
	switch p.tok {
	case jsonc.LBrace:
		p.parseObject(c)
	case jsonc.LSquare:
		p.parseArray(c)
	case jsonc.String:
		rawAppend(c, &StringLit{leaf{text: p.text}})
		p.next()
	case jsonc.Integer, jsonc.Number:
		rawAppend(c, &NumberLit{leaf{text: p.text}})
		p.next()
	case jsonc.True, jsonc.False:
		rawAppend(c, &BoolLit{leaf{text: p.text}})
		p.next()
	case jsonc.Null:
		rawAppend(c, &NullLit{leaf{text: p.text}})
		p.next()
	case jsonc.Word:
		p.failf("unexpected word %q", p.text)
	default:
		p.failf("expected value, got %v", p.tok)
	}
}

func (p *parser) parseObject(c Container) {
	o := &Object{}
	rawAppend(c, o)
	p.punct(o) // "{"

	haveMember := false // a member precedes the current position
	afterComma := false // a comma follows the last member
	for {
		p.consumeTrivia(o)
		if p.eof {
			p.failf("unexpected end of input in object")
		}
		switch p.tok {
		case jsonc.RBrace:
			if afterComma && !p.tcomma {
				p.failf("trailing comma before %v", p.tok)
			}
			p.punct(o) // "}"
			return

		case jsonc.String, jsonc.Word:
			if haveMember && !afterComma && !p.mcomma {
				p.failf(`expected "," or "}", got %v`, p.tok)
			}
			p.parseMember(o)
			haveMember, afterComma = true, false

		case jsonc.Comma:
			if !haveMember || afterComma {
				p.failf("unexpected %v", p.tok)
			}
			p.punct(o) // ","
			afterComma = true

		default:
			p.failf("expected member name, got %v", p.tok)
		}
	}
}

// parseMember parses one key-value member beginning at the current (name)
// token. The name, colon, value, and the trivia between them become the
// member's children; anything after the value belongs to the object.
func (p *parser) parseMember(o *Object) {
	m := &Member{}
	rawAppend(o, m)

	if p.tok == jsonc.String {
		rawAppend(m, &StringLit{leaf{text: p.text}})
	} else {
		rawAppend(m, &WordLit{leaf{text: p.text}})
	}
	p.next()

	p.consumeTrivia(m)
	if p.eof || p.tok != jsonc.Colon {
		p.failf(`expected ":" after member name`)
	}
	p.punct(m) // ":"

	p.consumeTrivia(m)
	p.parseValue(m)
}

func (p *parser) parseArray(c Container) {
	a := &Array{}
	rawAppend(c, a)
	p.punct(a) // "["

	haveElt := false
	afterComma := false
	for {
		p.consumeTrivia(a)
		if p.eof {
			p.failf("unexpected end of input in array")
		}
		switch p.tok {
		case jsonc.RSquare:
			if afterComma && !p.tcomma {
				p.failf("trailing comma before %v", p.tok)
			}
			p.punct(a) // "]"
			return

		case jsonc.Comma:
			if !haveElt || afterComma {
				p.failf("unexpected %v", p.tok)
			}
			p.punct(a) // ","
			afterComma = true

		case jsonc.RBrace, jsonc.Colon:
			p.failf("unexpected %v", p.tok)

		default:
			if haveElt && !afterComma && !p.mcomma {
				p.failf(`expected "," or "]", got %v`, p.tok)
			}
			p.parseValue(a)
			haveElt, afterComma = true, false
		}
	}
}

// punct appends the current token to c as a Syntax node and advances.
func (p *parser) punct(c Container) {
	rawAppend(c, &Syntax{leaf{text: p.text}})
	p.next()
}

func (p *parser) failf(msg string, args ...any) {
	loc := p.sc.Location()
	panic(&jsonc.SyntaxError{
		Offset:  loc.Pos,
		Pos:     loc.First,
		Message: fmt.Sprintf(msg, args...),
	})
}
