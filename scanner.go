// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"go4.org/mem"
)

// Token is the type of a lexical token in the JSONC grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Integer              // number: integer with no fraction or exponent
	Number               // number with fraction and/or exponent
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
	Word                 // bare word (loose object property name)

	BlockComment // comment: /* ... */
	LineComment  // comment: // ... to end of line

	Whitespace // run of spaces and tabs
	Newline    // line terminator: "\n" or "\r\n"

	// Do not modify the order of these constants without updating the
	// self-delimiting token check below.
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Integer: "integer",
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
	Word:    "word",

	BlockComment: "block comment",
	LineComment:  "line comment",

	Whitespace: "whitespace",
	Newline:    "newline",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Scanner reads lexical tokens from an input stream.  Each call to Next
// advances the scanner to the next token, or reports an error.
//
// Unlike a plain JSON tokenizer, the scanner reports whitespace, newlines,
// and comments as tokens in their own right, so that a consumer can
// reconstruct the input text exactly. The sequence "\r\n" and a bare "\n"
// are each a single Newline token; a carriage return not followed by a
// newline is classified as Whitespace.
type Scanner struct {
	r        *bufio.Reader
	comments bool // allow comments
	squote   bool // allow single-quoted strings
	hex      bool // allow hexadecimal integers
	plus     bool // allow a leading "+" on numbers
	words    bool // allow bare words

	buf  bytes.Buffer // current token
	tbuf [][]byte     // allocation pool
	tok  Token
	err  error

	pos, end int  // start and end offsets of current token
	last     int  // size in bytes of last-read input rune
	lastNL   bool // whether the last-read input rune was a newline

	// Apparent line and column offsets (0-based)
	pline, pcol int
	eline, ecol int
}

// NewScanner constructs a new lexical scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br}
}

// AllowComments configures the scanner to report (true) or reject (false)
// comment tokens. If enabled, C++ style block comments (/* ... */) and line
// comments (// ...) are recognized and emitted as tokens. A line comment does
// not include its terminating newline; the newline is reported separately.
func (s *Scanner) AllowComments(ok bool) { s.comments = ok }

// AllowSingleQuoted configures the scanner to accept (true) or reject (false)
// single-quoted string literals ('...').
func (s *Scanner) AllowSingleQuoted(ok bool) { s.squote = ok }

// AllowHexNumbers configures the scanner to accept (true) or reject (false)
// hexadecimal integer literals (0x1f).
func (s *Scanner) AllowHexNumbers(ok bool) { s.hex = ok }

// AllowUnaryPlus configures the scanner to accept (true) or reject (false)
// a leading "+" sign on numbers.
func (s *Scanner) AllowUnaryPlus(ok bool) { s.plus = ok }

// AllowWords configures the scanner to accept (true) or reject (false) bare
// words (identifiers) other than the constants true, false, and null.
// The parser restricts where such words may legally appear.
func (s *Scanner) AllowWords(ok bool) { s.words = ok }

// SetOptions applies all the lexical settings of o at once. A nil *Options
// behaves as a zero Options.
func (s *Scanner) SetOptions(o *Options) {
	s.comments = o.allow().AllowComments
	s.squote = o.allow().AllowSingleQuoted
	s.hex = o.allow().AllowHexNumbers
	s.plus = o.allow().AllowUnaryPlus
	s.words = o.allow().AllowLooseNames
}

// Next advances s to the next token of the input. It returns false when no
// further tokens are available, either because the input is exhausted or
// because an error occurred. After Next returns false, Err reports the
// reason; Err returns nil at a clean end of input.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	s.buf.Reset()
	s.tok = Invalid
	s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol

	ch, err := s.rune()
	if err == io.EOF {
		s.err = err
		return false
	} else if err != nil {
		s.fail(err)
		return false
	}

	switch {
	case ch == ' ' || ch == '\t':
		err = s.scanSpace(ch)
	case ch == '\n':
		s.buf.WriteRune(ch)
		s.tok = Newline
	case ch == '\r':
		err = s.scanCR()
	case ch == '"':
		err = s.scanString(ch)
	case ch == '\'':
		if s.squote {
			err = s.scanString(ch)
		} else {
			err = s.failf("unexpected %q", ch)
		}
	case ch == '/':
		if s.comments {
			err = s.scanComment(ch)
		} else {
			err = s.failf("unexpected %q", ch)
		}
	case ch == '+':
		if s.plus {
			err = s.scanNumber(ch)
		} else {
			err = s.failf("unexpected %q", ch)
		}
	case ch == '-' || isDigit(ch):
		err = s.scanNumber(ch)
	case isWordStart(ch):
		err = s.scanWord(ch)
	default:
		if t, ok := selfDelim(ch); ok {
			s.buf.WriteRune(ch)
			s.tok = t
		} else {
			err = s.failf("unexpected %q", ch)
		}
	}
	return err == nil
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the error that terminated scanning, or nil if the input was
// fully consumed without error.
func (s *Scanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Text returns the undecoded text of the current token.  The return value is
// only valid until the next call of Next. The caller must copy the contents of
// the returned slice if it is needed beyond that.
func (s *Scanner) Text() []byte { return s.buf.Bytes() }

// Copy returns a copy of the undecoded text of the current token.
func (s *Scanner) Copy() []byte { return s.copyOf(s.buf.Bytes()) }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: LineCol{Line: s.pline + 1, Column: s.pcol},
		Last:  LineCol{Line: s.eline + 1, Column: s.ecol},
	}
}

func (s *Scanner) scanSpace(first rune) error {
	s.buf.WriteRune(first)
	_, _, err := s.readWhile(isInlineSpace)
	if err != nil && err != io.EOF {
		return s.fail(err)
	} else if err == nil {
		s.unrune()
	}
	s.tok = Whitespace
	return nil
}

// scanCR classifies a carriage return: paired with a following "\n" it forms
// a single Newline token, otherwise it stands alone as Whitespace.
func (s *Scanner) scanCR() error {
	s.buf.WriteRune('\r')
	ch, err := s.rune()
	if err == nil && ch == '\n' {
		s.buf.WriteRune(ch)
		s.tok = Newline
		return nil
	} else if err == nil {
		s.unrune()
	} else if err != io.EOF {
		return s.fail(err)
	}
	s.tok = Whitespace
	return nil
}

func (s *Scanner) scanString(open rune) error {
	s.buf.WriteRune(open)
	var esc bool
	for {
		ch, err := s.rune()
		if err != nil {
			return s.failf("unterminated string: %w", err)
		} else if ch == open && !esc {
			s.buf.WriteRune(ch)
			s.tok = String
			return nil
		}
		if esc {
			// We are awaiting the completion of a \-escape.
			switch ch {
			case '"', '\'', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.buf.WriteByte(byte(ch))
			case 'u':
				s.buf.WriteByte(byte(ch))
				if err := s.readHex4(); err != nil {
					return s.failf("invalid Unicode escape: %w", err)
				}
			default:
				return s.failf("invalid %q after escape", ch)
			}
			esc = false
		} else if ch == '\n' || ch == '\r' {
			return s.failf("unescaped line break in string")
		} else if ch < ' ' {
			return s.failf("unescaped control %q", ch)
		} else if ch > unicode.MaxRune {
			return s.failf("invalid Unicode rune %q", ch)
		} else {
			s.buf.WriteRune(ch)
			esc = ch == '\\'
		}
	}
}

func (s *Scanner) scanNumber(start rune) error {
	s.buf.WriteRune(start)

	first := start
	if start == '-' || start == '+' {
		// If there is a leading sign, we need at least one digit.
		// Otherwise, we already have one in start.
		ch, err := s.require(isDigit, "digit")
		if err != nil {
			return err
		}
		s.buf.WriteRune(ch)
		first = ch
	}

	// Check for a hexadecimal literal: 0x or 0X followed by hex digits.
	if first == '0' && s.hex {
		ch, err := s.rune()
		if err == nil && (ch == 'x' || ch == 'X') {
			s.buf.WriteRune(ch)
			return s.scanHexDigits()
		} else if err == nil {
			s.unrune()
		} else if err != io.EOF {
			return s.fail(err)
		}
	}

	// Consume the remainder of an integer.
	_, ch, err := s.readWhile(isDigit)
	if err != nil {
		if err == io.EOF {
			if hasExtraLeadingZeroes(s.buf.Bytes()) {
				return s.failf("extra leading zeroes")
			}
			s.tok = Integer
			return nil
		}
		return err
	}

	// Check for extra leading zeroes, which are disallowed by the JSON spec.
	// That is: 0.12 is OK, 01.2 is not.
	if hasExtraLeadingZeroes(s.buf.Bytes()) {
		return s.failf("extra leading zeroes")
	}

	// If a decimal point follows, consume a fractional part.
	var isFloat bool
	if ch == '.' {
		s.buf.WriteRune(ch)
		var nr int
		nr, ch, err = s.readWhile(isDigit)
		if err != nil && err != io.EOF {
			return s.fail(err)
		} else if nr == 0 {
			return s.failf("no digits after decimal point")
		}
		s.tok = Number
		isFloat = true
		if err == io.EOF {
			return nil
		}
	}

	// If an exponent follows, consume it.
	if ch != 'E' && ch != 'e' {
		s.unrune()
		if isFloat {
			s.tok = Number
		} else {
			s.tok = Integer
		}
		return nil
	}

	s.buf.WriteRune(ch)
	ch, err = s.require(isExpStart, "sign or digit")
	if err != nil {
		return err
	}
	s.buf.WriteRune(ch)
	nr, _, err := s.readWhile(isDigit)
	if nr == 0 && (ch == '-' || ch == '+') {
		// It's OK to have no digits if the previous rune was not a sign,
		// otherwise we have to have at least one.
		return s.failf("missing exponent digits")
	} else if err == io.EOF {
		s.tok = Number
		return nil
	} else if err != nil {
		return s.fail(err)
	}
	s.unrune()
	s.tok = Number
	return nil
}

func (s *Scanner) scanHexDigits() error {
	nr, _, err := s.readWhile(isHexDigit)
	if nr == 0 {
		return s.failf("missing hex digits")
	} else if err == io.EOF {
		s.tok = Integer
		return nil
	} else if err != nil {
		return s.fail(err)
	}
	s.unrune()
	s.tok = Integer
	return nil
}

func (s *Scanner) scanComment(first rune) error {
	s.buf.WriteRune(first)
	ch, err := s.rune()
	if err != nil {
		return s.failf("invalid comment: %w", err)
	}
	switch ch {
	case '/': // line comment, not including the line terminator
		s.buf.WriteRune(ch)
		if _, _, err := s.readWhile(isNotEOL); err == nil {
			s.unrune()
		} else if err != io.EOF {
			return s.fail(err)
		}
		s.tok = LineComment
		return nil

	case '*': // block comment
		s.buf.WriteRune(ch)
		for {
			_, end, err := s.readWhile(isNotStar)
			if err != nil {
				return s.failf("unterminated block comment: %w", err)
			}
			s.buf.WriteRune(end) // end == '*'

			// Check whether we have "*/", which would end the comment.
			next, err := s.rune()
			if err != nil {
				return s.failf("unterminated block comment: %w", err)
			}
			s.buf.WriteRune(next)
			if next == '/' {
				s.tok = BlockComment
				return nil
			}

			// We saw "*" but not "/", so keep scanning for the end of the block.
		}

	default:
		s.unrune()
		return s.failf("invalid %q in comment", ch)
	}
}

func (s *Scanner) scanWord(first rune) error {
	s.buf.WriteRune(first)
	_, _, err := s.readWhile(isWordRune)
	if err != nil && err != io.EOF {
		return s.fail(err)
	} else if err == nil {
		s.unrune()
	}
	got := mem.B(s.buf.Bytes())
	switch {
	case got.Equal(mem.S("true")):
		s.tok = True
	case got.Equal(mem.S("false")):
		s.tok = False
	case got.Equal(mem.S("null")):
		s.tok = Null
	case s.words:
		s.tok = Word
	default:
		return s.failf("unknown constant %q", got.StringCopy())
	}
	return nil
}

func (s *Scanner) rune() (rune, error) {
	ch, nb, err := s.r.ReadRune()
	s.last = nb
	s.end += nb
	if s.lastNL = ch == '\n'; s.lastNL {
		s.eline++
		s.ecol = 0
	} else {
		s.ecol += nb
	}
	return ch, err
}

func (s *Scanner) unrune() {
	s.end -= s.last
	if s.lastNL {
		// The column prior to the newline is recomputed when the newline is
		// re-read; only the line number needs to be restored.
		s.eline--
	} else {
		s.ecol -= s.last
	}
	s.last = 0
	s.lastNL = false
	s.r.UnreadRune()
}

// require reads a single rune matching f from the input, or returns an error
// mentioning the desired label.
func (s *Scanner) require(f func(rune) bool, label string) (rune, error) {
	ch, err := s.rune()
	if err != nil {
		return 0, s.failf("want %s, got error: %w", label, err)
	} else if !f(ch) {
		s.unrune()
		return 0, s.failf("got %q, want %s", ch, label)
	}
	return ch, nil
}

// readWhile consumes runes matching f from the input until EOF or until a rune
// not matching f is found. The first non-matching rune (if any) is returned.
// It is the caller's responsibility to unread this rune, if desired.
// The int reports the number of runes consumed.
func (s *Scanner) readWhile(f func(rune) bool) (int, rune, error) {
	var nr int
	for {
		ch, err := s.rune()
		if err != nil {
			return nr, 0, err
		} else if !f(ch) {
			return nr, ch, nil
		}
		s.buf.WriteRune(ch)
		nr++
	}
}

// readHex4 reads exactly 4 hexadecimal digits from the input.
func (s *Scanner) readHex4() error {
	for i := 0; i < 4; i++ {
		ch, err := s.rune()
		if err != nil {
			return err
		} else if !isHexDigit(ch) {
			return fmt.Errorf("not a hex digit: %q", ch)
		}
		s.buf.WriteRune(ch)
	}
	return nil
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

func (s *Scanner) fail(err error) error {
	return s.setErr(&SyntaxError{
		Offset:  s.end,
		Pos:     LineCol{Line: s.eline + 1, Column: s.ecol},
		Message: err.Error(),
		err:     err,
	})
}

func (s *Scanner) failf(msg string, args ...any) error {
	return s.fail(fmt.Errorf(msg, args...))
}

func isInlineSpace(ch rune) bool { return ch == ' ' || ch == '\t' }
func isNotStar(ch rune) bool     { return ch != '*' }
func isNotEOL(ch rune) bool      { return ch != '\n' && ch != '\r' }
func isExpStart(ch rune) bool    { return ch == '-' || ch == '+' || isDigit(ch) }
func isDigit(ch rune) bool       { return '0' <= ch && ch <= '9' }

func isWordStart(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch)
}

func isWordRune(ch rune) bool {
	return isWordStart(ch) || unicode.IsDigit(ch)
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// hasExtraLeadingZeroes reports whether the representation of an integer in
// buf has redundant leading zeroes, disallowed by the grammar.
//
// OK: 0, 0.1, -1.0, -0.1 are all OK.
// Bad: -01, 01.2, -01.0, 00.1.
func hasExtraLeadingZeroes(buf []byte) bool {
	if buf[0] == '-' || buf[0] == '+' {
		buf = buf[1:] // skip leading sign
	}
	if buf[0] == '0' {
		// A leading zero is OK if it's the only digit.
		return len(buf) > 1
	}
	return false
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Token, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}

func (s *Scanner) copyOf(text []byte) []byte {
	const minBlockSlop = 4
	const smallSizeFraction = 16
	const bufBlockBytes = 16384

	// For values bigger than smallSizeFraction of the block size, don't bother
	// batching, make an outright copy.
	if len(text) >= bufBlockBytes/smallSizeFraction {
		return append([]byte(nil), text...)
	}

	// Look for a block with space enough to hold a copy of text.
	i := 0
	for i < len(s.tbuf) {
		if n := len(s.tbuf[i]) + len(text); n < cap(s.tbuf[i]) {
			// There is room in this block.
			break
		} else if cap(s.tbuf[i])-len(text) < minBlockSlop {
			// There is no room in this block, but it is nearly-enough full.
			// Allocate a fresh block at this location and release the old one.
			// The old block will be retained until all its tokens are released.
			s.tbuf[i] = make([]byte, 0, bufBlockBytes)
			break
		}
		i++
	}
	if i == len(s.tbuf) {
		// No block had room; add a new empty one to the arena.
		s.tbuf = append(s.tbuf, make([]byte, 0, bufBlockBytes))
	}
	p := len(s.tbuf[i])
	s.tbuf[i] = append(s.tbuf[i], text...)
	return s.tbuf[i][p : p+len(text)]
}
