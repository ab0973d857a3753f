// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/jsonc"
	"github.com/google/go-cmp/cmp"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []jsonc.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", []jsonc.Token{jsonc.Whitespace}},
		{"\n\n  \n", []jsonc.Token{jsonc.Newline, jsonc.Newline, jsonc.Whitespace, jsonc.Newline}},
		{"\t  \r\n", []jsonc.Token{jsonc.Whitespace, jsonc.Newline}},

		// Constants
		{"true false null", []jsonc.Token{
			jsonc.True, jsonc.Whitespace, jsonc.False, jsonc.Whitespace, jsonc.Null,
		}},

		// Punctuation
		{"{[]},:", []jsonc.Token{
			jsonc.LBrace, jsonc.LSquare, jsonc.RSquare, jsonc.RBrace, jsonc.Comma, jsonc.Colon,
		}},

		// Strings
		{`"" "a b c"`, []jsonc.Token{jsonc.String, jsonc.Whitespace, jsonc.String}},
		{`"\"\\\/\b\f\n\r\t"`, []jsonc.Token{jsonc.String}},
		{`"π Ǽꪜ"`, []jsonc.Token{jsonc.String}},

		// Numbers
		{`0,-1,5139,2.3,5e+9,3.6E+4,-0.001E-100`, []jsonc.Token{
			jsonc.Integer, jsonc.Comma, jsonc.Integer, jsonc.Comma, jsonc.Integer, jsonc.Comma,
			jsonc.Number, jsonc.Comma, jsonc.Number, jsonc.Comma, jsonc.Number, jsonc.Comma,
			jsonc.Number,
		}},

		// Mixed types
		{`{true,"false":-15,null,[]}`, []jsonc.Token{
			jsonc.LBrace, jsonc.True, jsonc.Comma, jsonc.String, jsonc.Colon,
			jsonc.Integer, jsonc.Comma, jsonc.Null, jsonc.Comma,
			jsonc.LSquare, jsonc.RSquare, jsonc.RBrace,
		}},
		{"\"a\",1\nfalse[\"b\"]", []jsonc.Token{
			jsonc.String, jsonc.Comma, jsonc.Integer, jsonc.Newline,
			jsonc.False, jsonc.LSquare, jsonc.String, jsonc.RSquare,
		}},
	}

	for _, test := range tests {
		var got []jsonc.Token
		s := jsonc.NewScanner(strings.NewReader(test.input))
		for s.Next() {
			got = append(got, s.Token())
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

// The token stream must partition the input exactly, trivia included.
func TestScanner_losslessText(t *testing.T) {
	const input = "  {\r\n\t\"a\": 0x1F, // howdy\n\t'b c': +2.5,\n}\n"

	s := jsonc.NewScanner(strings.NewReader(input))
	s.SetOptions(jsonc.AllExtensions())
	var sb strings.Builder
	for s.Next() {
		sb.Write(s.Text())
	}
	if s.Err() != nil {
		t.Fatalf("Next failed: %v", s.Err())
	}
	if got := sb.String(); got != input {
		t.Errorf("Concatenated tokens: got %#q, want %#q", got, input)
	}
}

func TestScanner_withComments(t *testing.T) {
	tests := []struct {
		input string
		want  []jsonc.Token
		coms  []string
	}{
		{"/* block comment */", []jsonc.Token{jsonc.BlockComment},
			[]string{"/* block comment */"}},

		// N.B. The terminating newline is a separate token, not part of the
		// comment text.
		{"// line 1\n// line 2", []jsonc.Token{
			jsonc.LineComment, jsonc.Newline, jsonc.LineComment,
		}, []string{"// line 1", "// line 2"}},

		{"// line at EOF", []jsonc.Token{jsonc.LineComment},
			[]string{"// line at EOF"}},

		{"/* x */\n{\n}//foo", []jsonc.Token{
			jsonc.BlockComment, jsonc.Newline, jsonc.LBrace, jsonc.Newline,
			jsonc.RBrace, jsonc.LineComment,
		}, []string{
			"/* x */", "//foo",
		}},

		{"/**\n*/", []jsonc.Token{jsonc.BlockComment}, []string{"/**\n*/"}},

		{`/**/"foo"/***/"bar"/****/"baz"/*****/false/*x*/null`, []jsonc.Token{
			jsonc.BlockComment, jsonc.String,
			jsonc.BlockComment, jsonc.String,
			jsonc.BlockComment, jsonc.String,
			jsonc.BlockComment, jsonc.False,
			jsonc.BlockComment, jsonc.Null,
		}, []string{
			"/**/", "/***/", "/****/", "/*****/", "/*x*/",
		}},
	}

	for _, test := range tests {
		var got []jsonc.Token
		var coms []string
		s := jsonc.NewScanner(strings.NewReader(test.input))
		s.AllowComments(true)
		for s.Next() {
			got = append(got, s.Token())
			if tok := s.Token(); tok == jsonc.LineComment || tok == jsonc.BlockComment {
				coms = append(coms, string(s.Text()))
			}
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
		if diff := cmp.Diff(test.coms, coms); diff != "" {
			t.Errorf("Input: %#q\nComments: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScanner_extensions(t *testing.T) {
	scanAll := func(t *testing.T, input string, opts *jsonc.Options) ([]jsonc.Token, error) {
		t.Helper()
		s := jsonc.NewScanner(strings.NewReader(input))
		s.SetOptions(opts)
		var got []jsonc.Token
		for s.Next() {
			got = append(got, s.Token())
		}
		return got, s.Err()
	}
	checkTokens := func(t *testing.T, input string, opts *jsonc.Options, want ...jsonc.Token) {
		t.Helper()
		got, err := scanAll(t, input, opts)
		if err != nil {
			t.Errorf("Input: %#q: unexpected error: %v", input, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", input, diff)
		}
	}
	checkFails := func(t *testing.T, input string, opts *jsonc.Options) {
		t.Helper()
		if _, err := scanAll(t, input, opts); err == nil {
			t.Errorf("Input: %#q: got no error, wanted one", input)
		}
	}

	t.Run("SingleQuoted", func(t *testing.T) {
		opts := &jsonc.Options{AllowSingleQuoted: true}
		checkTokens(t, `'a b'`, opts, jsonc.String)
		checkTokens(t, `'a\'b'`, opts, jsonc.String)
		checkTokens(t, `'say "hi"'`, opts, jsonc.String)
		checkFails(t, `'a b'`, nil)
	})
	t.Run("HexNumbers", func(t *testing.T) {
		opts := &jsonc.Options{AllowHexNumbers: true}
		checkTokens(t, `0x1F,-0x0a,0XBEEF`, opts,
			jsonc.Integer, jsonc.Comma, jsonc.Integer, jsonc.Comma, jsonc.Integer)
		checkFails(t, `0x`, opts)
		checkFails(t, `0x1F`, nil)
	})
	t.Run("UnaryPlus", func(t *testing.T) {
		opts := &jsonc.Options{AllowUnaryPlus: true}
		checkTokens(t, `+5,+2.5e3`, opts,
			jsonc.Integer, jsonc.Comma, jsonc.Number)
		checkFails(t, `+5`, nil)
		checkFails(t, `+`, opts)
	})
	t.Run("Words", func(t *testing.T) {
		opts := &jsonc.Options{AllowLooseNames: true}
		checkTokens(t, `foo_bar,$x,_9`, opts,
			jsonc.Word, jsonc.Comma, jsonc.Word, jsonc.Comma, jsonc.Word)
		checkTokens(t, `true,truthy`, opts,
			jsonc.True, jsonc.Comma, jsonc.Word)
		checkFails(t, `foo_bar`, nil)
	})
}

func TestScanner_errors(t *testing.T) {
	tests := []struct {
		input string
		opts  *jsonc.Options
		etext string
	}{
		{`tru`, nil, "unknown constant"},
		{`"abc`, nil, "unterminated string"},
		{`"a\qb"`, nil, "after escape"},
		{"\"a\nb\"", jsonc.AllExtensions(), "unescaped line break"},
		{`"\u00x9"`, nil, "invalid Unicode escape"},
		{`01`, nil, "extra leading zeroes"},
		{`1.`, nil, "no digits after decimal point"},
		{`1e+`, nil, "missing exponent digits"},
		{`@`, nil, "unexpected"},
		{`// no comments`, nil, "unexpected"},
		{`/x`, jsonc.AllExtensions(), "in comment"},
		{`/* open`, jsonc.AllExtensions(), "unterminated block comment"},
	}
	for _, test := range tests {
		s := jsonc.NewScanner(strings.NewReader(test.input))
		s.SetOptions(test.opts)
		for s.Next() {
		}
		err := s.Err()
		if err == nil {
			t.Errorf("Input: %#q: got no error, wanted %q", test.input, test.etext)
			continue
		}
		var serr *jsonc.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Input: %#q: error %v is not a *SyntaxError", test.input, err)
		}
		if !strings.Contains(err.Error(), test.etext) {
			t.Errorf("Input: %#q: got error %v, wanted %q", test.input, err, test.etext)
		}
	}
}

func TestScanner_decodeAs(t *testing.T) {
	mustScan := func(t *testing.T, input string, want jsonc.Token) *jsonc.Scanner {
		t.Helper()
		s := jsonc.NewScanner(strings.NewReader(input))
		if !s.Next() {
			t.Fatalf("Next failed: %v", s.Err())
		} else if s.Token() != want {
			t.Fatalf("Next token: got %v, want %v", s.Token(), want)
		}
		return s
	}

	t.Run("Integer", func(t *testing.T) {
		mustScan(t, `-15`, jsonc.Integer)
	})
	t.Run("Number", func(t *testing.T) {
		mustScan(t, `3.25e-5`, jsonc.Number)
	})
	t.Run("Constants", func(t *testing.T) {
		mustScan(t, `true`, jsonc.True)
		mustScan(t, `false`, jsonc.False)
		mustScan(t, `null`, jsonc.Null)
	})
	t.Run("String", func(t *testing.T) {
		const wantText = `"a\tb c\n"` // as written, with quotes
		const wantDec = "a\tb c\n"   // with escapes undone
		s := mustScan(t, `"a\tb c\n"`, jsonc.String)
		text := s.Text()
		if got := string(text); got != wantText {
			t.Errorf("Text: got %#q, want %#q", got, wantText)
		}
		if u, err := jsonc.Unquote(text); err != nil {
			t.Errorf("Unquote failed: %v", err)
		} else if got := string(u); got != wantDec {
			t.Errorf("Unquote: got %#q, want %#q", got, wantDec)
		}
	})
}

func TestScannerLoc(t *testing.T) {
	type tokPos struct {
		Tok jsonc.Token
		Pos string
	}
	tests := []struct {
		input string
		want  []tokPos
	}{
		{"", nil},
		{"{ }", []tokPos{
			{jsonc.LBrace, "1:0-1"}, {jsonc.Whitespace, "1:1-2"}, {jsonc.RBrace, "1:2-3"},
		}},
		{`"foo" // bar`, []tokPos{
			{jsonc.String, "1:0-5"}, {jsonc.Whitespace, "1:5-6"}, {jsonc.LineComment, "1:6-12"},
		}},
		{"/* abc */", []tokPos{{jsonc.BlockComment, "1:0-9"}}},
		{"/* ok\n*/\nnull", []tokPos{
			{jsonc.BlockComment, "1:0-2:2"}, {jsonc.Newline, "2:2-3:0"}, {jsonc.Null, "3:0-4"},
		}},
		{"[1,/*x*/2\n]", []tokPos{
			{jsonc.LSquare, "1:0-1"}, {jsonc.Integer, "1:1-2"}, {jsonc.Comma, "1:2-3"},
			{jsonc.BlockComment, "1:3-8"}, {jsonc.Integer, "1:8-9"},
			{jsonc.Newline, "1:9-2:0"}, {jsonc.RSquare, "2:0-1"},
		}},
	}
	for _, tc := range tests {
		var got []tokPos
		s := jsonc.NewScanner(strings.NewReader(tc.input))
		s.AllowComments(true)
		for s.Next() {
			got = append(got, tokPos{s.Token(), s.Location().String()})
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", tc.input, diff)
		}
	}
}
