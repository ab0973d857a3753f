// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonc_test

import (
	"testing"

	"github.com/creachadair/jsonc"
	"github.com/google/go-cmp/cmp"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 \ufffd"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
	}
	for _, test := range tests {
		got := jsonc.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},                        // missing quotes
		{`"missing quote`, ``, true},          // missing quotes
		{`missing quote"`, ``, true},          // missing quotes
		{`""`, ``, false},                     // ok
		{`"ok go"`, "ok go", false},           // ok
		{`"abc\ndef"`, "abc\ndef", false},     // C escapes
		{`"\tabc\n"`, "\tabc\n", false},       // C escapes
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false}, // C escapes
		{`"a \u0026 b"`, "a & b", false},      // short Unicode escape
		{`"\u"`, ``, true},                    // incomplete Unicode escape
		{`"\u00"`, ``, true},                  // incomplete Unicode escape
		{`"\u00x9"`, "\ufffd", false},         // invalid Unicode escape
		{`"\u019 "`, "\ufffd", false},         // invalid Unicode escape
		{`"a\"b"`, `a"b`, false},              // ok
		{`"a\\b\\cd"`, `a\b\cd`, false},       // ok

		// Surrogate pairs fold into a single rune; unpaired halves decode to
		// the replacement rune.
		{`"\ud83d\ude03"`, "\U0001f603", false},
		{`"\ud83d"`, "\ufffd", false},
		{`"\ude03 x"`, "\ufffd x", false},
	}

	for _, test := range tests {
		got, err := jsonc.Unquote([]byte(test.input))
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if err == nil && test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if cmp := string(got); cmp != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, cmp, test.want)
		}
	}
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{`"a b"`, "a b", false},           // double quoted
		{`'a b'`, "a b", false},           // single quoted
		{`'don\'t'`, "don't", false},      // single quoted with escape
		{`'say "hi"'`, `say "hi"`, false}, // double quotes inside single
		{`word`, "word", false},           // bare word denotes itself
		{`$tag_9`, "$tag_9", false},       // bare word denotes itself
		{``, "", false},                   // empty is an empty word
		{`"open`, "", true},               // stray quote
		{`ab"cd`, "", true},               // stray quote
	}
	for _, test := range tests {
		got, err := jsonc.DecodeString(test.input)
		if err != nil && !test.fail {
			t.Errorf("DecodeString(%#q): got %v, want no error", test.input, err)
		} else if err == nil && test.fail {
			t.Errorf("DecodeString(%#q): got nil, want error", test.input)
		}
		if got != test.want {
			t.Errorf("DecodeString(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestDecodeNumber(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"0", int64(0)},
		{"-15", int64(-15)},
		{"+15", int64(15)},
		{"9223372036854775807", int64(9223372036854775807)},
		{"2.5", 2.5},
		{"-0.001e-2", -0.00001},
		{"5e+9", 5e9},
		{"0x1F", int64(31)},
		{"-0x0a", int64(-10)},
		{"0XBEEF", int64(0xbeef)},

		// Integers that overflow int64 fall back to float64, and values
		// beyond double precision keep their text.
		{"9223372036854775808", 9.223372036854776e18},
		{"1e999", "1e999"},
		{"0xffffffffffffffffff", "0xffffffffffffffffff"},
	}
	for _, test := range tests {
		got := jsonc.DecodeNumber(test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("DecodeNumber(%#q): (-want, +got)\n%s", test.input, diff)
		}
	}
}
