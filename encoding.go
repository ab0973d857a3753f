// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonc

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/jsonc/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return `"` + string(escape.Quote(mem.S(src))) + `"` }

// Unquote decodes a double-quoted JSON string value. The quotation marks are
// removed, and escape sequences are replaced with their unescaped
// equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src []byte) ([]byte, error) {
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.B(src[1 : len(src)-1]))
}

// DecodeString decodes the text of a string or word token into the string it
// denotes. Single- and double-quoted literals are unquoted; a bare word
// denotes itself.
func DecodeString(text string) (string, error) {
	if len(text) >= 2 {
		if q := text[0]; (q == '"' || q == '\'') && text[len(text)-1] == q {
			dec, err := escape.Unquote(mem.S(text[1 : len(text)-1]))
			if err != nil {
				return "", err
			}
			return string(dec), nil
		}
	}
	if strings.ContainsAny(text, `"'`) {
		return "", errors.New("unbalanced quotations")
	}
	return text, nil
}

// DecodeNumber converts the text of a number literal to a host value: an
// int64 if the literal is integral and its value fits, otherwise a float64
// if the value is finite in double precision, otherwise the literal text
// itself (for values that cannot be represented).
func DecodeNumber(text string) any {
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return v
	}
	if body, neg, ok := hexLiteral(text); ok {
		if v, err := strconv.ParseUint(body, 16, 64); err == nil && v <= math.MaxInt64 {
			if neg {
				return -int64(v)
			}
			return int64(v)
		}
		return text
	}
	if f, err := strconv.ParseFloat(strings.TrimPrefix(text, "+"), 64); err == nil && !math.IsInf(f, 0) {
		return f
	}
	return text
}

// hexLiteral reports whether text is a hexadecimal integer literal with an
// optional sign, and if so returns its digits and the sign.
func hexLiteral(text string) (body string, neg, ok bool) {
	u := text
	if strings.HasPrefix(u, "-") {
		neg, u = true, u[1:]
	} else {
		u = strings.TrimPrefix(u, "+")
	}
	if len(u) > 2 && (u[:2] == "0x" || u[:2] == "0X") {
		return u[2:], neg, true
	}
	return "", false, false
}
