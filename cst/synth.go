// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cst

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/creachadair/jsonc"
)

// Raw is a value argument holding well-formed JSONC source text to be
// inserted verbatim. Passing malformed text panics with the resulting
// *jsonc.SyntaxError.
type Raw string

// makeValueNode synthesizes a detached node for the host value v. New
// container lines are indented relative to base using the layout detected
// from root.
func makeValueNode(root *Root, v any, base string) Node {
	unit, nl := "  ", "\n"
	if root != nil {
		unit, nl = root.SingleIndentText(), root.NewlineKind()
	}
	return parseFragment(synthText(v, base, unit, nl))
}

// makeMember synthesizes a detached member with the given key and value.
// The key is always double-quoted, whatever the surrounding style.
func makeMember(root *Root, key string, v any, base string) *Member {
	m := &Member{}
	rawAppend(m, &StringLit{leaf{text: jsonc.Quote(key)}})
	rawAppend(m, newSyntax(":"))
	rawAppend(m, newWS(" "))
	rawAppend(m, makeValueNode(root, v, base))
	return m
}

// synthText renders v as source text. Accepted value types are nil, bool,
// int, int64, float64, string, []any, jsonc.Obj, map[string]any (keys
// sorted, since a Go map has no order; use jsonc.Obj to control order),
// and Raw. Any other type panics with a *jsonc.TypeError; a non-finite
// float panics with a *jsonc.ConversionError.
func synthText(v any, base, unit, nl string) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case Raw:
		return string(t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			panic(&jsonc.ConversionError{Message: fmt.Sprintf("cannot represent %v", t)})
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	case string:
		return jsonc.Quote(t)
	case jsonc.Obj:
		return synthObject(t, base, unit, nl)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make(jsonc.Obj, len(keys))
		for i, k := range keys {
			fields[i] = jsonc.Field{Key: k, Value: t[k]}
		}
		return synthObject(fields, base, unit, nl)
	case []any:
		return synthArray(t, base, unit, nl)
	}
	panic(&jsonc.TypeError{Message: fmt.Sprintf("cannot convert %T to a JSON value", v)})
}

// synthObject renders a non-empty object across multiple lines, one member
// per line, indented one unit past base.
func synthObject(fields jsonc.Obj, base, unit, nl string) string {
	if len(fields) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{")
	for i, f := range fields {
		sb.WriteString(nl)
		sb.WriteString(base + unit)
		sb.WriteString(jsonc.Quote(f.Key))
		sb.WriteString(": ")
		sb.WriteString(synthText(f.Value, base+unit, unit, nl))
		if i < len(fields)-1 {
			sb.WriteString(",")
		}
	}
	sb.WriteString(nl)
	sb.WriteString(base)
	sb.WriteString("}")
	return sb.String()
}

// synthArray renders an array on one line when every element is a scalar,
// and otherwise one element per line like an object.
func synthArray(elts []any, base, unit, nl string) string {
	if len(elts) == 0 {
		return "[]"
	}
	flat := true
	for _, e := range elts {
		switch e.(type) {
		case jsonc.Obj, map[string]any, []any:
			flat = false
		}
	}
	if flat {
		parts := make([]string, len(elts))
		for i, e := range elts {
			parts[i] = synthText(e, base, unit, nl)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}

	var sb strings.Builder
	sb.WriteString("[")
	for i, e := range elts {
		sb.WriteString(nl)
		sb.WriteString(base + unit)
		sb.WriteString(synthText(e, base+unit, unit, nl))
		if i < len(elts)-1 {
			sb.WriteString(",")
		}
	}
	sb.WriteString(nl)
	sb.WriteString(base)
	sb.WriteString("]")
	return sb.String()
}

// parseFragment parses synthesized or raw source text and extracts its
// value node, detached and ready to splice into a tree.
func parseFragment(text string) Node {
	root, err := ParseString(text, nil)
	if err != nil {
		panic(err.(*jsonc.SyntaxError))
	}
	v := firstSig(root)
	if v == nil {
		panic(&jsonc.TypeError{Message: "raw text holds no value"})
	}
	b := v.base()
	b.up, b.idx = nil, 0
	return v
}
