// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jpath implements a minimal JSONPath-style pointer parser.
//
// Only simple pointer paths are supported: member lookups and array
// indexing. Wildcards, slices, recursive descent, filters, and scripts
// are not part of the grammar.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." WORD
  step = "[" INDEX "]"
  step = "[" "'" QTEXT "'" "]"

  WORD = RE `\w+`
 QTEXT = RE `([^']|\\')*`
 INDEX = RE `-?\d+`
*/

// An Expr is a parsed pointer expression.
type Expr []Step

// Parse parses s as a pointer expression.
func Parse(s string) (Expr, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, errors.New("missing root marker")
	}
	var steps Expr
	for t != "" {
		step, rest, err := parseStep(t)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
		t = rest
	}
	return steps, nil
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		switch s.Op {
		case Member:
			fmt.Fprintf(&buf, ".%s", s.Arg)
		case QName:
			fmt.Fprintf(&buf, "['%s']", s.Arg)
		default:
			fmt.Fprintf(&buf, "[%s]", s.Arg)
		}
	}
	return buf.String()
}

// Path converts e into a sequence of traversal elements: a string for each
// member lookup and an int for each index.
func (e Expr) Path() []any {
	out := make([]any, len(e))
	for i, s := range e {
		switch s.Op {
		case Member, QName:
			out[i] = s.Arg
		case Index:
			n, _ := strconv.Atoi(s.Arg)
			out[i] = n
		}
	}
	return out
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "."); ok {
		if m := wordRE.FindStringSubmatch(t); m != nil {
			return Step{Op: Member, Arg: m[1]}, t[len(m[0]):], nil
		}
		return Step{}, s, errors.New("invalid .name")
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		var out Step
		if m := indexRE.FindStringSubmatch(t); m != nil {
			out = Step{Op: Index, Arg: m[1]}
			t = t[len(m[0]):]
		} else if m := quoteRE.FindStringSubmatch(t); m != nil {
			out = Step{Op: QName, Arg: m[1]}
			t = t[len(m[0]):]
		} else {
			return Step{}, s, fmt.Errorf("invalid value: %q", t)
		}
		u, ok := strings.CutPrefix(t, "]")
		if !ok {
			return Step{}, t, errors.New("missing close bracket")
		}
		return out, u, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^(-?\d+)`)
	quoteRE = regexp.MustCompile(`^'([^\']*)'`)
)

// An Op is a path operator.
type Op byte

const (
	Invalid Op = iota // invalid operator
	Member            // member lookup (.)
	Index             // array index lookup
	QName             // quoted name lookup
)

var opText = map[Op]string{
	Invalid: "invalid",
	Member:  ".",
	Index:   "index",
	QName:   "qname",
}

func (o Op) String() string {
	if s, ok := opText[o]; ok {
		return s
	}
	return opText[Invalid]
}

// A Step is a single step of a pointer expression.
type Step struct {
	Op  Op
	Arg string
}
