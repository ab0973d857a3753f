// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonc

import (
	"fmt"
	"io"
)

// A Field is a single key-value property of an Obj.
type Field struct {
	Key   string
	Value any
}

// An Obj is the host representation of a JSON object: an ordered sequence of
// fields in their order of appearance in the source. Unlike a Go map, an Obj
// preserves member order and permits duplicate keys.
type Obj []Field

// Find returns the value of the first field of o with the given key, and
// reports whether such a field exists.
func (o Obj) Find(key string) (any, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Len reports the number of fields in o.
func (o Obj) Len() int { return len(o) }

// ParseToValue parses a single document from r directly into host values,
// without constructing a syntax tree. Objects become Obj values, arrays
// []any, strings are decoded, numbers follow [DecodeNumber], and the
// constants become bool and nil. An empty document yields nil with no error.
//
// A nil *Options is treated as AllExtensions. In case of a syntax error the
// returned error has type [*SyntaxError].
func ParseToValue(r io.Reader, o *Options) (any, error) {
	return parseToValue(r, o.orAll())
}

// ParseToValueStrict is ParseToValue restricted to standard JSON.
func ParseToValueStrict(r io.Reader) (any, error) {
	return parseToValue(r, &Options{})
}

func parseToValue(r io.Reader, o *Options) (any, error) {
	st := NewStream(r)
	st.SetOptions(o)
	h := &valueHandler{}
	if err := st.ParseOne(h); err == io.EOF {
		return nil, nil // empty document
	} else if err != nil {
		return nil, err
	}

	// Only one top-level value is permitted.
	if err := st.ParseOne(noMoreInput{}); err != io.EOF {
		loc := st.s.Location()
		return nil, &SyntaxError{
			Offset:  loc.Pos,
			Pos:     loc.First,
			Message: "unexpected input after value",
			err:     err,
		}
	}
	return h.top(), nil
}

// A valueHandler is a Handler that builds host values on a stack as the
// parse proceeds. When parsing of a single value is complete, the stack
// contains exactly that value.
type valueHandler struct {
	stk []any
}

// Markers pushed on the handler stack for incomplete containers.
type objFrame struct{ fields Obj }
type arrFrame struct{}
type memberFrame struct{ key string }

func (v *valueHandler) push(x any) { v.stk = append(v.stk, x) }
func (v *valueHandler) top() any   { return v.stk[len(v.stk)-1] }

func (v *valueHandler) pop() any {
	x := v.stk[len(v.stk)-1]
	v.stk = v.stk[:len(v.stk)-1]
	return x
}

func (v *valueHandler) BeginObject(loc Anchor) error { v.push(&objFrame{fields: Obj{}}); return nil }

func (v *valueHandler) EndObject(loc Anchor) error {
	f := v.pop().(*objFrame)
	v.push(f.fields)
	return nil
}

func (v *valueHandler) BeginArray(loc Anchor) error { v.push(arrFrame{}); return nil }

func (v *valueHandler) EndArray(loc Anchor) error {
	var i int
	for i = len(v.stk) - 1; ; i-- {
		if _, ok := v.stk[i].(arrFrame); ok {
			break
		}
	}
	elts := make([]any, len(v.stk)-i-1)
	copy(elts, v.stk[i+1:])
	v.stk = v.stk[:i]
	v.push(elts)
	return nil
}

func (v *valueHandler) BeginMember(loc Anchor) error {
	key, err := DecodeString(string(loc.Text()))
	if err != nil {
		return fmt.Errorf("invalid member key: %w", err)
	}
	v.push(&memberFrame{key: key})
	return nil
}

func (v *valueHandler) EndMember(loc Anchor) error {
	val := v.pop()
	m := v.pop().(*memberFrame)
	f := v.stk[len(v.stk)-1].(*objFrame)
	f.fields = append(f.fields, Field{Key: m.key, Value: val})
	return nil
}

func (v *valueHandler) Value(loc Anchor) error {
	val, err := decodeValue(loc.Token(), string(loc.Text()))
	if err != nil {
		return err
	}
	v.push(val)
	return nil
}

func (v *valueHandler) EndOfInput(loc Anchor) {}

// decodeValue converts a scalar value token to its host representation.
func decodeValue(tok Token, text string) (any, error) {
	switch tok {
	case String:
		return DecodeString(text)
	case Integer, Number:
		return DecodeNumber(text), nil
	case True:
		return true, nil
	case False:
		return false, nil
	case Null:
		return nil, nil
	}
	return nil, fmt.Errorf("invalid value token %v", tok)
}

// noMoreInput is a Handler used to detect trailing input after a complete
// top-level value; any event other than end-of-input is an error.
type noMoreInput struct{}

var errExtraInput = fmt.Errorf("unexpected input after value")

func (noMoreInput) BeginObject(loc Anchor) error { return errExtraInput }
func (noMoreInput) EndObject(loc Anchor) error   { return errExtraInput }
func (noMoreInput) BeginArray(loc Anchor) error  { return errExtraInput }
func (noMoreInput) EndArray(loc Anchor) error    { return errExtraInput }
func (noMoreInput) BeginMember(loc Anchor) error { return errExtraInput }
func (noMoreInput) EndMember(loc Anchor) error   { return errExtraInput }
func (noMoreInput) Value(loc Anchor) error       { return errExtraInput }
func (noMoreInput) EndOfInput(loc Anchor)        {}
