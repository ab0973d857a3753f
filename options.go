// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsonc

// Options is the set of grammar extensions a scanner or parser will accept
// beyond standard JSON. The zero value accepts standard JSON only.
//
// Entry points whose name does not end in "Strict" treat a nil *Options as
// [AllExtensions]. To enable only some extensions, pass a pointer to an
// Options with just those fields set, for example
// &jsonc.Options{AllowComments: true}.
type Options struct {
	// Permit line ("// ...") and block ("/* ... */") comments.
	AllowComments bool

	// Permit a comma after the last member of an object or element of an
	// array.
	AllowTrailingCommas bool

	// Permit adjacent members or elements with no separating comma.
	AllowMissingCommas bool

	// Permit string literals quoted with "'" as well as with '"'.
	AllowSingleQuoted bool

	// Permit hexadecimal integer literals such as 0x1f.
	AllowHexNumbers bool

	// Permit a leading "+" sign on numbers.
	AllowUnaryPlus bool

	// Permit bare words as object property names.
	AllowLooseNames bool
}

// AllExtensions returns an Options with every extension enabled. This is the
// default for non-strict entry points given a nil *Options.
func AllExtensions() *Options {
	return &Options{
		AllowComments:       true,
		AllowTrailingCommas: true,
		AllowMissingCommas:  true,
		AllowSingleQuoted:   true,
		AllowHexNumbers:     true,
		AllowUnaryPlus:      true,
		AllowLooseNames:     true,
	}
}

// allow returns o, or a zero Options if o == nil, so that option lookups are
// nil-safe.
func (o *Options) allow() *Options {
	if o == nil {
		return &Options{}
	}
	return o
}

// orAll returns o if it is non-nil, otherwise AllExtensions.
func (o *Options) orAll() *Options {
	if o == nil {
		return AllExtensions()
	}
	return o
}
