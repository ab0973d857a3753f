// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jsonc"
	"github.com/creachadair/jsonc/cst"
	"github.com/spf13/cobra"
)

// parseOptions returns the parser options selected by the command's flags:
// nil (all extensions) by default, or strict JSON under --strict.
func parseOptions(cmd *cobra.Command) *jsonc.Options {
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		return &jsonc.Options{}
	}
	return nil
}

// loadDocument reads and parses the document named by path, or stdin if
// path is "-" or empty.
func loadDocument(cmd *cobra.Command, path string) (*cst.Root, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	doc, err := cst.Parse(r, parseOptions(cmd))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", displayName(path), err)
	}
	return doc, nil
}

// writeResult delivers the edited document: back to path under -w, and
// otherwise to stdout.
func writeResult(doc *cst.Root, path string, overwrite bool) error {
	if overwrite {
		if path == "" || path == "-" {
			return fmt.Errorf("-w requires a file argument")
		}
		return os.WriteFile(path, []byte(doc.Text()), 0644)
	}
	_, err := io.WriteString(os.Stdout, doc.Text())
	return err
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

// parseValueArg interprets a command-line value argument as JSONC source
// text, so "5", "true", or '{"a": 1}' carry their natural types. Text that
// does not parse as a value is taken as a bare string.
func parseValueArg(text string) any {
	if doc, err := cst.ParseString(text, nil); err == nil && doc.Value() != nil {
		return cst.Raw(text)
	}
	return text
}
