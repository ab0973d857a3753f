// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/creachadair/jsonc/cst"
	"github.com/creachadair/jsonc/cst/cursor"
	"github.com/creachadair/jsonc/jpath"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "set <path> <value> [file]",
		Short: "Set the value at a path in a document",
		Long: `Set the value at a path, preserving the document's layout.

The value argument is parsed as JSONC source, so numbers, booleans,
objects, and arrays keep their types; anything else is taken as a
string. A member that does not exist is appended to its object; an
index one past the end appends to its array.

The edited document is written to stdout, or back to the file with -w.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := jpath.Parse(args[0])
			if err != nil {
				return fmt.Errorf("path %q: %w", args[0], err)
			}
			file := ""
			if len(args) > 2 {
				file = args[2]
			}
			doc, err := loadDocument(cmd, file)
			if err != nil {
				return err
			}
			if err := setPath(doc, expr, parseValueArg(args[1])); err != nil {
				return err
			}
			return writeResult(doc, file, overwrite)
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}

// setPath applies value at the location expr names in doc. The final path
// step may name a member or element that does not exist yet, in which case
// it is created.
func setPath(doc *cst.Root, expr jpath.Expr, value any) error {
	if len(expr) == 0 {
		doc.SetValue(value)
		return nil
	}
	steps := expr.Path()
	parent, err := cursor.Path[cst.Node](doc, steps[:len(steps)-1]...)
	if err != nil {
		return err
	}
	if m, ok := parent.(*cst.Member); ok {
		parent = m.MustValue()
	}

	switch last := steps[len(steps)-1].(type) {
	case string:
		obj, ok := parent.(*cst.Object)
		if !ok {
			return fmt.Errorf("cannot set %q in %T", last, parent)
		}
		if m := obj.Find(last); m != nil {
			m.SetValue(value)
		} else {
			obj.Append(last, value)
		}
	case int:
		arr, ok := parent.(*cst.Array)
		if !ok {
			return fmt.Errorf("cannot set index %d in %T", last, parent)
		}
		if e := arr.At(last); e != nil {
			cst.ReplaceWith(e, value)
		} else if last == arr.Len() {
			arr.Append(value)
		} else {
			return fmt.Errorf("array index %d out of bounds (n=%d)", last, arr.Len())
		}
	default:
		return fmt.Errorf("invalid path step %v", last)
	}
	return nil
}
