// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/creachadair/jsonc/cst"
	"github.com/creachadair/jsonc/cst/cursor"
	"github.com/creachadair/jsonc/jpath"
	"github.com/spf13/cobra"
)

func newRmCmd() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "rm <path> [file]",
		Short: "Remove the value at a path from a document",
		Long: `Remove the member or element at a path.

The separator and blank trivia on the same line go with it; comments on
their own lines stay. The edited document is written to stdout, or back
to the file with -w.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := jpath.Parse(args[0])
			if err != nil {
				return fmt.Errorf("path %q: %w", args[0], err)
			}
			if len(expr) == 0 {
				return fmt.Errorf("path %q names the whole document", args[0])
			}
			file := ""
			if len(args) > 1 {
				file = args[1]
			}
			doc, err := loadDocument(cmd, file)
			if err != nil {
				return err
			}
			n, err := cursor.Path[cst.Node](doc, expr.Path()...)
			if err != nil {
				return err
			}
			cst.Remove(n)
			return writeResult(doc, file, overwrite)
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
