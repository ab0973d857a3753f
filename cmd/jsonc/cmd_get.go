// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/creachadair/jsonc/cst"
	"github.com/creachadair/jsonc/cst/cursor"
	"github.com/creachadair/jsonc/jpath"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <path> [file]",
		Short: "Print the value at a path in a document",
		Long: `Print the source text of the value at a path.

Paths use a pointer syntax rooted at "$", for example:

  $.servers[0].host
  $['key with spaces'][-1]

Negative indices count back from the end. The value is printed with
its original formatting and comments.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := jpath.Parse(args[0])
			if err != nil {
				return fmt.Errorf("path %q: %w", args[0], err)
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
			if m, ok := n.(*cst.Member); ok {
				n = m.MustValue()
			}
			fmt.Fprintln(cmd.OutOrStdout(), n.Text())
			return nil
		},
	}
	return cmd
}
