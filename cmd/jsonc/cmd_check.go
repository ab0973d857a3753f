// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Verify that documents parse, reporting the first error",
		Long: `Parse each named file (or stdin, with no arguments) and report errors.

By default all JSONC extensions are accepted; use --strict to check
plain JSON. The exit status is nonzero if any document fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			var failed bool
			for _, path := range args {
				if _, err := loadDocument(cmd, path); err != nil {
					failed = true
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				} else if !quiet {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", displayName(path))
				}
			}
			if failed {
				return fmt.Errorf("some documents failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "report errors only")

	return cmd
}
