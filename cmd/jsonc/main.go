// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program jsonc reads, checks, and edits JSONC documents while preserving
// their layout and comments.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsonc",
		Short: "Inspect and edit JSONC documents without disturbing layout",
	}

	rootCmd.PersistentFlags().Bool("strict", false, "reject comments and other JSON extensions")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newRmCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
