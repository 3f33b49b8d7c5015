// Package main provides the shade CLI for working with theme files:
// scaffolding a starter file, validating edits, and previewing palettes in
// the terminal.
//
// Usage:
//
//	shade init [path]      # Write a starter theme.toml
//	shade check <file>     # Validate a theme file
//	shade show [file]      # Preview the light and dark palettes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:           "shade",
		Short:         "Inspect and preview theme files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newInitCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newShowCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
