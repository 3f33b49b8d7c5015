package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const starterTheme = `# Theme definition. The [light] table is required; [dark] is optional.
# Colors are hex strings: #RGB, #RRGGBB or #RRGGBBAA.
# Fields left out fall back to the built-in palette for that slot.

mode = "system" # light | dark | system

[light]
name       = "light"
background = "#F9FAFB"
surface    = "#FFFFFF"
text       = "#111827"
muted_text = "#6B7280"
primary    = "#3B82F6"
on_primary = "#FFFFFF"
border     = "#E5E7EB"
accent     = "#8B5CF6"
corner_radius = 8.0
elevation     = 2.0

[dark]
name       = "dark"
background = "#111827"
surface    = "#1F2937"
text       = "#F9FAFB"
muted_text = "#9CA3AF"
primary    = "#60A5FA"
on_primary = "#111827"
border     = "#374151"
accent     = "#A78BFA"
`

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter theme.toml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "theme.toml"
			if len(args) == 1 {
				path = args[0]
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			if err := os.WriteFile(path, []byte(starterTheme), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
