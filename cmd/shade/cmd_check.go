package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/shade"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a theme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := shade.LoadConfigFile(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s: OK\n", args[0])
			fmt.Printf("  mode:  %s\n", config.Mode)
			fmt.Printf("  light: %s\n", themeName(config.Light))
			if config.Dark != nil {
				fmt.Printf("  dark:  %s\n", themeName(*config.Dark))
			} else {
				fmt.Println("  dark:  (absent, always resolves light)")
			}
			return nil
		},
	}
}

func themeName(t shade.Theme) string {
	if t.Name == "" {
		return "(unnamed)"
	}
	return t.Name
}
