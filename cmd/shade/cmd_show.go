package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/agiangrant/shade"
	"github.com/agiangrant/shade/platform"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Preview the light and dark palettes in the terminal",
		Long: `Preview the light and dark palettes of a theme file as color swatches,
and report which slot each mode resolves to for this machine's current
OS appearance. Without a file, previews the built-in palettes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dark := shade.DefaultDark()
			config := shade.Config{Light: shade.DefaultLight(), Dark: &dark}
			if len(args) == 1 {
				loaded, err := shade.LoadConfigFile(args[0])
				if err != nil {
					return err
				}
				config = loaded
			}

			fmt.Println(renderPalette("light", config.Light))
			if config.Dark != nil {
				fmt.Println(renderPalette("dark", *config.Dark))
			}

			systemDark := platform.DarkMode()
			fmt.Printf("OS appearance: %s\n\n", lightOrDark(systemDark))
			for _, mode := range []shade.Mode{shade.ModeSystem, shade.ModeLight, shade.ModeDark} {
				state := shade.State{Light: config.Light, Dark: config.Dark, Mode: mode}
				resolved := state.Resolve(systemDark)
				fmt.Printf("  mode %-7s -> %s (%s)\n",
					mode, themeName(resolved), lightOrDark(state.IsDark(systemDark)))
			}
			return nil
		},
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Width(12)
)

// renderPalette draws one swatch line per color in the theme.
func renderPalette(slot string, t shade.Theme) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("[%s] %s", slot, themeName(t))))
	b.WriteString("\n")

	colors := []struct {
		label string
		value uint32
	}{
		{"background", t.Background},
		{"surface", t.Surface},
		{"text", t.Text},
		{"muted_text", t.MutedText},
		{"primary", t.Primary},
		{"on_primary", t.OnPrimary},
		{"border", t.Border},
		{"accent", t.Accent},
	}

	for _, c := range colors {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(shade.Hex(c.value))).
			Render("        ")
		fmt.Fprintf(&b, "  %s %s %s\n", labelStyle.Render(c.label), swatch, shade.Hex(c.value))
	}
	return b.String()
}

func lightOrDark(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
