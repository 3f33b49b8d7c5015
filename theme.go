// Package shade provides light/dark theme state for declarative UI trees.
//
// The package separates the problem into three pieces:
//   - Theme and State: immutable values with structural equality
//   - pure reducers on State (Resolve, Update, WithMode) for the single
//     light-vs-dark decision
//   - Provider: a thin stateful shell that stores the current State, tracks
//     the OS brightness reading, and notifies subscribers on change
//
// Widgets read the active theme through a Provider (or a Scope mounted above
// them) and never touch the light/dark slots directly.
package shade

// Theme is a named bundle of visual parameters shared by a widget tree.
// All colors are 0xRRGGBBAA. Theme is a plain comparable value: two themes
// are the same theme exactly when every field matches.
type Theme struct {
	Name string

	// Core colors
	Background uint32
	Surface    uint32
	Text       uint32
	MutedText  uint32
	Primary    uint32
	OnPrimary  uint32
	Border     uint32
	Accent     uint32

	// Shape
	CornerRadius float32

	// Shadow depth in logical pixels (0 = flat)
	Elevation float32
}

// IsDark reports whether the theme reads as a dark theme, judged by the
// perceived luminance of its background color.
func (t Theme) IsDark() bool {
	return IsDarkColor(t.Background)
}

// DefaultLight returns the built-in light palette.
func DefaultLight() Theme {
	return Theme{
		Name:         "light",
		Background:   0xF9FAFBFF,
		Surface:      0xFFFFFFFF,
		Text:         0x111827FF,
		MutedText:    0x6B7280FF,
		Primary:      0x3B82F6FF,
		OnPrimary:    0xFFFFFFFF,
		Border:       0xE5E7EBFF,
		Accent:       0x8B5CF6FF,
		CornerRadius: 8,
		Elevation:    2,
	}
}

// DefaultDark returns the built-in dark palette.
func DefaultDark() Theme {
	return Theme{
		Name:         "dark",
		Background:   0x111827FF,
		Surface:      0x1F2937FF,
		Text:         0xF9FAFBFF,
		MutedText:    0x9CA3AFFF,
		Primary:      0x60A5FAFF,
		OnPrimary:    0x111827FF,
		Border:       0x374151FF,
		Accent:       0xA78BFAFF,
		CornerRadius: 8,
		Elevation:    2,
	}
}

// DeriveDark builds a dark counterpart for a light theme by flipping the
// lightness of its neutral colors and nudging the primary toward a shade
// that holds contrast on dark surfaces. Use this when an app defines only a
// light palette but still wants to follow the OS preference.
func DeriveDark(light Theme) Theme {
	dark := light
	if light.Name != "" {
		dark.Name = light.Name + "-dark"
	}
	dark.Background = invertLightness(light.Background)
	dark.Surface = invertLightness(light.Surface)
	dark.Text = invertLightness(light.Text)
	dark.MutedText = invertLightness(light.MutedText)
	dark.Border = invertLightness(light.Border)
	dark.Primary = Lighten(light.Primary, 0.12)
	dark.Accent = Lighten(light.Accent, 0.12)
	dark.OnPrimary = contrastColor(dark.Primary)
	return dark
}
