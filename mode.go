package shade

import "fmt"

// Mode represents the app's theme preference.
type Mode int

const (
	// ModeSystem follows the OS dark/light setting.
	ModeSystem Mode = iota
	// ModeLight forces the light theme regardless of OS setting.
	ModeLight
	// ModeDark forces the dark theme regardless of OS setting.
	ModeDark
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	case ModeSystem:
		return "system"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name as written in theme files.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	case "system", "":
		return ModeSystem, nil
	default:
		return ModeSystem, fmt.Errorf("unknown mode %q: want light, dark or system", s)
	}
}
