package shade

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// themeFile is the on-disk TOML schema for a theme definition.
//
//	mode = "system"            # light | dark | system
//
//	[light]
//	background = "#F9FAFB"
//	text       = "#111827"
//	...
//
//	[dark]
//	background = "#111827"
//	...
//
// The [light] table is required. Color fields are hex strings; fields left
// out fall back to the built-in palette for that slot.
type themeFile struct {
	Mode  string      `toml:"mode"`
	Light *themeTable `toml:"light"`
	Dark  *themeTable `toml:"dark"`
}

type themeTable struct {
	Name         string   `toml:"name"`
	Background   string   `toml:"background"`
	Surface      string   `toml:"surface"`
	Text         string   `toml:"text"`
	MutedText    string   `toml:"muted_text"`
	Primary      string   `toml:"primary"`
	OnPrimary    string   `toml:"on_primary"`
	Border       string   `toml:"border"`
	Accent       string   `toml:"accent"`
	CornerRadius *float32 `toml:"corner_radius"`
	Elevation    *float32 `toml:"elevation"`
}

// LoadConfig parses a TOML theme definition. Unknown keys are rejected so a
// typoed color name fails loudly instead of silently keeping the default.
func LoadConfig(data []byte) (Config, error) {
	file, err := decodeThemeFile(data)
	if err != nil {
		return Config{}, err
	}
	return file.config()
}

// decodeThemeFile strictly decodes the raw TOML.
func decodeThemeFile(data []byte) (themeFile, error) {
	var file themeFile
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return themeFile{}, fmt.Errorf("failed to parse theme file: %w", err)
	}
	return file, nil
}

// config validates the decoded file and assembles a Config from it.
func (file themeFile) config() (Config, error) {
	if file.Light == nil {
		return Config{}, fmt.Errorf("theme file has no [light] table: %w", ErrMissingLight)
	}

	mode, err := ParseMode(file.Mode)
	if err != nil {
		return Config{}, err
	}

	light, err := file.Light.theme(DefaultLight())
	if err != nil {
		return Config{}, fmt.Errorf("[light]: %w", err)
	}

	config := Config{Light: light, Mode: mode}
	if file.Dark != nil {
		dark, err := file.Dark.theme(DefaultDark())
		if err != nil {
			return Config{}, fmt.Errorf("[dark]: %w", err)
		}
		config.Dark = &dark
	}
	return config, nil
}

// LoadConfigFile reads and parses a TOML theme definition from disk.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read theme file: %w", err)
	}
	config, err := LoadConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// theme builds a Theme from the table, filling unset fields from base.
func (t *themeTable) theme(base Theme) (Theme, error) {
	out := base
	if t.Name != "" {
		out.Name = t.Name
	}
	if t.CornerRadius != nil {
		out.CornerRadius = *t.CornerRadius
	}
	if t.Elevation != nil {
		out.Elevation = *t.Elevation
	}

	fields := []struct {
		key   string
		value string
		dst   *uint32
	}{
		{"background", t.Background, &out.Background},
		{"surface", t.Surface, &out.Surface},
		{"text", t.Text, &out.Text},
		{"muted_text", t.MutedText, &out.MutedText},
		{"primary", t.Primary, &out.Primary},
		{"on_primary", t.OnPrimary, &out.OnPrimary},
		{"border", t.Border, &out.Border},
		{"accent", t.Accent, &out.Accent},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		c, err := ParseColor(f.value)
		if err != nil {
			return Theme{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = c
	}
	return out, nil
}
