package shade

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	data := []byte(`
mode = "dark"

[light]
name       = "day"
background = "#F9FAFB"
text       = "#111827"
primary    = "#1DA1F2"
corner_radius = 12.0

[dark]
name       = "night"
background = "#0B0F19"
`)

	config, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if config.Mode != ModeDark {
		t.Errorf("mode = %v, want dark", config.Mode)
	}
	if config.Light.Name != "day" {
		t.Errorf("light name = %q, want day", config.Light.Name)
	}
	if config.Light.Background != 0xF9FAFBFF {
		t.Errorf("light background = %08X, want F9FAFBFF", config.Light.Background)
	}
	if config.Light.Primary != 0x1DA1F2FF {
		t.Errorf("light primary = %08X, want 1DA1F2FF", config.Light.Primary)
	}
	if config.Light.CornerRadius != 12 {
		t.Errorf("corner radius = %v, want 12", config.Light.CornerRadius)
	}

	// Unset fields fall back to the built-in palette for that slot.
	if config.Light.Surface != DefaultLight().Surface {
		t.Errorf("light surface = %08X, want default", config.Light.Surface)
	}

	if config.Dark == nil {
		t.Fatal("expected a dark theme")
	}
	if config.Dark.Background != 0x0B0F19FF {
		t.Errorf("dark background = %08X, want 0B0F19FF", config.Dark.Background)
	}
	if config.Dark.Text != DefaultDark().Text {
		t.Errorf("dark text = %08X, want default", config.Dark.Text)
	}
}

func TestLoadConfigLightOnly(t *testing.T) {
	config, err := LoadConfig([]byte("[light]\nbackground = \"#FFF\"\n"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if config.Dark != nil {
		t.Error("expected no dark theme")
	}
	if config.Mode != ModeSystem {
		t.Errorf("mode = %v, want the system default", config.Mode)
	}
	if config.Light.Background != 0xFFFFFFFF {
		t.Errorf("background = %08X, want FFFFFFFF (shorthand hex)", config.Light.Background)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "missing light table",
			data:    "[dark]\nbackground = \"#000\"\n",
			wantErr: "no [light] table",
		},
		{
			name:    "bad mode",
			data:    "mode = \"auto\"\n[light]\n",
			wantErr: "unknown mode",
		},
		{
			name:    "bad color",
			data:    "[light]\nbackground = \"red\"\n",
			wantErr: "invalid color",
		},
		{
			name:    "unknown key",
			data:    "[light]\nbackgroud = \"#FFF\"\n",
			wantErr: "",
		},
		{
			name:    "not toml",
			data:    "{\"light\": {}}",
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}

	t.Run("missing light wraps sentinel", func(t *testing.T) {
		_, err := LoadConfig([]byte("[dark]\n"))
		if !errors.Is(err, ErrMissingLight) {
			t.Errorf("error %v is not ErrMissingLight", err)
		}
	})
}

func TestLoadConfigFileMissing(t *testing.T) {
	if _, err := LoadConfigFile("testdata/does-not-exist.toml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
