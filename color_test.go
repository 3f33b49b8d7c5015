package shade

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    uint32
		wantErr bool
	}{
		{"#1DA1F2", 0x1DA1F2FF, false},
		{"#1da1f2", 0x1DA1F2FF, false},
		{"#FFF", 0xFFFFFFFF, false},
		{"#000", 0x000000FF, false},
		{"  #112233  ", 0x112233FF, false},
		{"#11223344", 0x11223344, false},
		{"112233", 0, true},
		{"#12345", 0, true},
		{"#zzzzzz", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseColor(%q) = %08X, want %08X", tt.input, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := Hex(0x1DA1F2FF); got != "#1DA1F2" {
		t.Errorf("Hex = %q, want #1DA1F2", got)
	}
	if got := Hex(0x11223344); got != "#11223344" {
		t.Errorf("Hex = %q, want #11223344", got)
	}
}

func TestHexParseRoundTrip(t *testing.T) {
	for _, c := range []uint32{0x000000FF, 0xFFFFFFFF, 0x1DA1F2FF, 0x11223344} {
		parsed, err := ParseColor(Hex(c))
		if err != nil {
			t.Fatalf("round trip %08X: %v", c, err)
		}
		if parsed != c {
			t.Errorf("round trip %08X came back as %08X", c, parsed)
		}
	}
}

func TestLuminance(t *testing.T) {
	if l := Luminance(0xFFFFFFFF); l < 0.9 {
		t.Errorf("white luminance = %v, want near 1", l)
	}
	if l := Luminance(0x000000FF); l > 0.1 {
		t.Errorf("black luminance = %v, want near 0", l)
	}
	if !IsDarkColor(0x111827FF) {
		t.Error("gray-900 should read as dark")
	}
	if IsDarkColor(0xF9FAFBFF) {
		t.Error("gray-50 should read as light")
	}
}

func TestLightenDarken(t *testing.T) {
	base := uint32(0x3B82F6FF)

	lighter := Lighten(base, 0.2)
	if Luminance(lighter) <= Luminance(base) {
		t.Error("Lighten did not raise luminance")
	}

	darker := Darken(base, 0.2)
	if Luminance(darker) >= Luminance(base) {
		t.Error("Darken did not lower luminance")
	}

	// Alpha rides along untouched.
	if got := Lighten(0x11223380, 0.1) & 0xFF; got != 0x80 {
		t.Errorf("Lighten alpha = %02X, want 80", got)
	}

	// Already-extreme values clamp instead of wrapping.
	if got := Lighten(0xFFFFFFFF, 0.5); got != 0xFFFFFFFF {
		t.Errorf("Lighten(white) = %08X, want white", got)
	}
	if got := Darken(0x000000FF, 0.5); got != 0x000000FF {
		t.Errorf("Darken(black) = %08X, want black", got)
	}
}

func TestThemeIsDark(t *testing.T) {
	if DefaultLight().IsDark() {
		t.Error("default light theme reads as dark")
	}
	if !DefaultDark().IsDark() {
		t.Error("default dark theme reads as light")
	}
}

func TestDeriveDark(t *testing.T) {
	derived := DeriveDark(DefaultLight())

	if !derived.IsDark() {
		t.Error("derived theme should read as dark")
	}
	if derived.Name != "light-dark" {
		t.Errorf("derived name = %q", derived.Name)
	}
	if IsDarkColor(derived.Text) {
		t.Error("derived text should flip light for contrast")
	}
	if derived.CornerRadius != DefaultLight().CornerRadius {
		t.Error("shape parameters should carry over unchanged")
	}
}
