//go:build linux || freebsd || openbsd || netbsd || dragonfly

package platform

import (
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestSchemeIsDark(t *testing.T) {
	tests := []struct {
		name  string
		value dbus.Variant
		want  bool
	}{
		{
			name:  "no preference",
			value: dbus.MakeVariant(uint32(0)),
			want:  false,
		},
		{
			name:  "prefer dark",
			value: dbus.MakeVariant(uint32(1)),
			want:  true,
		},
		{
			name:  "prefer light",
			value: dbus.MakeVariant(uint32(2)),
			want:  false,
		},
		{
			name:  "wrapped variant as returned by Settings.Read",
			value: dbus.MakeVariant(dbus.MakeVariant(uint32(1))),
			want:  true,
		},
		{
			name:  "doubly wrapped variant",
			value: dbus.MakeVariant(dbus.MakeVariant(dbus.MakeVariant(uint32(1)))),
			want:  true,
		},
		{
			name:  "unexpected type",
			value: dbus.MakeVariant("dark"),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := schemeIsDark(tt.value); got != tt.want {
				t.Errorf("schemeIsDark(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
