package shade

// State is the immutable theme state: a light theme, an optional dark theme,
// and the mode selecting between them. A State is never mutated in place;
// the With* and Update methods return a fresh value with one field replaced.
type State struct {
	Light Theme
	Dark  *Theme
	Mode  Mode
}

// Equal reports structural equality over all three fields. Two states with
// distinct Dark pointers to equal themes are equal.
func (s State) Equal(o State) bool {
	if s.Mode != o.Mode || s.Light != o.Light {
		return false
	}
	if (s.Dark == nil) != (o.Dark == nil) {
		return false
	}
	return s.Dark == nil || *s.Dark == *o.Dark
}

// WithLight returns a copy of the state with the light slot replaced.
func (s State) WithLight(t Theme) State {
	s.Light = t
	return s
}

// WithDark returns a copy of the state with the dark slot replaced.
// The theme is copied so the new state does not alias caller memory.
func (s State) WithDark(t Theme) State {
	s.Dark = &t
	return s
}

// WithoutDark returns a copy of the state with no dark slot. The resolved
// theme is then always the light one.
func (s State) WithoutDark() State {
	s.Dark = nil
	return s
}

// WithMode returns a copy of the state with the mode replaced.
// No other fields change.
func (s State) WithMode(m Mode) State {
	s.Mode = m
	return s
}

// IsDark reports whether Resolve would select the dark slot, given the
// current OS brightness reading.
func (s State) IsDark(systemDark bool) bool {
	if s.Dark == nil {
		return false
	}
	return s.Mode == ModeDark || (s.Mode == ModeSystem && systemDark)
}

// Resolve returns the active theme. The dark slot wins only when it is
// present and either the mode forces it or the mode follows the OS and the
// OS prefers dark; in every other case the light slot wins. Pure and total.
func (s State) Resolve(systemDark bool) Theme {
	if s.IsDark(systemDark) {
		return *s.Dark
	}
	return s.Light
}

// Update writes next through to whichever slot Resolve currently selects and
// returns the new state. This is the only mutation path for theme values:
// callers never set the light/dark slots directly once mounted.
func (s State) Update(systemDark bool, next Theme) State {
	if s.IsDark(systemDark) {
		return s.WithDark(next)
	}
	return s.WithLight(next)
}
