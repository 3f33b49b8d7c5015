package shade

// Scope reproduces tree-scoped value lookup as an explicit object: each
// widget scope points at its parent, and a provider mounted on a scope is
// visible to that scope and everything below it. Lookup walks the ancestor
// chain; a scope with no provider anywhere above it reports absence rather
// than fabricating a default, so callers can tell "no theme mounted" apart
// from "theme is the default".
type Scope struct {
	parent   *Scope
	provider *Provider
}

// NewScope creates a root scope with the given provider mounted.
// A nil provider creates an empty root scope.
func NewScope(p *Provider) *Scope {
	return &Scope{provider: p}
}

// Child creates a scope below s with nothing mounted on it.
func (s *Scope) Child() *Scope {
	return &Scope{parent: s}
}

// Mount creates a scope below s with p mounted, shadowing any provider
// mounted above.
func (s *Scope) Mount(p *Provider) *Scope {
	return &Scope{parent: s, provider: p}
}

// Provider returns the nearest provider mounted at or above this scope,
// reporting whether one exists.
func (s *Scope) Provider() (*Provider, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.provider != nil {
			return cur.provider, true
		}
	}
	return nil, false
}

// Theme resolves the active theme through the nearest provider. The second
// return is false when no provider is mounted at or above this scope.
func (s *Scope) Theme() (Theme, bool) {
	p, ok := s.Provider()
	if !ok {
		return Theme{}, false
	}
	return p.Current(), true
}

// IsDark reports whether the nearest provider resolves dark. It is false
// when no provider is mounted.
func (s *Scope) IsDark() bool {
	p, ok := s.Provider()
	return ok && p.IsDark()
}
