package shade

import (
	"errors"
	"sync"
)

// ErrMissingLight is returned when a provider is constructed without a light
// theme. The light slot is the fallback for every resolution path, so a
// provider cannot exist without one.
var ErrMissingLight = errors.New("shade: light theme is required")

// Config is the construction-time configuration for a Provider.
type Config struct {
	// Light is the light theme. Required.
	Light Theme

	// Dark is the dark theme. Optional: when nil, the provider always
	// resolves to Light regardless of mode or OS setting.
	Dark *Theme

	// Mode selects which slot is active. Default is ModeSystem.
	Mode Mode
}

// snapshot pairs the values a subscriber has been told about. The OS
// brightness reading is part of it so a brightness flip redelivers even when
// the state itself did not change.
type snapshot struct {
	state      State
	systemDark bool
}

func (s snapshot) equal(o snapshot) bool {
	return s.systemDark == o.systemDark && s.state.Equal(o.state)
}

// subscription tracks one registered observer.
type subscription struct {
	fn        func(State)
	delivered snapshot
	cancelled bool
}

// Provider stores the current theme State plus the last OS brightness
// reading, and notifies subscribers whenever the stored values change.
//
// All methods are safe for concurrent use, and subscriber callbacks run
// outside the provider's lock, so subscribing, unsubscribing and updating
// the provider from within a callback are all legal. When a replacement
// lands while a notification pass is still running, the pass coalesces:
// subscribers not yet notified skip straight to the final value, and
// subscribers are never invoked twice for the same value.
type Provider struct {
	mu         sync.Mutex
	state      State
	systemDark bool
	subs       []*subscription
	notifying  bool
	batchDepth int
}

// NewProvider creates a provider from the given configuration, seeding the
// OS brightness reading with systemDark. It refuses to construct when the
// light theme is absent (the zero Theme).
func NewProvider(config Config, systemDark bool) (*Provider, error) {
	if config.Light == (Theme{}) {
		return nil, ErrMissingLight
	}
	state := State{Light: config.Light, Mode: config.Mode}
	if config.Dark != nil {
		state = state.WithDark(*config.Dark)
	}
	return &Provider{state: state, systemDark: systemDark}, nil
}

// State returns the current theme state.
func (p *Provider) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Mode returns the current mode.
func (p *Provider) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Mode
}

// Current resolves and returns the active theme.
func (p *Provider) Current() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Resolve(p.systemDark)
}

// IsDark reports whether the active theme is the dark one.
func (p *Provider) IsDark() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.IsDark(p.systemDark)
}

// SystemDark returns the last OS brightness reading pushed to the provider.
func (p *Provider) SystemDark() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.systemDark
}

// SetCurrent writes a theme through to whichever slot is currently active
// and notifies subscribers. Writing the currently resolved theme is a no-op.
func (p *Provider) SetCurrent(next Theme) {
	p.mu.Lock()
	p.state = p.state.Update(p.systemDark, next)
	p.flushLocked()
}

// SetMode changes the mode and notifies subscribers.
func (p *Provider) SetMode(m Mode) {
	p.mu.Lock()
	p.state = p.state.WithMode(m)
	p.flushLocked()
}

// SetState replaces the whole state, as on external reconfiguration.
// Replacing with an equal state is a no-op.
func (p *Provider) SetState(next State) {
	p.mu.Lock()
	p.state = next
	p.flushLocked()
}

// SetSystemDark records a new OS brightness reading. Readings carry no
// ordering guarantee relative to user updates; the last value wins.
func (p *Provider) SetSystemDark(dark bool) {
	p.mu.Lock()
	p.systemDark = dark
	p.flushLocked()
}

// Subscribe registers fn to be called with the new State after every change.
// It returns a cancel function; both Subscribe and cancel may be called at
// any time, including from within a subscriber callback. A subscriber added
// during a notification pass is not invoked for the in-flight change.
func (p *Provider) Subscribe(fn func(State)) (cancel func()) {
	p.mu.Lock()
	sub := &subscription{
		fn:        fn,
		delivered: snapshot{state: p.state, systemDark: p.systemDark},
	}
	p.subs = append(p.subs, sub)
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		sub.cancelled = true
		if !p.notifying {
			p.compactLocked()
		}
	}
}

// Batch runs fn with notification suppressed, then delivers a single
// notification carrying the final value. Use it to coalesce a rapid series
// of replacements so subscribers see only the last one. Batches nest.
func (p *Provider) Batch(fn func()) {
	p.mu.Lock()
	p.batchDepth++
	p.mu.Unlock()

	fn()

	p.mu.Lock()
	p.batchDepth--
	p.flushLocked()
}

// DarkModeProvider returns a func() bool reporting whether the active theme
// is dark, in the shape widget trees expect for their dark-mode hook.
func (p *Provider) DarkModeProvider() func() bool {
	return p.IsDark
}

// flushLocked starts a notification pass unless one is already running or a
// batch is open. The lock is held on entry and released on return; an
// in-flight pass picks up the new values on its own.
func (p *Provider) flushLocked() {
	if p.batchDepth > 0 || p.notifying {
		p.mu.Unlock()
		return
	}
	p.notifyLocked()
}

// notifyLocked delivers the current values to every live subscriber that has
// not seen them yet, re-reading the state before each delivery so that
// replacements made by callbacks collapse to the final value. The lock is
// held on entry and released on return.
func (p *Provider) notifyLocked() {
	p.notifying = true
	for {
		current := snapshot{state: p.state, systemDark: p.systemDark}
		var next *subscription
		for _, sub := range p.subs {
			if !sub.cancelled && !sub.delivered.equal(current) {
				next = sub
				break
			}
		}
		if next == nil {
			break
		}
		next.delivered = current
		fn := next.fn
		p.mu.Unlock()
		fn(current.state)
		p.mu.Lock()
	}
	p.notifying = false
	p.compactLocked()
	p.mu.Unlock()
}

// compactLocked drops cancelled subscriptions. Must not run while a
// notification pass is iterating.
func (p *Provider) compactLocked() {
	live := p.subs[:0]
	for _, sub := range p.subs {
		if !sub.cancelled {
			live = append(live, sub)
		}
	}
	for i := len(live); i < len(p.subs); i++ {
		p.subs[i] = nil
	}
	p.subs = live
}
