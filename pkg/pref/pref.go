// Package pref holds user preferences that can be reported by more than one
// source, such as a command-line default and a browser media query.
//
// Example:
//
//	reduced := pref.ReducedMotion(false)
//	release := reduced.Subscribe(func(v bool) { log.Println("reduced motion:", v) })
//	defer release()
//
//	// The browser reported its prefers-reduced-motion media query.
//	reduced.SetFromRemote(true, reportedAt)
package pref

import (
	"sync"
	"time"
)

// ReducedMotionKey is the preference key for the reduced-motion signal.
const ReducedMotionKey = "prefers-reduced-motion"

// MergeStrategy determines how conflicts are resolved when local and remote values differ.
type MergeStrategy int

const (
	// RemoteWins uses the remote value, discards local.
	RemoteWins MergeStrategy = iota

	// LocalWins keeps the local value.
	LocalWins

	// LWW uses last-write-wins with timestamps.
	LWW
)

// PrefOption is a functional option for configuring preferences.
type PrefOption func(*prefConfig)

type prefConfig struct {
	mergeStrategy MergeStrategy
	now           func() time.Time
}

// MergeWith sets the merge strategy for conflict resolution.
func MergeWith(strategy MergeStrategy) PrefOption {
	return func(c *prefConfig) {
		c.mergeStrategy = strategy
	}
}

// WithClock sets the clock used to timestamp local writes.
func WithClock(now func() time.Time) PrefOption {
	return func(c *prefConfig) {
		c.now = now
	}
}

// Pref is a preference value with change notification.
type Pref[T comparable] struct {
	key       string
	value     T
	defaults  T
	updatedAt time.Time
	config    prefConfig

	mu     sync.RWMutex
	nextID int
	subs   map[int]func(T)
}

// New creates a new preference with the given key and default value.
func New[T comparable](key string, defaultValue T, opts ...PrefOption) *Pref[T] {
	config := prefConfig{
		mergeStrategy: LWW,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(&config)
	}

	return &Pref[T]{
		key:       key,
		value:     defaultValue,
		defaults:  defaultValue,
		updatedAt: config.now(),
		config:    config,
		subs:      make(map[int]func(T)),
	}
}

// ReducedMotion creates the reduced-motion preference. It uses
// last-write-wins so a fresh browser report overrides a stale default.
func ReducedMotion(defaultValue bool, opts ...PrefOption) *Pref[bool] {
	return New(ReducedMotionKey, defaultValue, opts...)
}

// Get returns the current preference value.
func (p *Pref[T]) Get() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// Set updates the preference value and notifies subscribers when it changed.
func (p *Pref[T]) Set(value T) {
	p.mu.Lock()
	changed := p.value != value
	p.value = value
	p.updatedAt = p.config.now()
	subs := p.snapshotLocked()
	p.mu.Unlock()

	if changed {
		notify(subs, value)
	}
}

// Reset resets the preference to its default value.
func (p *Pref[T]) Reset() {
	p.Set(p.defaults)
}

// Key returns the preference key.
func (p *Pref[T]) Key() string {
	return p.key
}

// UpdatedAt returns when the preference was last updated.
func (p *Pref[T]) UpdatedAt() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.updatedAt
}

// SetFromRemote updates the value from a remote source, resolving conflicts
// with the configured merge strategy.
func (p *Pref[T]) SetFromRemote(value T, remoteUpdatedAt time.Time) {
	p.mu.Lock()
	old := p.value
	if p.resolve(remoteUpdatedAt) {
		p.value = value
		if remoteUpdatedAt.After(p.updatedAt) {
			p.updatedAt = remoteUpdatedAt
		}
	}
	current := p.value
	subs := p.snapshotLocked()
	p.mu.Unlock()

	if current != old {
		notify(subs, current)
	}
}

// resolve reports whether the remote value should replace the local one.
func (p *Pref[T]) resolve(remoteTime time.Time) bool {
	switch p.config.mergeStrategy {
	case RemoteWins:
		return true
	case LocalWins:
		return false
	default:
		return remoteTime.After(p.updatedAt)
	}
}

// Subscribe registers fn to run after every change of value and returns a
// function removing it.
func (p *Pref[T]) Subscribe(fn func(T)) (release func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

func (p *Pref[T]) snapshotLocked() []func(T) {
	out := make([]func(T), 0, len(p.subs))
	for _, fn := range p.subs {
		out = append(out, fn)
	}
	return out
}

func notify[T any](subs []func(T), v T) {
	for _, fn := range subs {
		fn(v)
	}
}
