package hue

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/hashicorp/go-hclog"
)

var (
	// ErrEmptyName is returned when registering a hue without a name.
	ErrEmptyName = errors.New("hue name must not be empty")
	// ErrUnknownHue is returned when a hue name is not registered.
	ErrUnknownHue = errors.New("unknown hue")
	// ErrInvalidHue is returned when registering a NaN or infinite hue.
	ErrInvalidHue = errors.New("hue must be a finite number")
)

// Registry is a catalog of named hues. It is safe for concurrent use.
//
// Names are unique; registering an existing name replaces the entry,
// including its primary flag. Lookups iterate in hue order (ties broken by
// name) so nearest-hue results are deterministic.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]NamedHue
	// ordered holds every entry sorted by hue, then name.
	ordered []NamedHue
	// primaries is the primary subset of ordered, in the same order.
	primaries []NamedHue
	logger    hclog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration events.
func WithLogger(logger hclog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a registry seeded with the twelve standard hues.
func New(opts ...Option) *Registry {
	r := NewEmpty(opts...)
	for _, n := range standardHues {
		r.byName[n.Name] = n
	}
	r.reindex()
	return r
}

// NewEmpty creates a registry with no hues.
func NewEmpty(opts ...Option) *Registry {
	r := &Registry{
		byName: make(map[string]NamedHue),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, seeded with the standard hues on
// first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// Register upserts a named hue. The hue is wrapped into [0, 1).
func (r *Registry) Register(name string, h float64, primary bool) error {
	return r.RegisterHue(NamedHue{Name: name, Hue: h, Primary: primary})
}

// RegisterHue upserts n, keyed by its name.
func (r *Registry) RegisterHue(n NamedHue) error {
	if n.Name == "" {
		return ErrEmptyName
	}
	if math.IsNaN(n.Hue) || math.IsInf(n.Hue, 0) {
		return fmt.Errorf("%w: %s = %v", ErrInvalidHue, n.Name, n.Hue)
	}
	n.Hue = Normalize(n.Hue)

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.byName[n.Name]; ok {
		if prev.Primary && prev != n {
			r.logger.Debug("replacing primary hue", "name", n.Name, "old", prev.Degrees(), "new", n.Degrees(), "primary", n.Primary)
		}
	}
	r.byName[n.Name] = n
	r.reindex()

	r.logger.Trace("registered hue", "name", n.Name, "degrees", n.Degrees(), "primary", n.Primary)
	return nil
}

// Unregister removes the hue with the given name, reporting whether it existed.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; !ok {
		return false
	}
	delete(r.byName, name)
	r.reindex()
	r.logger.Trace("unregistered hue", "name", name)
	return true
}

// HueForName returns the hue registered under name.
func (r *Registry) HueForName(name string) (NamedHue, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.byName[name]
	return n, ok
}

// Find returns the registered hue closest to h on the colour wheel, searching
// only primary hues when primaryOnly is set. It reports false only when there
// is nothing to search.
func (r *Registry) Find(h float64, primaryOnly bool) (NamedHue, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	candidates := r.ordered
	if primaryOnly {
		candidates = r.primaries
	}
	return nearest(candidates, h)
}

// IsPrimary reports whether h is within PrimaryVariance of a primary hue.
func (r *Registry) IsPrimary(h float64) bool {
	return r.IsPrimaryWithin(h, PrimaryVariance)
}

// IsPrimaryWithin reports whether the primary hue nearest to h lies strictly
// less than variance away from it, measured around the wheel.
func (r *Registry) IsPrimaryWithin(h, variance float64) bool {
	closest, ok := r.Find(h, true)
	if !ok {
		return false
	}
	return Distance(closest.Hue, h) < variance
}

// All returns every registered hue sorted by hue, then name.
func (r *Registry) All() []NamedHue {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.ordered)
}

// Primaries returns the primary hues sorted by hue, then name.
func (r *Registry) Primaries() []NamedHue {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.primaries)
}

// Len returns the number of registered hues.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// reindex rebuilds the ordered views. Callers must hold the write lock.
func (r *Registry) reindex() {
	ordered := make([]NamedHue, 0, len(r.byName))
	for _, n := range r.byName {
		ordered = append(ordered, n)
	}
	slices.SortFunc(ordered, func(a, b NamedHue) int {
		if c := cmp.Compare(a.Hue, b.Hue); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	primaries := make([]NamedHue, 0, len(ordered))
	for _, n := range ordered {
		if n.Primary {
			primaries = append(primaries, n)
		}
	}

	r.ordered = ordered
	r.primaries = primaries
}

// nearest scans candidates in order; the first of several equally close
// hues wins.
func nearest(candidates []NamedHue, h float64) (NamedHue, bool) {
	if len(candidates) == 0 {
		return NamedHue{}, false
	}

	h = Normalize(h)
	best := candidates[0]
	bestDist := Distance(best.Hue, h)
	for _, n := range candidates[1:] {
		if d := Distance(n.Hue, h); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best, true
}
