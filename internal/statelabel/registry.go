package statelabel

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/zjrosen/poststates/internal/log"
)

// Configuration errors
var (
	ErrNoValidStates   = errors.New("state map is empty after filtering invalid entries")
	ErrNilLookup       = errors.New("lookup function is nil")
	ErrAlreadyAttached = errors.New("registry is already attached to a dispatcher")
)

// Registry holds a validated state mapping and resolves labels for items.
// Configuration is read-only after construction; SetStates replaces the
// mapping wholesale under the same validation rules.
type Registry struct {
	mu     sync.RWMutex
	keys   []string          // insertion order
	labels map[string]string // key -> label

	lookup   LookupFunc
	attached bool
}

// New validates states and lookup and returns a configured Registry.
// Entries with an empty key or empty label are silently dropped; if nothing
// survives filtering, New fails with ErrNoValidStates. A nil lookup fails
// with ErrNilLookup. The lookup function is never called during validation.
func New(states []State, lookup LookupFunc) (*Registry, error) {
	if lookup == nil {
		return nil, ErrNilLookup
	}

	keys, labels := filterStates(states)
	if len(keys) == 0 {
		return nil, ErrNoValidStates
	}

	return &Registry{
		keys:   keys,
		labels: labels,
		lookup: lookup,
	}, nil
}

// filterStates drops entries with empty keys or labels. Duplicate keys keep
// their first position; the last label wins.
func filterStates(states []State) ([]string, map[string]string) {
	keys := make([]string, 0, len(states))
	labels := make(map[string]string, len(states))
	for _, s := range states {
		if s.Key == "" || s.Label == "" {
			continue
		}
		if _, exists := labels[s.Key]; !exists {
			keys = append(keys, s.Key)
		}
		labels[s.Key] = s.Label
	}
	return keys, labels
}

// States returns the configured states in application order.
func (r *Registry) States() []State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	states := make([]State, 0, len(r.keys))
	for _, key := range r.keys {
		states = append(states, State{Key: key, Label: r.labels[key]})
	}
	return states
}

// SetStates replaces the state mapping wholesale, re-running validation.
// On error the previous mapping is left in place.
func (r *Registry) SetStates(states []State) error {
	keys, labels := filterStates(states)
	if len(keys) == 0 {
		return ErrNoValidStates
	}

	r.mu.Lock()
	r.keys = keys
	r.labels = labels
	r.mu.Unlock()

	log.Debug(log.CatState, "state map replaced", "states", len(keys))
	return nil
}

// Resolve decorates labels with every configured state whose stored option
// value matches the item's identifier, in configuration order. Existing
// entries at a matching key are overwritten; entries at other keys are never
// touched. A nil labels set is treated as empty.
func (r *Registry) Resolve(ctx context.Context, labels *Labels, item Item) *Labels {
	if labels == nil {
		labels = NewLabels()
	}

	r.mu.RLock()
	keys := r.keys
	stateLabels := r.labels
	lookup := r.lookup
	r.mu.RUnlock()

	// Unreachable post-validation, kept as a no-op guard.
	if len(keys) == 0 || lookup == nil {
		return labels
	}

	id := item.ItemID()
	for _, key := range keys {
		raw, err := lookup(ctx, key)
		if err != nil {
			log.Warn(log.CatState, "option lookup failed", "key", key, "error", err.Error())
		}
		if coerceID(raw) == id {
			labels.Set(key, stateLabels[key])
		}
	}
	return labels
}

// coerceID converts a stored option value to an integer identifier.
// Missing, unset, and non-numeric values coerce to 0.
func coerceID(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Attach subscribes the registry's Resolve to the host dispatcher. The
// subscription happens exactly once per Registry; a second Attach fails with
// ErrAlreadyAttached.
func (r *Registry) Attach(d Dispatcher) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.attached {
		return ErrAlreadyAttached
	}
	d.OnRowLabels(r.Resolve)
	r.attached = true

	log.Debug(log.CatState, "registry attached", "states", len(r.keys))
	return nil
}
