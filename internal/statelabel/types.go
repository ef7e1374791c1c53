package statelabel

import "context"

// State maps an option key to the label shown when the option's stored value
// matches a post's identifier.
type State struct {
	Key   string // e.g. "page_for_landing"
	Label string // e.g. "Landing Page"
}

// LookupFunc fetches the stored value for an option key. Implementations may
// hit a database or other storage; errors and non-numeric values are treated
// as "no match" at resolution time, never surfaced as resolution failures.
type LookupFunc func(ctx context.Context, key string) (string, error)

// Item is a host-provided record exposing a unique integer identifier.
// It is never mutated by this package.
type Item interface {
	ItemID() int64
}

// RowLabelFunc decorates the label set for a single rendered row.
type RowLabelFunc func(ctx context.Context, labels *Labels, item Item) *Labels

// Dispatcher is the host extension point that invokes row label decorators
// once per rendered list row. Implementations must preserve registration
// order when applying decorators.
type Dispatcher interface {
	OnRowLabels(fn RowLabelFunc)
}

// Labels is an ordered key->label set accumulated across decorators.
// Setting an existing key overwrites its label but keeps its position.
type Labels struct {
	keys   []string
	values map[string]string
}

// NewLabels creates an empty label set.
func NewLabels() *Labels {
	return &Labels{values: make(map[string]string)}
}

// Set adds or overwrites the label at key. A key keeps the position it was
// first inserted at.
func (l *Labels) Set(key, label string) {
	if _, exists := l.values[key]; !exists {
		l.keys = append(l.keys, key)
	}
	l.values[key] = label
}

// Get returns the label at key and whether it is present.
func (l *Labels) Get(key string) (string, bool) {
	label, ok := l.values[key]
	return label, ok
}

// Keys returns the keys in insertion order.
func (l *Labels) Keys() []string {
	keys := make([]string, len(l.keys))
	copy(keys, l.keys)
	return keys
}

// Values returns the labels in insertion order.
func (l *Labels) Values() []string {
	values := make([]string, 0, len(l.keys))
	for _, key := range l.keys {
		values = append(values, l.values[key])
	}
	return values
}

// Len returns the number of labels in the set.
func (l *Labels) Len() int {
	return len(l.keys)
}
