// Package hooks implements the host-side extension point that invokes row
// label decorators while the admin list renders.
//
// Decorators register through statelabel.Dispatcher and are applied
// synchronously in registration order, once per rendered row. Later
// decorators see (and may overwrite) labels set by earlier ones; the last
// writer at a key wins.
package hooks

import (
	"context"
	"sync"

	"github.com/zjrosen/poststates/internal/log"
	"github.com/zjrosen/poststates/internal/statelabel"
)

// Dispatcher fans a row out to every registered label decorator.
// Registration and application are safe for concurrent use.
type Dispatcher struct {
	mu        sync.RWMutex
	rowLabels []statelabel.RowLabelFunc
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Ensure Dispatcher satisfies the registration contract.
var _ statelabel.Dispatcher = (*Dispatcher)(nil)

// OnRowLabels registers a row label decorator. Decorators are applied in
// registration order and are never removed.
func (d *Dispatcher) OnRowLabels(fn statelabel.RowLabelFunc) {
	if fn == nil {
		return
	}

	d.mu.Lock()
	d.rowLabels = append(d.rowLabels, fn)
	count := len(d.rowLabels)
	d.mu.Unlock()

	log.Debug(log.CatHooks, "row label decorator registered", "count", count)
}

// ApplyRowLabels runs every registered decorator over labels for item and
// returns the accumulated label set. A nil labels set is treated as empty.
// With no decorators registered the input is returned unchanged.
func (d *Dispatcher) ApplyRowLabels(ctx context.Context, labels *statelabel.Labels, item statelabel.Item) *statelabel.Labels {
	if labels == nil {
		labels = statelabel.NewLabels()
	}

	d.mu.RLock()
	fns := d.rowLabels
	d.mu.RUnlock()

	for _, fn := range fns {
		if next := fn(ctx, labels, item); next != nil {
			labels = next
		}
	}
	return labels
}

// DecoratorCount returns the number of registered decorators.
func (d *Dispatcher) DecoratorCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.rowLabels)
}
