// Package optionstore provides the host's named key-value option facility.
//
// Options are the stored values state labels are resolved against: an option
// like "page_for_landing" holds the identifier of the post currently acting
// as the landing page. The package defines the Store contract plus an
// in-memory implementation and a read-through cached decorator; the
// SQLite-backed implementation lives in internal/infrastructure/sqlite.
package optionstore

import (
	"context"
	"errors"
	"time"

	"github.com/zjrosen/poststates/internal/statelabel"
)

// Store errors
var (
	ErrNotFound = errors.New("option not found")
	ErrEmptyKey = errors.New("option key cannot be empty")
)

// Option is a single named stored value.
type Option struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Store reads and writes named option values.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the stored value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, creating or overwriting.
	Set(ctx context.Context, key, value string) error

	// Delete removes the option. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all options sorted by key.
	List(ctx context.Context) ([]Option, error)
}

// Lookup adapts a Store to the statelabel lookup contract. Missing options
// yield an empty value and no error, so an unset option coerces to 0 at
// resolution time instead of surfacing as a failure.
func Lookup(s Store) statelabel.LookupFunc {
	return func(ctx context.Context, key string) (string, error) {
		value, err := s.Get(ctx, key)
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return value, err
	}
}
