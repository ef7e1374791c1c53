package optionstore

import (
	"context"
	"time"

	"github.com/zjrosen/poststates/internal/cachemanager"
	"github.com/zjrosen/poststates/internal/log"
	"github.com/zjrosen/poststates/internal/pubsub"
)

// DefaultTTL is how long a read-through option value stays cached.
// One admin list render resolves every configured state once per row, so even
// a short TTL collapses those lookups into a single storage read per key.
const DefaultTTL = 30 * time.Second

// CachedStore decorates a Store with a read-through value cache and publishes
// change events so the admin list can refresh when options are written.
type CachedStore struct {
	backend Store
	reader  *cachemanager.ReadThroughCache[string, string, string]
	values  cachemanager.CacheManager[string, string]
	ttl     time.Duration
	events  *pubsub.Broker[pubsub.OptionChange]
}

var _ Store = (*CachedStore)(nil)

// NewCachedStore wraps backend. A ttl of 0 uses DefaultTTL.
func NewCachedStore(backend Store, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	values := cachemanager.NewInMemoryCacheManager[string, string](
		"options", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)

	return &CachedStore{
		backend: backend,
		reader: cachemanager.NewReadThroughCache[string, string, string](
			values,
			func(ctx context.Context, key string) (string, error) {
				return backend.Get(ctx, key)
			},
			false,
		),
		values: values,
		ttl:    ttl,
		events: pubsub.NewBroker[pubsub.OptionChange](),
	}
}

// Events returns the broker publishing option change events.
func (s *CachedStore) Events() *pubsub.Broker[pubsub.OptionChange] {
	return s.events
}

// Close shuts down the event broker.
func (s *CachedStore) Close() {
	s.events.Close()
}

// Get returns the cached value for key, falling through to the backend on a
// miss. Backend errors (including ErrNotFound) are never cached.
func (s *CachedStore) Get(ctx context.Context, key string) (string, error) {
	return s.reader.Get(ctx, key, key, s.ttl)
}

// Set writes through to the backend, invalidates the cached value, and
// publishes an update event.
func (s *CachedStore) Set(ctx context.Context, key, value string) error {
	if err := s.backend.Set(ctx, key, value); err != nil {
		return err
	}

	if err := s.values.Delete(ctx, key); err != nil {
		log.ErrorErr(log.CatStore, "cache invalidation failed", err, "key", key)
	}
	s.events.Publish(pubsub.UpdatedEvent, pubsub.OptionChange{Key: key, Value: value})
	return nil
}

// Delete removes the option from the backend and the cache and publishes a
// delete event.
func (s *CachedStore) Delete(ctx context.Context, key string) error {
	if err := s.backend.Delete(ctx, key); err != nil {
		return err
	}

	if err := s.values.Delete(ctx, key); err != nil {
		log.ErrorErr(log.CatStore, "cache invalidation failed", err, "key", key)
	}
	s.events.Publish(pubsub.DeletedEvent, pubsub.OptionChange{Key: key})
	return nil
}

// List always reads from the backend; listings are rare and must be fresh.
func (s *CachedStore) List(ctx context.Context) ([]Option, error) {
	return s.backend.List(ctx)
}
