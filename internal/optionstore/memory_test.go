package optionstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "page_for_landing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "page_for_landing", "42"))

	value, err := s.Get(ctx, "page_for_landing")
	require.NoError(t, err)
	require.Equal(t, "42", value)

	// Overwrite
	require.NoError(t, s.Set(ctx, "page_for_landing", "7"))
	value, err = s.Get(ctx, "page_for_landing")
	require.NoError(t, err)
	require.Equal(t, "7", value)
}

func TestMemoryStoreEmptyKey(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "")
	require.ErrorIs(t, err, ErrEmptyKey)
	require.ErrorIs(t, s.Set(ctx, "", "42"), ErrEmptyKey)
	require.ErrorIs(t, s.Delete(ctx, ""), ErrEmptyKey)
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "page_for_landing", "42"))
	require.NoError(t, s.Delete(ctx, "page_for_landing"))
	require.NoError(t, s.Delete(ctx, "page_for_landing"))

	_, err := s.Get(ctx, "page_for_landing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreListSortedByKey(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "page_for_news", "7"))
	require.NoError(t, s.Set(ctx, "page_for_about", "9"))
	require.NoError(t, s.Set(ctx, "page_for_landing", "42"))

	opts, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, opts, 3)
	require.Equal(t, "page_for_about", opts[0].Key)
	require.Equal(t, "page_for_landing", opts[1].Key)
	require.Equal(t, "page_for_news", opts[2].Key)
}

func TestLookupMapsNotFoundToEmpty(t *testing.T) {
	s := NewMemoryStore()
	lookup := Lookup(s)

	value, err := lookup(context.Background(), "page_for_landing")
	require.NoError(t, err)
	require.Equal(t, "", value)

	require.NoError(t, s.Set(context.Background(), "page_for_landing", "42"))
	value, err = lookup(context.Background(), "page_for_landing")
	require.NoError(t, err)
	require.Equal(t, "42", value)
}
