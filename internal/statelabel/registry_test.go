package statelabel

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type testItem int64

func (i testItem) ItemID() int64 { return int64(i) }

// mapLookup serves option values from a plain map. Missing keys return "".
func mapLookup(values map[string]string) LookupFunc {
	return func(ctx context.Context, key string) (string, error) {
		return values[key], nil
	}
}

func TestNewValidConfiguration(t *testing.T) {
	r, err := New([]State{
		{Key: "page_for_landing", Label: "Landing Page"},
		{Key: "page_for_news", Label: "News Page"},
	}, mapLookup(nil))
	require.NoError(t, err)

	states := r.States()
	require.Len(t, states, 2)
	require.Equal(t, "page_for_landing", states[0].Key)
	require.Equal(t, "Landing Page", states[0].Label)
	require.Equal(t, "page_for_news", states[1].Key)
}

func TestNewFiltersInvalidEntries(t *testing.T) {
	r, err := New([]State{
		{Key: "", Label: "No Key"},
		{Key: "page_for_landing", Label: "Landing Page"},
		{Key: "page_for_empty", Label: ""},
		{Key: "page_for_news", Label: "News Page"},
	}, mapLookup(nil))
	require.NoError(t, err)

	states := r.States()
	require.Len(t, states, 2)
	require.Equal(t, "page_for_landing", states[0].Key)
	require.Equal(t, "page_for_news", states[1].Key)
}

func TestNewDuplicateKeysKeepFirstPositionLastLabel(t *testing.T) {
	r, err := New([]State{
		{Key: "page_for_landing", Label: "First"},
		{Key: "page_for_news", Label: "News Page"},
		{Key: "page_for_landing", Label: "Second"},
	}, mapLookup(nil))
	require.NoError(t, err)

	states := r.States()
	require.Len(t, states, 2)
	require.Equal(t, "page_for_landing", states[0].Key)
	require.Equal(t, "Second", states[0].Label)
	require.Equal(t, "page_for_news", states[1].Key)
}

func TestNewAllEntriesInvalid(t *testing.T) {
	r, err := New([]State{
		{Key: "", Label: "No Key"},
		{Key: "page_for_empty", Label: ""},
	}, mapLookup(nil))
	require.ErrorIs(t, err, ErrNoValidStates)
	require.Nil(t, r)
}

func TestNewEmptyStates(t *testing.T) {
	r, err := New(nil, mapLookup(nil))
	require.ErrorIs(t, err, ErrNoValidStates)
	require.Nil(t, r)
}

func TestNewNilLookup(t *testing.T) {
	r, err := New([]State{{Key: "page_for_landing", Label: "Landing Page"}}, nil)
	require.ErrorIs(t, err, ErrNilLookup)
	require.Nil(t, r)
}

func TestSetStatesReplacesMapping(t *testing.T) {
	r, err := New([]State{{Key: "page_for_landing", Label: "Landing Page"}}, mapLookup(nil))
	require.NoError(t, err)

	require.NoError(t, r.SetStates([]State{{Key: "page_for_news", Label: "News Page"}}))

	states := r.States()
	require.Len(t, states, 1)
	require.Equal(t, "page_for_news", states[0].Key)
}

func TestSetStatesKeepsMappingOnError(t *testing.T) {
	r, err := New([]State{{Key: "page_for_landing", Label: "Landing Page"}}, mapLookup(nil))
	require.NoError(t, err)

	require.ErrorIs(t, r.SetStates(nil), ErrNoValidStates)

	states := r.States()
	require.Len(t, states, 1)
	require.Equal(t, "page_for_landing", states[0].Key)
}

func TestResolveSingleMatch(t *testing.T) {
	r, err := New([]State{
		{Key: "page_for_landing", Label: "Landing Page"},
		{Key: "page_for_news", Label: "News Page"},
	}, mapLookup(map[string]string{
		"page_for_landing": "42",
		"page_for_news":    "7",
	}))
	require.NoError(t, err)

	labels := r.Resolve(context.Background(), NewLabels(), testItem(42))
	require.Equal(t, []string{"page_for_landing"}, labels.Keys())
	require.Equal(t, []string{"Landing Page"}, labels.Values())
}

func TestResolveNoMatchLeavesLabelsUntouched(t *testing.T) {
	r, err := New([]State{
		{Key: "page_for_landing", Label: "Landing Page"},
	}, mapLookup(map[string]string{"page_for_landing": "42"}))
	require.NoError(t, err)

	labels := NewLabels()
	labels.Set("sticky", "Sticky")
	labels = r.Resolve(context.Background(), labels, testItem(7))

	require.Equal(t, []string{"sticky"}, labels.Keys())
	require.Equal(t, []string{"Sticky"}, labels.Values())
}

func TestResolveMultipleMatchesInConfigurationOrder(t *testing.T) {
	r, err := New([]State{
		{Key: "page_for_landing", Label: "Landing Page"},
		{Key: "page_for_news", Label: "News Page"},
		{Key: "page_for_about", Label: "About Page"},
	}, mapLookup(map[string]string{
		"page_for_landing": "42",
		"page_for_news":    "42",
		"page_for_about":   "9",
	}))
	require.NoError(t, err)

	labels := r.Resolve(context.Background(), NewLabels(), testItem(42))
	require.Equal(t, []string{"page_for_landing", "page_for_news"}, labels.Keys())
	require.Equal(t, []string{"Landing Page", "News Page"}, labels.Values())
}

func TestResolveOverwritesExistingKeyInPlace(t *testing.T) {
	r, err := New([]State{
		{Key: "page_for_landing", Label: "Landing Page"},
	}, mapLookup(map[string]string{"page_for_landing": "42"}))
	require.NoError(t, err)

	labels := NewLabels()
	labels.Set("page_for_landing", "Stale Label")
	labels.Set("other", "Other")
	labels = r.Resolve(context.Background(), labels, testItem(42))

	require.Equal(t, []string{"page_for_landing", "other"}, labels.Keys())
	require.Equal(t, []string{"Landing Page", "Other"}, labels.Values())
}

func TestResolveNilLabels(t *testing.T) {
	r, err := New([]State{
		{Key: "page_for_landing", Label: "Landing Page"},
	}, mapLookup(map[string]string{"page_for_landing": "42"}))
	require.NoError(t, err)

	labels := r.Resolve(context.Background(), nil, testItem(42))
	require.NotNil(t, labels)
	require.Equal(t, []string{"Landing Page"}, labels.Values())
}

func TestResolveCoercion(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		id    int64
		match bool
	}{
		{"plain number", "42", 42, true},
		{"surrounding whitespace", "  42\n", 42, true},
		{"non-numeric", "banana", 42, false},
		{"non-numeric matches zero", "banana", 0, true},
		{"missing value matches zero", "", 0, true},
		{"trailing garbage", "42abc", 42, false},
		{"negative", "-1", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(
				[]State{{Key: "page_for_landing", Label: "Landing Page"}},
				mapLookup(map[string]string{"page_for_landing": tt.raw}),
			)
			require.NoError(t, err)

			labels := r.Resolve(context.Background(), NewLabels(), testItem(tt.id))
			_, matched := labels.Get("page_for_landing")
			require.Equal(t, tt.match, matched)
		})
	}
}

func TestResolveLookupErrorTreatedAsNoMatch(t *testing.T) {
	calls := 0
	lookup := func(ctx context.Context, key string) (string, error) {
		calls++
		if key == "page_for_landing" {
			return "", errors.New("store unavailable")
		}
		return "42", nil
	}
	r, err := New([]State{
		{Key: "page_for_landing", Label: "Landing Page"},
		{Key: "page_for_news", Label: "News Page"},
	}, lookup)
	require.NoError(t, err)

	labels := r.Resolve(context.Background(), NewLabels(), testItem(42))
	require.Equal(t, []string{"News Page"}, labels.Values())
	require.Equal(t, 2, calls)
}

func TestResolveIsIdempotent(t *testing.T) {
	r, err := New([]State{
		{Key: "page_for_landing", Label: "Landing Page"},
	}, mapLookup(map[string]string{"page_for_landing": "42"}))
	require.NoError(t, err)

	labels := NewLabels()
	labels = r.Resolve(context.Background(), labels, testItem(42))
	labels = r.Resolve(context.Background(), labels, testItem(42))

	require.Equal(t, 1, labels.Len())
	require.Equal(t, []string{"Landing Page"}, labels.Values())
}

type recordingDispatcher struct {
	fns []RowLabelFunc
}

func (d *recordingDispatcher) OnRowLabels(fn RowLabelFunc) {
	d.fns = append(d.fns, fn)
}

func TestAttachSubscribesOnce(t *testing.T) {
	r, err := New([]State{{Key: "page_for_landing", Label: "Landing Page"}}, mapLookup(nil))
	require.NoError(t, err)

	d := &recordingDispatcher{}
	require.NoError(t, r.Attach(d))
	require.Len(t, d.fns, 1)

	require.ErrorIs(t, r.Attach(d), ErrAlreadyAttached)
	require.Len(t, d.fns, 1)
}

func TestTryRegisterSuccess(t *testing.T) {
	d := &recordingDispatcher{}
	r := TryRegister(d,
		[]State{{Key: "page_for_landing", Label: "Landing Page"}},
		mapLookup(nil), nil)
	require.NotNil(t, r)
	require.Len(t, d.fns, 1)
}

func TestTryRegisterInvalidConfiguration(t *testing.T) {
	d := &recordingDispatcher{}
	var got error
	r := TryRegister(d, nil, mapLookup(nil), func(err error) { got = err })

	require.Nil(t, r)
	require.ErrorIs(t, got, ErrNoValidStates)
	require.Empty(t, d.fns)
}

func TestTryRegisterNilCallback(t *testing.T) {
	d := &recordingDispatcher{}
	require.NotPanics(t, func() {
		r := TryRegister(d, nil, mapLookup(nil), nil)
		require.Nil(t, r)
	})
}

func TestResolveMatchesExactlyConfiguredStates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "states")
		id := rapid.Int64Range(0, 100).Draw(t, "id")

		states := make([]State, 0, n)
		values := make(map[string]string, n)
		want := []string{}
		for i := 0; i < n; i++ {
			key := fmt.Sprintf("page_for_%d", i)
			target := rapid.Int64Range(0, 100).Draw(t, key)
			states = append(states, State{Key: key, Label: "Label " + key})
			values[key] = strconv.FormatInt(target, 10)
			if target == id {
				want = append(want, key)
			}
		}

		r, err := New(states, mapLookup(values))
		require.NoError(t, err)

		labels := r.Resolve(context.Background(), NewLabels(), testItem(id))
		require.Equal(t, want, labels.Keys())
	})
}
