package presentation

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/poststates/internal/optionstore"
	"github.com/zjrosen/poststates/internal/post"
	"github.com/zjrosen/poststates/internal/statelabel"
)

func TestFromPostIncludesLabelsInOrder(t *testing.T) {
	p := &post.Post{ID: 42, GUID: "g", Title: "Welcome", Status: post.StatusPublished}
	labels := statelabel.NewLabels()
	labels.Set("page_for_landing", "Landing Page")
	labels.Set("page_for_news", "News Page")

	dto := FromPost(p, labels)
	require.Equal(t, int64(42), dto.ID)
	require.Equal(t, []string{"Landing Page", "News Page"}, dto.Labels)
}

func TestFromPostNilLabels(t *testing.T) {
	dto := FromPost(&post.Post{ID: 1}, nil)
	require.NotNil(t, dto.Labels)
	require.Empty(t, dto.Labels)
}

func TestFromState(t *testing.T) {
	assigned := FromState(statelabel.State{Key: "page_for_landing", Label: "Landing Page"}, "42")
	require.True(t, assigned.Matched)
	require.Equal(t, "42", assigned.Value)

	unassigned := FromState(statelabel.State{Key: "page_for_news", Label: "News Page"}, "")
	require.False(t, unassigned.Matched)
}

func TestFormatOptions(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(&buf)

	opts := []optionstore.Option{
		{Key: "page_for_landing", Value: "42", UpdatedAt: time.Unix(1700000000, 0).UTC()},
	}
	require.NoError(t, formatter.FormatOptions(FromOptions(opts)))

	var decoded []OptionDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "page_for_landing", decoded[0].Key)
	require.Equal(t, "42", decoded[0].Value)
}
