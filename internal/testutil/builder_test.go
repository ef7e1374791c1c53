package testutil

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/poststates/internal/post"
)

func TestBuilderInsertsPostsAndAssignments(t *testing.T) {
	db := NewTestDB(t)
	b := NewBuilder(t, db.Posts(), db.Options())

	b.WithPost("landing", Title("Welcome"), Content("# Welcome")).
		WithPost("draft", Draft()).
		WithAssignment("page_for_landing", "landing").
		WithOption("page_for_broken", "banana").
		Build()

	ctx := context.Background()

	landing := b.Post("landing")
	require.NotZero(t, landing.ID)
	require.Equal(t, post.StatusPublished, landing.Status)

	draft := b.Post("draft")
	require.Equal(t, post.StatusDraft, draft.Status)

	value, err := db.Options().Get(ctx, "page_for_landing")
	require.NoError(t, err)
	require.Equal(t, strconv.FormatInt(landing.ID, 10), value)

	value, err = db.Options().Get(ctx, "page_for_broken")
	require.NoError(t, err)
	require.Equal(t, "banana", value)
}

func TestDemoSiteData(t *testing.T) {
	db := NewTestDB(t)
	b := NewBuilder(t, db.Posts(), db.Options())
	b.WithDemoSiteData().Build()

	posts, err := db.Posts().List(context.Background(), post.ListFilter{})
	require.NoError(t, err)
	require.Len(t, posts, 4)

	opts, err := db.Options().List(context.Background())
	require.NoError(t, err)
	require.Len(t, opts, 2)
}
