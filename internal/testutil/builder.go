package testutil

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/poststates/internal/optionstore"
	"github.com/zjrosen/poststates/internal/post"
)

// Builder accumulates posts and options and inserts them in order.
type Builder struct {
	t       *testing.T
	posts   post.Repository
	options optionstore.Store

	pending []postData
	assigns []assignData
	byName  map[string]*post.Post
}

// assignData points an option key at a named post, or holds a raw value.
type assignData struct {
	key      string
	postName string
	raw      string
}

// NewBuilder creates a builder writing through the given repositories.
func NewBuilder(t *testing.T, posts post.Repository, options optionstore.Store) *Builder {
	t.Helper()
	return &Builder{t: t, posts: posts, options: options, byName: make(map[string]*post.Post)}
}

// WithPost adds a post with optional configuration. The name identifies the
// post for later WithAssignment calls and Post lookups.
func (b *Builder) WithPost(name string, opts ...PostOption) *Builder {
	data := defaultPost(name)
	for _, opt := range opts {
		opt(&data)
	}
	b.pending = append(b.pending, data)
	return b
}

// WithAssignment points the option at the named post's id once built.
func (b *Builder) WithAssignment(key, postName string) *Builder {
	b.assigns = append(b.assigns, assignData{key: key, postName: postName})
	return b
}

// WithOption stores a raw option value, bypassing post id resolution.
// Useful for non-numeric or dangling values.
func (b *Builder) WithOption(key, value string) *Builder {
	b.assigns = append(b.assigns, assignData{key: key, raw: value})
	return b
}

// Build inserts all accumulated data: posts first, then option assignments
// resolved against the inserted ids.
func (b *Builder) Build() {
	b.t.Helper()
	ctx := context.Background()

	for _, data := range b.pending {
		p := &post.Post{
			Title:   data.title,
			Status:  data.status,
			Content: data.content,
		}
		require.NoError(b.t, b.posts.Save(ctx, p))
		b.byName[data.name] = p
	}
	b.pending = nil

	for _, a := range b.assigns {
		value := a.raw
		if a.postName != "" {
			p, ok := b.byName[a.postName]
			require.True(b.t, ok, "unknown post %q in assignment %q", a.postName, a.key)
			value = strconv.FormatInt(p.ID, 10)
		}
		require.NoError(b.t, b.options.Set(ctx, a.key, value))
	}
	b.assigns = nil
}

// Post returns the built post registered under name.
func (b *Builder) Post(name string) *post.Post {
	b.t.Helper()
	p, ok := b.byName[name]
	require.True(b.t, ok, "unknown post %q", name)
	return p
}
