package adminlist

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/poststates/internal/hooks"
	"github.com/zjrosen/poststates/internal/optionstore"
	"github.com/zjrosen/poststates/internal/post"
	"github.com/zjrosen/poststates/internal/statelabel"
)

type fakeRepo struct {
	posts []*post.Post
	err   error
}

func (r *fakeRepo) Save(ctx context.Context, p *post.Post) error { return nil }
func (r *fakeRepo) FindByID(ctx context.Context, id int64) (*post.Post, error) {
	return nil, post.ErrNotFound
}
func (r *fakeRepo) List(ctx context.Context, f post.ListFilter) ([]*post.Post, error) {
	return r.posts, r.err
}
func (r *fakeRepo) Delete(ctx context.Context, id int64) error { return nil }

// newTestModel builds a model over two posts, with post 1 assigned as the
// landing page.
func newTestModel(t *testing.T) Model {
	t.Helper()

	repo := &fakeRepo{posts: []*post.Post{
		{ID: 1, GUID: "guid-1", Title: "Welcome", Status: post.StatusPublished, Content: "# Welcome"},
		{ID: 2, GUID: "guid-2", Title: "Archive", Status: post.StatusDraft},
	}}

	store := optionstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "page_for_landing", "1"))

	dispatcher := hooks.NewDispatcher()
	registry := statelabel.TryRegister(dispatcher,
		[]statelabel.State{{Key: "page_for_landing", Label: "Landing Page"}},
		optionstore.Lookup(store), nil)
	require.NotNil(t, registry)

	return New(context.Background(), repo, dispatcher, nil, Config{ShowStatusBar: true})
}

// load runs the row loading command and feeds its message back into Update.
func load(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.loadRows()()
	m, _ = m.Update(msg)
	return m
}

func TestLoadRowsResolvesLabels(t *testing.T) {
	m := load(t, newTestModel(t))

	require.Len(t, m.rows, 2)
	require.Equal(t, []string{"Landing Page"}, m.rows[0].labels.Values())
	require.Equal(t, 0, m.rows[1].labels.Len())
}

func TestViewShowsLabelsNextToTitles(t *testing.T) {
	m := load(t, newTestModel(t))

	view := ansi.Strip(m.View())
	require.Contains(t, view, "[1] Welcome — Landing Page (published)")
	require.Contains(t, view, "[2] Archive (draft)")
}

func TestViewEmptyState(t *testing.T) {
	m := New(context.Background(), &fakeRepo{}, hooks.NewDispatcher(), nil, Config{})
	m = load(t, m)

	view := ansi.Strip(m.View())
	require.Contains(t, view, "no posts")
}

func TestViewShowsLoadError(t *testing.T) {
	m := New(context.Background(), &fakeRepo{err: errors.New("boom")},
		hooks.NewDispatcher(), nil, Config{})
	m = load(t, m)

	view := ansi.Strip(m.View())
	require.Contains(t, view, "error: boom")
}

func TestStatusBarCountsPostsAndDecorators(t *testing.T) {
	m := load(t, newTestModel(t))

	view := ansi.Strip(m.View())
	require.Contains(t, view, "2 posts · 1 decorators")
}

func TestCursorNavigation(t *testing.T) {
	m := load(t, newTestModel(t))
	require.Equal(t, 0, m.cursor)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	require.Equal(t, 1, m.cursor)

	// Clamped at the bottom
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	require.Equal(t, 1, m.cursor)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	require.Equal(t, 0, m.cursor)
}

func TestRefreshMsgReloads(t *testing.T) {
	m := load(t, newTestModel(t))

	_, cmd := m.Update(RefreshMsg{})
	require.NotNil(t, cmd)
	_, ok := cmd().(rowsLoadedMsg)
	require.True(t, ok)
}

func TestPreviewToggle(t *testing.T) {
	m := load(t, newTestModel(t))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.previewing)
	require.Contains(t, ansi.Strip(m.View()), "esc to go back")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.False(t, m.previewing)
}

func TestQuitKey(t *testing.T) {
	m := load(t, newTestModel(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}
