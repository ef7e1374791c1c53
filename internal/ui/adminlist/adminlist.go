// Package adminlist implements the admin posts list: every post on a row,
// state labels resolved through the hook dispatcher and rendered next to the
// title.
package adminlist

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/zjrosen/poststates/internal/hooks"
	"github.com/zjrosen/poststates/internal/keys"
	"github.com/zjrosen/poststates/internal/log"
	"github.com/zjrosen/poststates/internal/post"
	"github.com/zjrosen/poststates/internal/pubsub"
	"github.com/zjrosen/poststates/internal/statelabel"
	"github.com/zjrosen/poststates/internal/ui/statebadge"
	"github.com/zjrosen/poststates/internal/ui/styles"
)

// Config configures the admin list model.
type Config struct {
	ShowStatusBar bool
	ShowGUIDs     bool
	MarkdownStyle string // "dark" (default) or "light"
	AutoRefresh   bool
}

// row pairs a post with its resolved label set.
type row struct {
	post   *post.Post
	labels *statelabel.Labels
}

// Model is the bubbletea model for the admin list.
type Model struct {
	ctx        context.Context
	repo       post.Repository
	dispatcher *hooks.Dispatcher
	listener   *pubsub.ContinuousListener[pubsub.OptionChange]
	cfg        Config

	rows      []row
	cursor    int
	width     int
	height    int
	keys      keys.KeyMap
	help      help.Model
	previewing bool
	preview    string
	statusMsg  string
	err        error
}

// RefreshMsg asks the list to reload its rows. The parent model sends it
// after a config hot reload changes the registered states.
type RefreshMsg struct{}

// rowsLoadedMsg carries freshly loaded and decorated rows.
type rowsLoadedMsg struct {
	rows []row
}

// loadErrMsg carries a load failure.
type loadErrMsg struct {
	err error
}

// New creates the admin list model. The listener may be nil when auto
// refresh is disabled.
func New(ctx context.Context, repo post.Repository, dispatcher *hooks.Dispatcher,
	listener *pubsub.ContinuousListener[pubsub.OptionChange], cfg Config) Model {
	return Model{
		ctx:        ctx,
		repo:       repo,
		dispatcher: dispatcher,
		listener:   listener,
		cfg:        cfg,
		keys:       keys.DefaultKeyMap(),
		help:       help.New(),
	}
}

// Init loads posts and, when auto refresh is on, starts listening for option
// change events.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadRows()}
	if m.cfg.AutoRefresh && m.listener != nil {
		cmds = append(cmds, m.listener.Listen())
	}
	return tea.Batch(cmds...)
}

// loadRows reads posts and resolves their labels through the dispatcher.
func (m Model) loadRows() tea.Cmd {
	return func() tea.Msg {
		posts, err := m.repo.List(m.ctx, post.ListFilter{})
		if err != nil {
			log.ErrorErr(log.CatUI, "failed to load posts", err)
			return loadErrMsg{err: err}
		}

		rows := make([]row, 0, len(posts))
		for _, p := range posts {
			labels := m.dispatcher.ApplyRowLabels(m.ctx, statelabel.NewLabels(), p)
			rows = append(rows, row{post: p, labels: labels})
		}
		log.Debug(log.CatUI, "posts loaded", "count", len(rows))
		return rowsLoadedMsg{rows: rows}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case rowsLoadedMsg:
		m.rows = msg.rows
		m.err = nil
		if m.cursor >= len(m.rows) && len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
		}
		return m, nil

	case loadErrMsg:
		m.err = msg.err
		return m, nil

	case RefreshMsg:
		return m, m.loadRows()

	case pubsub.Event[pubsub.OptionChange]:
		log.Debug(log.CatUI, "option changed, refreshing", "key", msg.Payload.Key)
		cmds := []tea.Cmd{m.loadRows()}
		if m.listener != nil {
			cmds = append(cmds, m.listener.Listen())
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.previewing {
		switch msg.String() {
		case "esc", "q", "enter":
			m.previewing = false
			m.preview = ""
		}
		return m, nil
	}

	switch {
	case msg.String() == "k" || msg.String() == "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case msg.String() == "j" || msg.String() == "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case msg.String() == "r":
		m.statusMsg = "refreshing..."
		return m, m.loadRows()
	case msg.String() == "enter":
		return m.openPreview()
	case msg.String() == "y":
		if m.cursor < len(m.rows) {
			m.statusMsg = "guid: " + m.rows[m.cursor].post.GUID
		}
	case msg.String() == "w":
		m.cfg.ShowStatusBar = !m.cfg.ShowStatusBar
	case msg.String() == "?":
		m.help.ShowAll = !m.help.ShowAll
	case msg.String() == "q" || msg.String() == "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// openPreview renders the selected post's markdown body with glamour.
func (m Model) openPreview() (Model, tea.Cmd) {
	if m.cursor >= len(m.rows) {
		return m, nil
	}
	p := m.rows[m.cursor].post

	style := m.cfg.MarkdownStyle
	if style == "" {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(m.width-4, 20)),
	)
	if err != nil {
		m.statusMsg = "preview failed: " + err.Error()
		return m, nil
	}

	body := p.Content
	if body == "" {
		body = "*no content*"
	}
	rendered, err := renderer.Render("# " + p.Title + "\n\n" + body)
	if err != nil {
		m.statusMsg = "preview failed: " + err.Error()
		return m, nil
	}

	m.previewing = true
	m.preview = rendered
	return m, nil
}

// View renders the list.
func (m Model) View() string {
	if m.previewing {
		return m.preview + styles.MutedStyle.Render("\n esc to go back")
	}

	var b strings.Builder

	b.WriteString(styles.TitleStyle.Bold(true).Render("Posts"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styles.MutedStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	if len(m.rows) == 0 && m.err == nil {
		b.WriteString(styles.MutedStyle.Render("no posts — run 'poststates seed' to create demo data"))
		b.WriteString("\n")
	}

	for i, r := range m.rows {
		line := statebadge.Render(r.post, r.labels, statebadge.Config{
			ShowSelection: true,
			Selected:      i == m.cursor,
			MaxWidth:      m.width,
		})
		if m.cfg.ShowGUIDs {
			line += " " + styles.PostIDStyle.Render(r.post.GUID)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.cfg.ShowStatusBar {
		b.WriteString("\n")
		b.WriteString(m.statusBar())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) statusBar() string {
	parts := []string{fmt.Sprintf("%d posts", len(m.rows))}
	if m.dispatcher != nil {
		parts = append(parts, fmt.Sprintf("%d decorators", m.dispatcher.DecoratorCount()))
	}
	if m.statusMsg != "" {
		parts = append(parts, m.statusMsg)
	}
	return styles.StatusBarStyle.Render(strings.Join(parts, " · "))
}
