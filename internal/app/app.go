// Package app contains the root application model.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/zjrosen/poststates/internal/config"
	"github.com/zjrosen/poststates/internal/hooks"
	"github.com/zjrosen/poststates/internal/log"
	"github.com/zjrosen/poststates/internal/post"
	"github.com/zjrosen/poststates/internal/pubsub"
	"github.com/zjrosen/poststates/internal/statelabel"
	"github.com/zjrosen/poststates/internal/ui/adminlist"
	"github.com/zjrosen/poststates/internal/watcher"
)

// Model is the root application state. It owns the admin list, the state
// registry, and the config watcher that hot-reloads the states section.
type Model struct {
	admin    adminlist.Model
	registry *statelabel.Registry

	configPath string

	watcherHandle *watcher.Watcher
	reloadCh      <-chan struct{}
}

// configReloadMsg signals that the config file changed on disk.
type configReloadMsg struct{}

// Options wires the application model together.
type Options struct {
	Ctx        context.Context
	Repo       post.Repository
	Dispatcher *hooks.Dispatcher
	Registry   *statelabel.Registry // may be nil when no states are configured
	Listener   *pubsub.ContinuousListener[pubsub.OptionChange]
	ConfigPath string
	Cfg        config.Config
}

// New creates the root model. When auto refresh is enabled and a config path
// is known, a file watcher hot-reloads the states section on config edits.
// Watcher init errors are ignored; the app works fine without hot reload.
func New(opts Options) Model {
	m := Model{
		registry:   opts.Registry,
		configPath: opts.ConfigPath,
		admin: adminlist.New(opts.Ctx, opts.Repo, opts.Dispatcher, opts.Listener, adminlist.Config{
			ShowStatusBar: opts.Cfg.UI.ShowStatusBar,
			ShowGUIDs:     opts.Cfg.UI.ShowGUIDs,
			MarkdownStyle: opts.Cfg.UI.MarkdownStyle,
			AutoRefresh:   opts.Cfg.AutoRefresh,
		}),
	}

	if opts.Cfg.AutoRefresh && opts.ConfigPath != "" && opts.Registry != nil {
		w, err := watcher.New(watcher.DefaultConfig(opts.ConfigPath))
		if err == nil {
			if ch, err := w.Start(); err == nil {
				m.watcherHandle = w
				m.reloadCh = ch
			} else {
				_ = w.Stop()
			}
		}
	}

	return m
}

// Init starts the admin list and the config reload loop.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.admin.Init()}
	if m.reloadCh != nil {
		cmds = append(cmds, waitForReload(m.reloadCh))
	}
	return tea.Batch(cmds...)
}

// waitForReload turns a watcher notification into a tea.Msg.
func waitForReload(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return configReloadMsg{}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case configReloadMsg:
		m.reloadStates()
		var cmd tea.Cmd
		m.admin, cmd = m.admin.Update(adminlist.RefreshMsg{})
		return m, tea.Batch(cmd, waitForReload(m.reloadCh))

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			// Stop the watcher before the program exits
			if m.watcherHandle != nil {
				_ = m.watcherHandle.Stop()
				m.watcherHandle = nil
			}
		}
	}

	var cmd tea.Cmd
	m.admin, cmd = m.admin.Update(msg)
	return m, cmd
}

// reloadStates re-reads the states section from the config file and replaces
// the registry mapping. Invalid or empty state sections leave the previous
// mapping in place.
func (m Model) reloadStates() {
	v := viper.New()
	v.SetConfigFile(m.configPath)
	if err := v.ReadInConfig(); err != nil {
		log.ErrorErr(log.CatConfig, "config reload failed", err, "path", m.configPath)
		return
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.ErrorErr(log.CatConfig, "config reload failed", err, "path", m.configPath)
		return
	}
	if err := config.ValidateStates(cfg.States); err != nil {
		log.ErrorErr(log.CatConfig, "config reload rejected", err, "path", m.configPath)
		return
	}

	states := make([]statelabel.State, 0, len(cfg.States))
	for _, s := range cfg.States {
		states = append(states, statelabel.State{Key: s.Key, Label: s.Label})
	}
	if err := m.registry.SetStates(states); err != nil {
		log.ErrorErr(log.CatConfig, "config reload rejected", err, "path", m.configPath)
		return
	}
	log.Info(log.CatConfig, "states reloaded", "count", len(states))
}

// View renders the application.
func (m Model) View() string {
	return m.admin.View()
}
