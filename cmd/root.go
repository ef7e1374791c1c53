package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/poststates/internal/app"
	"github.com/zjrosen/poststates/internal/config"
	"github.com/zjrosen/poststates/internal/hooks"
	"github.com/zjrosen/poststates/internal/infrastructure/sqlite"
	"github.com/zjrosen/poststates/internal/log"
	"github.com/zjrosen/poststates/internal/optionstore"
	"github.com/zjrosen/poststates/internal/paths"
	"github.com/zjrosen/poststates/internal/post"
	"github.com/zjrosen/poststates/internal/pubsub"
	"github.com/zjrosen/poststates/internal/statelabel"
	"github.com/zjrosen/poststates/internal/tracing"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "poststates",
	Short:   "A terminal ui for post state labels",
	Long:    `A terminal user interface that shows posts with their state labels, resolved from option values mapping option keys to post ids.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/poststates/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs to .poststates/debug.log")
	rootCmd.PersistentFlags().String("db", "",
		"path to sqlite database")
	rootCmd.Flags().Bool("no-auto-refresh", false,
		"disable automatic list refresh when option values change")

	// Bind flags to viper
	_ = viper.BindPFlag("db_path", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_refresh", defaults.AutoRefresh)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Project-local config first, then the user config directory.
		found := false
		for _, p := range paths.ConfigSearchPaths() {
			if _, err := os.Stat(p); err == nil {
				viper.SetConfigFile(p)
				found = true
				break
			}
		}
		if !found {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "poststates"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .poststates/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".poststates/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)

	if debug {
		if cleanup, err := log.Init(".poststates/debug.log"); err == nil {
			cobra.OnFinalize(cleanup)
		}
	}
}

// stores bundles the persistence handles shared by the TUI and the CLI
// subcommands.
type stores struct {
	posts   post.Repository
	options optionstore.Store
	cached  *optionstore.CachedStore
	db      *sqlite.DB
}

func (s *stores) Close() {
	if s.cached != nil {
		s.cached.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
}

// openStores opens the configured database. An empty db_path falls back to an
// in-memory option store with no persisted posts.
func openStores() (*stores, error) {
	s := &stores{}

	dbPath := paths.ResolveDBPath(cfg.DBPath)
	if dbPath == "" {
		s.options = optionstore.NewMemoryStore()
	} else {
		db, err := sqlite.NewDB(dbPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		s.db = db
		s.posts = db.Posts()
		s.options = db.Options()
	}

	if !cfg.Cache.Disabled {
		ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
		s.cached = optionstore.NewCachedStore(s.options, ttl)
		s.options = s.cached
	}

	return s, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := config.ValidateStates(cfg.States); err != nil {
		return fmt.Errorf("invalid state configuration: %w", err)
	}

	// Handle --no-auto-refresh flag (negated logic)
	if noAutoRefresh, _ := cmd.Flags().GetBool("no-auto-refresh"); noAutoRefresh {
		cfg.AutoRefresh = false
	}

	s, err := openStores()
	if err != nil {
		return err
	}
	defer s.Close()

	if s.posts == nil {
		return fmt.Errorf("db_path is not configured; posts need a database")
	}

	ctx := context.Background()

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = provider.Shutdown(shutdownCtx)
	}()

	lookup := optionstore.Lookup(s.options)
	if provider.Enabled() {
		lookup = tracing.WrapLookup(provider.Tracer(), lookup)
	}

	dispatcher := hooks.NewDispatcher()
	states := make([]statelabel.State, 0, len(cfg.States))
	for _, sc := range cfg.States {
		states = append(states, statelabel.State{Key: sc.Key, Label: sc.Label})
	}
	registry := statelabel.TryRegister(dispatcher, states, lookup, func(err error) {
		log.Warn(log.CatState, "state registration skipped", "error", err)
	})

	var listener *pubsub.ContinuousListener[pubsub.OptionChange]
	if cfg.AutoRefresh && s.cached != nil {
		listener = pubsub.NewContinuousListener(ctx, s.cached.Events())
	}

	configFilePath := viper.ConfigFileUsed()

	model := app.New(app.Options{
		Ctx:        ctx,
		Repo:       s.posts,
		Dispatcher: dispatcher,
		Registry:   registry,
		Listener:   listener,
		ConfigPath: configFilePath,
		Cfg:        cfg,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
