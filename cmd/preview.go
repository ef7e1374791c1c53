package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/zjrosen/poststates/internal/hooks"
	"github.com/zjrosen/poststates/internal/optionstore"
	"github.com/zjrosen/poststates/internal/post"
	"github.com/zjrosen/poststates/internal/statelabel"
	"github.com/zjrosen/poststates/internal/ui/statebadge"
)

var previewCmd = &cobra.Command{
	Use:   "preview <id>",
	Short: "Render a post's content as markdown",
	Long: `Render a post's content to the terminal with its state labels in the
header line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id %q", args[0])
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
		p, err := s.posts.FindByID(ctx, id)
		if errors.Is(err, post.ErrNotFound) {
			return fmt.Errorf("post %d not found", id)
		}
		if err != nil {
			return err
		}

		dispatcher := hooks.NewDispatcher()
		states := make([]statelabel.State, 0, len(cfg.States))
		for _, sc := range cfg.States {
			states = append(states, statelabel.State{Key: sc.Key, Label: sc.Label})
		}
		statelabel.TryRegister(dispatcher, states, optionstore.Lookup(s.options), nil)

		labels := dispatcher.ApplyRowLabels(ctx, statelabel.NewLabels(), p)
		header := statebadge.Render(p, labels, statebadge.Config{})
		fmt.Fprintln(cmd.OutOrStdout(), header)

		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(cfg.UI.MarkdownStyle),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		out, err := renderer.Render(p.Content)
		if err != nil {
			return fmt.Errorf("rendering content: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
