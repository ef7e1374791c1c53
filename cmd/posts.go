package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/zjrosen/poststates/internal/hooks"
	"github.com/zjrosen/poststates/internal/optionstore"
	"github.com/zjrosen/poststates/internal/post"
	"github.com/zjrosen/poststates/internal/presentation"
	"github.com/zjrosen/poststates/internal/statelabel"
	"github.com/zjrosen/poststates/internal/ui/statebadge"
)

var (
	postsStatus string
	postsLimit  int
	postsJSON   bool
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List posts with their state labels",
	Long: `List posts newest first, each with the state labels its options
currently resolve to.

Examples:
  poststates posts
  poststates posts --status published
  poststates posts --limit 10 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStores()
		if err != nil {
			return err
		}
		defer s.Close()

		if s.posts == nil {
			return fmt.Errorf("db_path is not configured; posts need a database")
		}

		ctx := context.Background()
		posts, err := s.posts.List(ctx, post.ListFilter{Status: postsStatus, Limit: postsLimit})
		if err != nil {
			return err
		}

		dispatcher := hooks.NewDispatcher()
		states := make([]statelabel.State, 0, len(cfg.States))
		for _, sc := range cfg.States {
			states = append(states, statelabel.State{Key: sc.Key, Label: sc.Label})
		}
		statelabel.TryRegister(dispatcher, states, optionstore.Lookup(s.options), nil)

		if postsJSON {
			dtos := make([]presentation.PostDTO, 0, len(posts))
			for _, p := range posts {
				labels := dispatcher.ApplyRowLabels(ctx, statelabel.NewLabels(), p)
				dtos = append(dtos, presentation.FromPost(p, labels))
			}
			formatter := presentation.NewFormatter(cmd.OutOrStdout())
			return formatter.FormatPosts(dtos)
		}

		if len(posts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no posts")
			return nil
		}
		for _, p := range posts {
			labels := dispatcher.ApplyRowLabels(ctx, statelabel.NewLabels(), p)
			line := statebadge.Render(p, labels, statebadge.Config{})
			fmt.Fprintln(cmd.OutOrStdout(), ansi.Strip(line))
		}
		return nil
	},
}

func init() {
	postsCmd.Flags().StringVar(&postsStatus, "status", "", "filter by status")
	postsCmd.Flags().IntVar(&postsLimit, "limit", 0, "maximum number of posts")
	postsCmd.Flags().BoolVar(&postsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(postsCmd)
}
