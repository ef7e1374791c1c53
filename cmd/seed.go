package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/poststates/internal/post"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with sample posts and options",
	Long: `Populate the database with a handful of sample posts and point the
default state options at them. Useful for trying out the admin list on a
fresh database.`,
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
		samples := []*post.Post{
			{
				Title:   "Welcome",
				Status:  post.StatusPublished,
				Content: "# Welcome\n\nThis is the landing page.",
			},
			{
				Title:   "News",
				Status:  post.StatusPublished,
				Content: "# News\n\nLatest updates live here.",
			},
			{
				Title:   "About us",
				Status:  post.StatusPublished,
				Content: "# About\n\nWho we are and what we do.",
			},
			{
				Title:   "Unfinished draft",
				Status:  post.StatusDraft,
				Content: "Work in progress.",
			},
		}
		for _, p := range samples {
			if err := s.posts.Save(ctx, p); err != nil {
				return fmt.Errorf("seeding post %q: %w", p.Title, err)
			}
		}

		assignments := map[string]int64{
			"page_for_landing": samples[0].ID,
			"page_for_news":    samples[1].ID,
		}
		for key, id := range assignments {
			if err := s.options.Set(ctx, key, fmt.Sprintf("%d", id)); err != nil {
				return fmt.Errorf("seeding option %q: %w", key, err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d posts and %d options\n",
			len(samples), len(assignments))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
