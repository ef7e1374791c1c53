package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/poststates/internal/optionstore"
	"github.com/zjrosen/poststates/internal/presentation"
)

var optionCmd = &cobra.Command{
	Use:   "option",
	Short: "Inspect and modify stored options",
	Long: `Inspect and modify the key/value options that drive state labels.

Setting an option whose key is configured as a state causes the matching
post to show that state's label in the admin list.

Examples:
  # Mark post 42 as the landing page
  poststates option set page_for_landing 42

  # Show the stored value
  poststates option get page_for_landing

  # List everything
  poststates option list

  # Clear the assignment
  poststates option delete page_for_landing`,
}

var optionGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value stored for a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStores()
		if err != nil {
			return err
		}
		defer s.Close()

		value, err := s.options.Get(context.Background(), args[0])
		if errors.Is(err, optionstore.ErrNotFound) {
			return fmt.Errorf("option %q is not set", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var optionSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a value for a key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStores()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.options.Set(context.Background(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
		return nil
	},
}

var optionListJSON bool

var optionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored options",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStores()
		if err != nil {
			return err
		}
		defer s.Close()

		opts, err := s.options.List(context.Background())
		if err != nil {
			return err
		}
		if optionListJSON {
			formatter := presentation.NewFormatter(cmd.OutOrStdout())
			return formatter.FormatOptions(presentation.FromOptions(opts))
		}
		if len(opts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no options stored")
			return nil
		}
		for _, o := range opts {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", o.Key, o.Value)
		}
		return nil
	},
}

var optionDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Remove a stored option",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStores()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.options.Delete(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

func init() {
	optionListCmd.Flags().BoolVar(&optionListJSON, "json", false, "output as JSON")
	optionCmd.AddCommand(optionGetCmd, optionSetCmd, optionListCmd, optionDeleteCmd)
	rootCmd.AddCommand(optionCmd)
}
