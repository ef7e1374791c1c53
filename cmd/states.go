package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/poststates/internal/config"
	"github.com/zjrosen/poststates/internal/optionstore"
	"github.com/zjrosen/poststates/internal/presentation"
	"github.com/zjrosen/poststates/internal/statelabel"
)

var statesListJSON bool

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "Inspect the configured state mapping",
}

var statesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured states and their current assignments",
	Long: `List the configured states in registration order, each with the post id
its option currently points at. Unset options show as "-".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ValidateStates(cfg.States); err != nil {
			return fmt.Errorf("invalid state configuration: %w", err)
		}
		if len(cfg.States) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no states configured")
			return nil
		}

		s, err := openStores()
		if err != nil {
			return err
		}
		defer s.Close()

		states := make([]statelabel.State, 0, len(cfg.States))
		for _, sc := range cfg.States {
			states = append(states, statelabel.State{Key: sc.Key, Label: sc.Label})
		}
		registry, err := statelabel.New(states, optionstore.Lookup(s.options))
		if err != nil {
			return err
		}

		ctx := context.Background()

		if statesListJSON {
			dtos := make([]presentation.StateDTO, 0, len(registry.States()))
			for _, st := range registry.States() {
				value, err := s.options.Get(ctx, st.Key)
				if err != nil {
					value = ""
				}
				dtos = append(dtos, presentation.FromState(st, value))
			}
			formatter := presentation.NewFormatter(cmd.OutOrStdout())
			return formatter.FormatStates(dtos)
		}

		for _, st := range registry.States() {
			value, err := s.options.Get(ctx, st.Key)
			if err != nil || value == "" {
				value = "-"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-24s %s\n", st.Key, st.Label, value)
		}
		return nil
	},
}

var statesAddCmd = &cobra.Command{
	Use:   "add <key> <label>",
	Short: "Add or relabel a state in the config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.ConfigFileUsed()
		if path == "" {
			return fmt.Errorf("no config file in use; pass --config or run once to create one")
		}

		states := cfg.States
		found := false
		for i, s := range states {
			if s.Key == args[0] {
				states[i].Label = args[1]
				found = true
				break
			}
		}
		if !found {
			states = append(states, config.StateConfig{Key: args[0], Label: args[1]})
		}
		if err := config.ValidateStates(states); err != nil {
			return err
		}

		if err := config.SaveStates(path, states); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
		return nil
	},
}

var statesRemoveCmd = &cobra.Command{
	Use:   "remove <key>",
	Short: "Remove a state from the config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.ConfigFileUsed()
		if path == "" {
			return fmt.Errorf("no config file in use; pass --config or run once to create one")
		}

		states := make([]config.StateConfig, 0, len(cfg.States))
		for _, s := range cfg.States {
			if s.Key != args[0] {
				states = append(states, s)
			}
		}
		if len(states) == len(cfg.States) {
			return fmt.Errorf("state %q is not configured", args[0])
		}

		if err := config.SaveStates(path, states); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
		return nil
	},
}

func init() {
	statesListCmd.Flags().BoolVar(&statesListJSON, "json", false, "output as JSON")
	statesCmd.AddCommand(statesListCmd, statesAddCmd, statesRemoveCmd)
	rootCmd.AddCommand(statesCmd)
}
