package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	playerCmd := &cobra.Command{
		Use:   "player",
		Short: "Manage players",
	}

	playerCmd.AddCommand(newPlayerCreateCmd())
	playerCmd.AddCommand(newPlayerGetCmd())

	return playerCmd
}

func newPlayerCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			var created Player
			err := client.Post("/api/players", map[string]string{"name": args[0]}, &created)
			if err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(created)
			return nil
		},
	}
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a player by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			var found Player
			err := client.Get(fmt.Sprintf("/api/players/%s", args[0]), &found)
			if err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(found)
			return nil
		},
	}
}
