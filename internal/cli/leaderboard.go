package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the top players by high score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			var players []Player
			if err := client.Get(fmt.Sprintf("/api/leaderboard?limit=%d", limit), &players); err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(players)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of players to show")

	return cmd
}
