package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Manage game sessions",
	}

	sessionCmd.AddCommand(newSessionStartCmd())
	sessionCmd.AddCommand(newSessionFinishCmd())

	return sessionCmd
}

func newSessionStartCmd() *cobra.Command {
	var characterType string

	cmd := &cobra.Command{
		Use:   "start <player-id> <track-name>",
		Short: "Start a new game session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			body := map[string]string{
				"player_id":      args[0],
				"track_name":     args[1],
				"character_type": characterType,
			}

			var created Session
			if err := client.Post("/api/game-sessions", body, &created); err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(created)
			return nil
		},
	}

	cmd.Flags().StringVar(&characterType, "character", "on_foot", "Character type: on_foot, vehicle")

	return cmd
}

func newSessionFinishCmd() *cobra.Command {
	var (
		score      int
		distance   float64
		timePlayed int
		completed  bool
	)

	cmd := &cobra.Command{
		Use:   "finish <session-id>",
		Short: "Report a session's result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			body := map[string]any{
				"score":       score,
				"distance":    distance,
				"time_played": timePlayed,
				"completed":   completed,
			}

			var updated Session
			if err := client.Put(fmt.Sprintf("/api/game-sessions/%s", args[0]), body, &updated); err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(updated)
			return nil
		},
	}

	cmd.Flags().IntVar(&score, "score", 0, "Final score")
	cmd.Flags().Float64Var(&distance, "distance", 0, "Distance covered")
	cmd.Flags().IntVar(&timePlayed, "time", 0, "Time played in seconds")
	cmd.Flags().BoolVar(&completed, "completed", true, "Whether the run was completed")

	return cmd
}
