package cli

import "github.com/spf13/cobra"

func newDialogueCmd() *cobra.Command {
	var playerName string

	cmd := &cobra.Command{
		Use:   "dialogue <context> <track-name>",
		Short: "Generate patois dialogue for a game moment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			body := map[string]string{
				"context":     args[0],
				"track_name":  args[1],
				"player_name": playerName,
			}

			var resolved Dialogue
			if err := client.Post("/api/dialogue", body, &resolved); err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(resolved)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerName, "player-name", "", "Player name for the dialogue")

	return cmd
}
