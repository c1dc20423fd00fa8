package cli

import "github.com/spf13/cobra"

func newTrackCmd() *cobra.Command {
	trackCmd := &cobra.Command{
		Use:   "track",
		Short: "Browse the track catalog",
	}

	trackCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			var tracks []Track
			if err := client.Get("/api/tracks", &tracks); err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(tracks)
			return nil
		},
	})

	return trackCmd
}
