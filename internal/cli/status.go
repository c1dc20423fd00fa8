package cli

import "github.com/spf13/cobra"

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check that the API is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			var status StatusResult
			if err := client.Get("/api/", &status); err != nil {
				out.PrintError(err)
				return err
			}

			out.Print(status)
			return nil
		},
	}
}
