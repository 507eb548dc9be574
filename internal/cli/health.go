package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result map[string]string
			if err := st.client.Get(cmd.Context(), "/health", &result); err != nil {
				return err
			}
			st.output(cmd).Print(result, result["status"])
			return nil
		},
	}
}
