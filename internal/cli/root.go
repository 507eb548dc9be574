package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Config holds CLI configuration.
type Config struct {
	ServerURL string
	Output    string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	server := os.Getenv("ZIPCTL_SERVER")
	if server == "" {
		server = "http://localhost:8080"
	}
	return &Config{ServerURL: server, Output: "text"}
}

// state is shared by every subcommand of one root command.
type state struct {
	cfg    *Config
	client *Client
}

func (s *state) output(cmd *cobra.Command) *Output {
	return NewOutput(cmd.OutOrStdout(), s.cfg.Output)
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	st := &state{cfg: DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "zipctl",
		Short: "CLI tool for the zipabout rental API",
		Long: `zipctl talks to the zipabout rental API: register users and vehicles,
book and release rentals, and print receipts.

The demo command runs a full rental scenario in-process without a server.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			st.client = NewClient(st.cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&st.cfg.ServerURL, "server", st.cfg.ServerURL, "Server URL (env: ZIPCTL_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&st.cfg.Output, "output", "o", st.cfg.Output, "Output format: text, json")

	rootCmd.AddCommand(newHealthCmd(st))
	rootCmd.AddCommand(newUserCmd(st))
	rootCmd.AddCommand(newVehicleCmd(st))
	rootCmd.AddCommand(newRentalCmd(st))
	rootCmd.AddCommand(newDemoCmd(st))

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
