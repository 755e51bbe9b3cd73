// Package cli implements the anybar CLI commands.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/tamzrod/anybar"
)

var (
	flagPort    int
	flagTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "anybar",
	Short: "Drive an AnyBar status indicator over UDP",
	Long: `anybar sends color and quit commands to a running AnyBar on 127.0.0.1.

Commands are fire-and-forget: AnyBar never answers, so success only means
the datagram left this process.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagPort, "port", "p", anybar.DefaultPort, "AnyBar UDP port (overrides the config file)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", time.Second, "UDP write timeout")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(quitCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(watchCmd)
}

// newIndicator builds a handle for the effective port: the --port flag when
// given, else the config port, else the default.
func newIndicator(cmd *cobra.Command, cfgPort *int) (*anybar.Anybar, error) {
	port := flagPort
	if cfgPort != nil && !cmd.Flags().Changed("port") {
		port = *cfgPort
	}
	return anybar.NewWithTransport(port, anybar.UDPTransport{Timeout: flagTimeout})
}
