package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tamzrod/anybar/internal/config"
	"github.com/tamzrod/anybar/internal/watch"
)

var flagQuitOnExit bool

var watchCmd = &cobra.Command{
	Use:   "watch <config.yaml>",
	Short: "Mirror a Modbus device status block onto the indicator",
	Long: `Poll one device status block over Modbus TCP and show its health:

  unknown  question     ok       green
  error    red          stale    orange (also used when the read fails)
  disabled black        other    exclamation

Colors can be overridden in the config file's watch.palette section.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&flagQuitOnExit, "quit-on-exit", false, "Send quit to AnyBar when the watcher stops")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	if cfg.Anybar.Watch == nil {
		return errors.New("config has no watch section")
	}

	bar, err := newIndicator(cmd, cfg.Anybar.Port)
	if err != nil {
		return err
	}

	w, closeClient, err := watch.Build(*cfg.Anybar.Watch, bar)
	if err != nil {
		return fmt.Errorf("watcher build failed: %w", err)
	}
	defer closeClient()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s slot %d -> port %d\n",
		styleBrand.Render("watching"), cfg.Anybar.Watch.Endpoint, cfg.Anybar.Watch.BaseSlot, bar.Port())

	err = w.Run(ctx)
	if flagQuitOnExit {
		if qerr := bar.Quit(); qerr != nil {
			return qerr
		}
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
