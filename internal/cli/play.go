package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tamzrod/anybar/internal/config"
	"github.com/tamzrod/anybar/internal/sequence"
)

var flagFollow bool

var playCmd = &cobra.Command{
	Use:   "play [config.yaml]",
	Short: "Play a timed color sequence",
	Long: `Play the sequence from the config file's "sequence" section.

Without a config file the traffic light demo runs: red, orange, green for
700ms each, then quit.

With --follow the sequence restarts whenever the config file changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagFollow, "follow", false, "Restart the sequence when the config file changes")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(args) == 0 {
		if flagFollow {
			return errors.New("--follow needs a config file")
		}
		return playOnce(ctx, cmd, sequence.TrafficLight(), nil)
	}

	path := args[0]
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if !flagFollow {
		seq, err := sequenceFrom(cfg)
		if err != nil {
			return err
		}
		return playOnce(ctx, cmd, seq, cfg.Anybar.Port)
	}

	changes, err := config.Follow(ctx, path)
	if err != nil {
		return err
	}
	return playFollow(ctx, cmd, path, cfg, changes)
}

func sequenceFrom(cfg *config.Config) (sequence.Config, error) {
	if cfg.Anybar.Sequence == nil {
		return sequence.Config{}, errors.New("config has no sequence section")
	}
	return sequence.FromConfig(*cfg.Anybar.Sequence)
}

func playOnce(ctx context.Context, cmd *cobra.Command, seq sequence.Config, port *int) error {
	bar, err := newIndicator(cmd, port)
	if err != nil {
		return err
	}
	p, err := sequence.New(seq, bar)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %d steps -> port %d\n",
		styleBrand.Render("playing"), len(seq.Steps), bar.Port())

	err = p.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// playFollow restarts the sequence on every valid config change. A broken
// config is reported and nothing is sent until the next good edit.
func playFollow(ctx context.Context, cmd *cobra.Command, path string, cfg *config.Config, changes <-chan struct{}) error {
	var (
		cancel context.CancelFunc
		done   chan error // nil while nothing is playing
	)
	start := func(cfg *config.Config) error {
		seq, err := sequenceFrom(cfg)
		if err != nil {
			return err
		}
		var runCtx context.Context
		runCtx, cancel = context.WithCancel(ctx)
		done = make(chan error, 1)
		go func(done chan<- error) { done <- playOnce(runCtx, cmd, seq, cfg.Anybar.Port) }(done)
		return nil
	}
	stop := func() {
		if done == nil {
			return
		}
		cancel()
		<-done
		done = nil
	}

	if err := start(cfg); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			stop()
			return nil

		case err := <-done:
			cancel()
			done = nil
			if err != nil {
				log.Printf("sequence failed (path=%s): %v", path, err)
			}

		case _, ok := <-changes:
			stop()
			if !ok {
				return nil
			}

			next, err := config.Load(path)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), styleError.Render("reload failed: ")+err.Error())
				continue
			}
			if next.Anybar.Sequence == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), styleError.Render("reload failed: ")+"config has no sequence section")
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), styleHint.Render("config reloaded"))
			if err := start(next); err != nil {
				return err
			}
		}
	}
}
