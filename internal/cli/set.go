package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tamzrod/anybar"
)

var setCmd = &cobra.Command{
	Use:   "set <color>",
	Short: "Change the indicator color",
	Long: `Change the indicator color.

Colors: ` + strings.Join(colorNames(), ", "),
	Args:      cobra.ExactArgs(1),
	ValidArgs: colorNames(),
	RunE:      runSet,
}

var quitCmd = &cobra.Command{
	Use:   "quit",
	Short: "Ask AnyBar to exit",
	Args:  cobra.NoArgs,
	RunE:  runQuit,
}

func runSet(cmd *cobra.Command, args []string) error {
	c, err := anybar.ParseColor(args[0])
	if err != nil {
		return fmt.Errorf("%w (see 'anybar colors')", err)
	}

	bar, err := newIndicator(cmd, nil)
	if err != nil {
		return err
	}
	if err := bar.SetColor(c); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		dot(c),
		styleValue.Render(c.String()),
		styleLabel.Render(fmt.Sprintf("-> %s:%d", anybar.Host, bar.Port())))
	return nil
}

func runQuit(cmd *cobra.Command, args []string) error {
	bar, err := newIndicator(cmd, nil)
	if err != nil {
		return err
	}
	if err := bar.Quit(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		styleSuccess.Render("quit sent"),
		styleLabel.Render(fmt.Sprintf("-> %s:%d", anybar.Host, bar.Port())))
	return nil
}

func colorNames() []string {
	all := anybar.Colors()
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.String()
	}
	return names
}
