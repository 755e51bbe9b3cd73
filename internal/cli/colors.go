package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamzrod/anybar"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the colors AnyBar understands",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, c := range anybar.Colors() {
			fmt.Fprintf(out, "  %s %s\n", dot(c), styleValue.Render(c.String()))
		}
		fmt.Fprintln(out, styleHint.Render("  plus the \""+anybar.QuitCommand+"\" command (anybar quit)"))
	},
}
