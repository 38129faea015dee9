package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/rustyeddy/lotsize/market"
	"github.com/spf13/cobra"
)

var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "List the known currency pairs",
	Long: `Print the pip value and volatility reference for every pair in the
built-in table. Pairs not listed here use a pip value of 10 and a
volatility of 100 pips.`,
	Args: cobra.NoArgs,
	RunE: runPairs,
}

func init() {
	rootCmd.AddCommand(pairsCmd)
}

func runPairs(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PAIR\tPIP VALUE\tLOW\tHIGH\tCURRENT")
	for _, sym := range market.Symbols() {
		m := market.Pairs[sym]
		fmt.Fprintf(tw, "%s\t%.2f\t%.0f\t%.0f\t%.0f\n",
			m.Name, m.PipValue, m.Volatility.Low, m.Volatility.High, m.Volatility.Current)
	}
	return tw.Flush()
}
