package cmd

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"pos-pricing/core/strategy"
	"pos-pricing/core/ui"
	"pos-pricing/internal/config"
)

// strategiesCmd lists the strategies offered at checkout
var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the pricing strategies offered at checkout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)

		registry := strategy.NewRegistry()
		for _, s := range strategy.Defaults(decimal.Zero) {
			registry.Register(s)
		}

		table := w.NewTable("#", "Strategy", "Parameters")
		for i, s := range registry.List() {
			table.AddRow(strconv.Itoa(i+1), s.Name(), describeParameters(s))
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}

func describeParameters(s strategy.Strategy) string {
	switch s.(type) {
	case *strategy.ThresholdRebate:
		return "threshold > 0, rebate in [0, threshold]"
	case *strategy.PercentageDiscount:
		return "factor in [0, 1]"
	case *strategy.TaxAddition:
		return "rate >= 0"
	default:
		return "none"
	}
}
