package commands

import (
	"github.com/spf13/cobra"

	"github.com/mmeshcher/luhn-system/internal/luhn"
)

func validateCmd() *cobra.Command {
	var clean, double, sum string

	cmd := &cobra.Command{
		Use:   "validate <number>...",
		Short: "Validate card numbers with the Luhn algorithm",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := luhn.NewByNames(clean, double, sum)
			if err != nil {
				return err
			}
			for _, number := range args {
				printVerdict(cmd.OutOrStdout(), v, number)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&clean, "clean", luhn.StrategyCanonical, "digit cleaning strategy (canonical, regexp)")
	cmd.Flags().StringVar(&double, "double", luhn.StrategyCanonical, "alternate doubling strategy (canonical, positional)")
	cmd.Flags().StringVar(&sum, "sum", luhn.StrategyCanonical, "sum strategy (canonical, digits)")

	return cmd
}
