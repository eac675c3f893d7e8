package commands

import (
	"github.com/spf13/cobra"

	"github.com/mmeshcher/luhn-system/internal/luhn"
)

var demoSamples = []string{
	"234-566 980-864",
	"453914889",
	"4111-1111-1111-1111",
	"1234 5678 9012 3456",
	"",
	"abc",
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Validate a fixed list of sample numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := luhn.New()
			for _, sample := range demoSamples {
				printVerdict(cmd.OutOrStdout(), v, sample)
			}
			return nil
		},
	}
}
