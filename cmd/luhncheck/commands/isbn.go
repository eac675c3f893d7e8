package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmeshcher/luhn-system/internal/isbn"
)

func isbnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isbn <code,length>",
		Short: "Validate an ISBN-10 or ISBN-13 code, e.g. 9780306406157,13",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			code, length, err := isbn.ParseInput(strings.Join(args, ""))
			if err != nil {
				fmt.Fprintln(out, "Invalid input format.")
				return nil
			}

			valid, err := isbn.Validate(code, length)
			if errors.Is(err, isbn.ErrLength) {
				fmt.Fprintln(out, "Length must be 10 or 13.")
				return nil
			}
			if err != nil {
				return err
			}

			if valid {
				fmt.Fprintln(out, "Valid ISBN code.")
			} else {
				fmt.Fprintln(out, "Invalid ISBN code.")
			}
			return nil
		},
	}
}
