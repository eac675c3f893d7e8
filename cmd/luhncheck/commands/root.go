// Package commands содержит команды CLI luhncheck.
package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmeshcher/luhn-system/internal/luhn"
)

// Execute запускает корневую команду CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd собирает дерево команд luhncheck.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "luhncheck",
		Short:        "Luhn and ISBN checksum validator",
		SilenceUsage: true,
	}

	root.AddCommand(demoCmd(), validateCmd(), isbnCmd())
	return root
}

// printVerdict печатает строку вида "'<number>' -> VALID|INVALID|ERROR: <message>".
func printVerdict(w io.Writer, v *luhn.Validator, number string) {
	valid, err := v.Validate(number)
	switch {
	case err != nil:
		fmt.Fprintf(w, "'%s' -> ERROR: %v\n", number, err)
	case valid:
		fmt.Fprintf(w, "'%s' -> VALID\n", number)
	default:
		fmt.Fprintf(w, "'%s' -> INVALID\n", number)
	}
}
