package main

import (
	"os"

	"github.com/mmeshcher/luhn-system/cmd/luhncheck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
