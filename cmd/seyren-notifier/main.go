package main

import (
	"os"

	"seyren-notifier/cmd/seyren-notifier/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
