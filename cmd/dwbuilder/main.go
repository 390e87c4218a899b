package main

import (
	"os"

	"dwbuilder/cmd/dwbuilder/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
