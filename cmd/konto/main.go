package main

import (
	"os"

	"github.com/konto-dev/konto/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
