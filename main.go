package main

import (
	"os"

	"github.com/stacklint/stacklint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
