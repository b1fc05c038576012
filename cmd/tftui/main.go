package main

import (
	"os"

	"github.com/decker502/tftui/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
