package main

import (
	"os"

	"github.com/grafctl/grafctl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
