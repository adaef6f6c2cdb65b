package main

import (
	"os"

	"github.com/keldric/stargen/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
