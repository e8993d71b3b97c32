package main

import (
	"os"

	"github.com/dicklancube/quotesync/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
