package main

import (
	"os"

	"github.com/schism-dev/schismgen/cmd"
	"github.com/schism-dev/schismgen/logger"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		logger.PrintSimpleError(err)
		os.Exit(1)
	}
}
