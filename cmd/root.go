// Package cmd contains the schismgen CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/schism-dev/schismgen/cmd/examples"
	"github.com/schism-dev/schismgen/cmd/generate"
	"github.com/schism-dev/schismgen/cmd/run"
	"github.com/schism-dev/schismgen/cmd/version"
)

// RootCmd represents the root command.
var RootCmd = &cobra.Command{
	Use:           "schismgen",
	Short:         "Generate makefile drivers for SCHISM runs.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	RootCmd.AddCommand(completionCmd)
	RootCmd.AddCommand(examples.Cmd)
	RootCmd.AddCommand(generate.Cmd)
	RootCmd.AddCommand(run.Cmd)
	RootCmd.AddCommand(version.Cmd)
}
