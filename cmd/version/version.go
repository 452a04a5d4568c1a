// Package version contains the "schismgen version" command.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schism-dev/schismgen/version"
)

// Cmd represents the "version" command.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of schismgen.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
