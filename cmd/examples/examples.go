// Package examples contains the "schismgen examples" command.
package examples

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/schism-dev/schismgen/config"
)

// Cmd represents the "examples" command.
var Cmd = &cobra.Command{
	Use:     "examples [name]",
	Aliases: []string{"example"},
	Short:   "Print example config files.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Print a list of example names and exit.
		if len(args) == 0 || args[0] == "list" {
			names := make([]string, 0, len(config.Examples))
			for name := range config.Examples {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		}

		text, ok := config.Examples[args[0]]
		if !ok {
			return fmt.Errorf("no example named %q. Run \"schismgen examples\" for a list", args[0])
		}
		fmt.Println(text)
		return nil
	},
}
