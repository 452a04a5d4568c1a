// Package generate contains the "schismgen generate" command.
package generate

import (
	"github.com/spf13/cobra"

	"github.com/schism-dev/schismgen/cmd/util"
	"github.com/schism-dev/schismgen/config"
	"github.com/schism-dev/schismgen/driver"
	"github.com/schism-dev/schismgen/logger"
)

var log = logger.New("generate")

var (
	configFile string
	flagConf   config.Config
	force      bool
)

// Cmd represents the "generate" command.
var Cmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Generate a makefile driver for a SCHISM run.",
	Long: `Generate writes a makefile that launches the SCHISM solver, either
directly through an MPI launcher or by submitting an sbatch script to a
Slurm queue. The makefile is written to the given path, "Makefile" by
default. An existing file is only replaced with --force.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := util.MergeConfigFileWithFlags(configFile, flagConf)
		if err != nil {
			return err
		}
		logger.Configure(conf.Logger)

		if err := config.Validate(conf); err != nil {
			return err
		}

		path := "Makefile"
		if len(args) == 1 {
			path = args[0]
		}

		m, err := driver.NewMakefile(conf)
		if err != nil {
			return err
		}
		if err := driver.Write(m, path, force); err != nil {
			return err
		}

		log.Info("Wrote makefile driver", "path", path, "compute", conf.Compute)
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.BoolVarP(&force, "force", "f", false, "Overwrite an existing makefile")
	flags.AddFlagSet(util.ComputeFlags(&flagConf, &configFile))
	flags.AddFlagSet(util.LocalFlags(&flagConf))
	flags.AddFlagSet(util.SlurmFlags(&flagConf))
}
