// Package run contains the "schismgen run" command.
package run

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	cmdutil "github.com/schism-dev/schismgen/cmd/util"
	"github.com/schism-dev/schismgen/config"
	"github.com/schism-dev/schismgen/driver"
	"github.com/schism-dev/schismgen/logger"
	"github.com/schism-dev/schismgen/util"
)

var log = logger.New("run")

var (
	configFile string
	flagConf   config.Config
	dir        string
	force      bool
)

// Cmd represents the "run" command.
var Cmd = &cobra.Command{
	Use:   "run",
	Short: "Generate the makefile driver if needed, then run the solver via make.",
	Long: `Run generates a makefile driver in the run directory, reusing an
existing one unless --force is given, and then invokes "make run" there.
For slurm runs this submits the job and blocks until it leaves the queue;
an interrupt cancels the submitted job.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := cmdutil.MergeConfigFileWithFlags(configFile, flagConf)
		if err != nil {
			return err
		}
		logger.Configure(conf.Logger)

		if err := config.Validate(conf); err != nil {
			return err
		}

		path := filepath.Join(dir, "Makefile")
		m, err := driver.NewMakefile(conf)
		if err != nil {
			return err
		}

		err = driver.Write(m, path, force)
		switch {
		case err == nil:
			log.Info("Wrote makefile driver", "path", path)
		case errors.Is(err, fs.ErrExist):
			log.Info("Reusing existing makefile driver", "path", path)
		default:
			return err
		}

		// Give make's own trap a chance to cancel a submitted job
		// before the process is torn down.
		ctx := util.SignalContext(context.Background(), time.Second, syscall.SIGINT, syscall.SIGTERM)

		mk := exec.CommandContext(ctx, "make", "run")
		mk.Dir = dir
		mk.Stdin = os.Stdin
		mk.Stdout = os.Stdout
		mk.Stderr = os.Stderr
		return mk.Run()
	},
}

func init() {
	flags := Cmd.Flags()
	flags.StringVarP(&dir, "dir", "d", ".", "Run directory")
	flags.BoolVarP(&force, "force", "f", false, "Regenerate the makefile even if one exists")
	flags.AddFlagSet(cmdutil.ComputeFlags(&flagConf, &configFile))
	flags.AddFlagSet(cmdutil.LocalFlags(&flagConf))
	flags.AddFlagSet(cmdutil.SlurmFlags(&flagConf))
}
