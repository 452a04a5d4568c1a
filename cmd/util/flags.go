package util

import (
	"github.com/spf13/pflag"

	"github.com/schism-dev/schismgen/config"
)

// ComputeFlags returns a flag set for the config file path, the compute
// backend selector, and logging.
func ComputeFlags(flagConf *config.Config, configFile *string) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVarP(configFile, "config", "c", *configFile, "Config file")
	f.StringVar(&flagConf.Compute, "compute", flagConf.Compute, "Compute backend. One of ['local', 'slurm']")
	f.StringVar(&flagConf.Logger.Level, "log-level", flagConf.Logger.Level, "Level of logging")

	return f
}

// LocalFlags returns a flag set for configuring a local MPI run.
func LocalFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVar(&flagConf.Local.Launcher, "launcher", flagConf.Local.Launcher, "MPI launcher command prefix")
	f.IntVar(&flagConf.Local.Nproc, "nproc", flagConf.Local.Nproc, "Number of MPI processes")
	f.StringVar(&flagConf.Local.Binary, "binary", flagConf.Local.Binary, "Path of the SCHISM binary")

	return f
}

// SlurmFlags returns a flag set for configuring a Slurm run.
func SlurmFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVar(&flagConf.Slurm.Launcher, "slurm-launcher", flagConf.Slurm.Launcher, "Launcher command prefix used inside the sbatch script")
	f.StringVar(&flagConf.Slurm.Binary, "slurm-binary", flagConf.Slurm.Binary, "Path of the SCHISM binary for slurm runs")
	f.StringVar(&flagConf.Slurm.Account, "account", flagConf.Slurm.Account, "Slurm account")
	f.StringVar(&flagConf.Slurm.Partition, "partition", flagConf.Slurm.Partition, "Slurm partition")
	f.IntVar(&flagConf.Slurm.Ntasks, "ntasks", flagConf.Slurm.Ntasks, "Slurm task count")
	f.StringVar(&flagConf.Slurm.Walltime, "walltime", flagConf.Slurm.Walltime, "Slurm wall-time limit, e.g. 02:00:00")
	f.StringVar(&flagConf.Slurm.MailUser, "mail-user", flagConf.Slurm.MailUser, "Mail address for Slurm job notifications")
	f.StringVar(&flagConf.Slurm.MailType, "mail-type", flagConf.Slurm.MailType, "Slurm mail notification type")
	f.StringVar(&flagConf.Slurm.Memory, "memory", flagConf.Slurm.Memory, "Slurm job memory limit, e.g. 16GB")
	f.StringVar(&flagConf.Slurm.JobFile, "job-file", flagConf.Slurm.JobFile, "Path the makefile writes the sbatch script to")
	f.StringVar(&flagConf.Slurm.LogFile, "log-file", flagConf.Slurm.LogFile, "Path Slurm writes the job output log to")

	return f
}
