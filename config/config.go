// Package config describes how a SCHISM run should be executed.
package config

import (
	"github.com/schism-dev/schismgen/logger"
)

// Compute backend names.
const (
	ComputeLocal = "local"
	ComputeSlurm = "slurm"
)

// Config describes configuration for schismgen.
type Config struct {
	// Compute selects the makefile variant: "local" or "slurm".
	Compute string
	Local   Local
	Slurm   Slurm
	Logger  logger.Config
}

// Local describes a run launched directly through an MPI launcher
// on the current host.
type Local struct {
	// Launcher is the command prefix used to start the solver,
	// e.g. "mpiexec -n".
	Launcher string
	// Nproc is the number of MPI processes to launch.
	// Defaults to the number of host CPU cores.
	Nproc int
	// Binary is the path of the SCHISM binary.
	Binary string
}

// Slurm describes a run handed to a Slurm batch queue.
type Slurm struct {
	// Launcher is the command prefix used inside the batch script,
	// e.g. "srun" or "ibrun".
	Launcher string
	// Binary is the path of the SCHISM binary.
	Binary string
	// Account is the Slurm account (#SBATCH -A). Optional.
	Account string
	// Partition is the Slurm partition (#SBATCH --partition). Optional.
	Partition string
	// Ntasks is the number of tasks (#SBATCH -n).
	Ntasks int
	// Walltime is the wall-time limit (#SBATCH --time),
	// e.g. "02:00:00". Optional.
	Walltime string
	// MailUser enables job mail notifications to the given address. Optional.
	MailUser string
	// MailType is the Slurm mail notification type.
	// Used only when MailUser is set; defaults to "all".
	MailType string
	// Memory is the job memory limit as a human readable size,
	// e.g. "16GB". Emitted as #SBATCH --mem. Optional.
	Memory string
	// JobFile is the path the generated makefile writes the sbatch
	// script to.
	JobFile string
	// LogFile is the path Slurm writes the job output log to.
	LogFile string
}
