package config

import (
	pscpu "github.com/shirou/gopsutil/v3/cpu"

	"github.com/schism-dev/schismgen/logger"
)

// DefaultConfig returns configuration with simple defaults.
// The local process count defaults to the number of physical cores
// detected on the host.
func DefaultConfig() Config {
	nproc := detectCores()

	return Config{
		Compute: ComputeLocal,
		Local: Local{
			Launcher: "mpiexec -n",
			Nproc:    nproc,
			Binary:   "pschism",
		},
		Slurm: Slurm{
			Launcher: "srun",
			Binary:   "pschism",
			Ntasks:   nproc,
			MailType: "all",
			JobFile:  "slurm.job",
			LogFile:  "slurm.log",
		},
		Logger: logger.DefaultConfig(),
	}
}

// detectCores returns the physical core count of the host,
// falling back to 1 when detection fails.
func detectCores() int {
	count, err := pscpu.Counts(false)
	if err != nil || count < 1 {
		return 1
	}
	return count
}
