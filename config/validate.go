package config

import (
	"fmt"
	"regexp"

	"github.com/alecthomas/units"
	"github.com/hashicorp/go-multierror"
)

// Slurm accepts "minutes", "MM:SS", "HH:MM:SS" and "days-HH[:MM[:SS]]".
var walltimeRx = regexp.MustCompile(`^(\d+-)?\d{1,2}(:\d{2}){0,2}$`)

// Validate checks the fields of the selected compute backend and returns
// all problems found. Recognizing the backend name itself is the job of
// driver.NewMakefile.
func Validate(conf Config) error {
	var errs *multierror.Error

	switch conf.Compute {
	case ComputeSlurm:
		if conf.Slurm.Binary == "" {
			errs = multierror.Append(errs, fmt.Errorf("Slurm.Binary is required"))
		}
		if conf.Slurm.Ntasks < 1 {
			errs = multierror.Append(errs, fmt.Errorf("Slurm.Ntasks must be at least 1, got %d", conf.Slurm.Ntasks))
		}
		if conf.Slurm.JobFile == "" {
			errs = multierror.Append(errs, fmt.Errorf("Slurm.JobFile is required"))
		}
		if conf.Slurm.LogFile == "" {
			errs = multierror.Append(errs, fmt.Errorf("Slurm.LogFile is required"))
		}
		if conf.Slurm.Walltime != "" && !walltimeRx.MatchString(conf.Slurm.Walltime) {
			errs = multierror.Append(errs, fmt.Errorf("Slurm.Walltime %q is not a valid Slurm time limit", conf.Slurm.Walltime))
		}
		if conf.Slurm.Memory != "" {
			if _, err := units.ParseBase2Bytes(conf.Slurm.Memory); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("Slurm.Memory %q: %v", conf.Slurm.Memory, err))
			}
		}

	default:
		if conf.Local.Binary == "" {
			errs = multierror.Append(errs, fmt.Errorf("Local.Binary is required"))
		}
		if conf.Local.Launcher == "" {
			errs = multierror.Append(errs, fmt.Errorf("Local.Launcher is required"))
		}
		if conf.Local.Nproc < 1 {
			errs = multierror.Append(errs, fmt.Errorf("Local.Nproc must be at least 1, got %d", conf.Local.Nproc))
		}
	}

	return errs.ErrorOrNil()
}
