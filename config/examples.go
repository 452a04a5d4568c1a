package config

// Examples are example config files, keyed by short name.
// They are printed by the "schismgen examples" command.
var Examples = map[string]string{
	"local": exampleLocal,
	"slurm": exampleSlurm,
}

var exampleLocal = `# Run SCHISM directly through an MPI launcher.
Compute: local
Local:
  Launcher: mpiexec -n
  Nproc: 4
  Binary: /opt/schism/bin/pschism
Logger:
  Level: info
`

var exampleSlurm = `# Submit SCHISM to a Slurm batch queue.
Compute: slurm
Slurm:
  Launcher: ibrun
  Binary: /opt/schism/bin/pschism
  Account: ocean123
  Partition: compute
  Ntasks: 48
  Walltime: "08:00:00"
  MailUser: modeler@example.edu
  MailType: all
  Memory: 64GB
  JobFile: slurm.job
  LogFile: slurm.log
Logger:
  Level: info
`
