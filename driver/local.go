package driver

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/schism-dev/schismgen/config"
)

// localVars dumps the execution configuration at the top of the makefile.
const localVars = `
MPI_LAUNCHER:={{.Launcher}}
NPROC:={{.Nproc}}
SCHISM_BINARY:={{.Binary}}
`

const localDefaultTarget = `
default: symlinks
`

// localRunTarget tails the solver logs in the background while the solver
// runs, then stops the tail once the solver exits.
const localRunTarget = `
run: default
    @set -e;\
    eval 'tail -f outputs/mirror.out  outputs/fatal.error &';\
    tail_pid=$${!};\
    {{.LaunchCmd}};\
    kill "$${tail_pid}"
`

// DefaultMakefile drives a run launched directly through an MPI launcher
// on the current host.
type DefaultMakefile struct {
	Conf config.Local
}

// Render returns the complete makefile text.
func (m *DefaultMakefile) Render() (string, error) {
	data := map[string]interface{}{
		"Launcher":  m.Conf.Launcher,
		"Nproc":     m.Conf.Nproc,
		"Binary":    m.Conf.Binary,
		"LaunchCmd": m.launchCmd(),
	}

	vars, err := renderTemplate("local-vars", localVars, data)
	if err != nil {
		return "", err
	}
	run, err := renderTemplate("local-run", localRunTarget, data)
	if err != nil {
		return "", err
	}

	return assemble([]string{
		header,
		vars,
		localDefaultTarget,
		symlinksTarget,
		run,
		tailTarget,
	}), nil
}

// launchCmd is the command line that starts the solver,
// e.g. "mpiexec -n 4 /opt/schism/bin/pschism".
func (m *DefaultMakefile) launchCmd() string {
	parts := []string{
		m.Conf.Launcher,
		fmt.Sprintf("%d", m.Conf.Nproc),
		shellquote.Join(m.Conf.Binary),
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
