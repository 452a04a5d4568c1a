package driver

import (
	"strings"

	"github.com/alecthomas/units"
	"github.com/kballard/go-shellquote"

	"github.com/schism-dev/schismgen/config"
)

// slurmVars names the sbatch script and its output log. The targets below
// refer to these through make variables so a user can point a run at a
// different job file without regenerating the makefile.
const slurmVars = `
SLURM_JOB_FILE:={{.JobFile}}
SLURM_LOG_FILE:={{.LogFile}}
`

const slurmDefaultTarget = `
default: slurm
`

// slurmTarget writes the sbatch submission script. Optional directives are
// resolved here, at generation time, so the script only carries the
// directives the run was configured with.
const slurmTarget = `
slurm: symlinks
    @set -e;\
    printf "#!/bin/bash --login\n" > ${SLURM_JOB_FILE};\
    printf "#SBATCH -D .\n" >> ${SLURM_JOB_FILE};\
{{- if .Account}}
    printf "#SBATCH -A {{.Account}}\n" >> ${SLURM_JOB_FILE};\
{{- end}}
{{- if .MailUser}}
    printf "#SBATCH --mail-user={{.MailUser}}\n" >> ${SLURM_JOB_FILE};\
    printf "#SBATCH --mail-type={{.MailType}}\n" >> ${SLURM_JOB_FILE};\
{{- end}}
    printf "#SBATCH --output=${SLURM_LOG_FILE}\n" >> ${SLURM_JOB_FILE};\
    printf "#SBATCH -n {{.Ntasks}}\n" >> ${SLURM_JOB_FILE};\
{{- if .MemoryMb}}
    printf "#SBATCH --mem={{.MemoryMb}}M\n" >> ${SLURM_JOB_FILE};\
{{- end}}
{{- if .Walltime}}
    printf "#SBATCH --time={{.Walltime}}\n" >> ${SLURM_JOB_FILE};\
{{- end}}
{{- if .Partition}}
    printf "#SBATCH --partition={{.Partition}}\n" >> ${SLURM_JOB_FILE};\
{{- end}}
    printf "\nset -e\n" >> ${SLURM_JOB_FILE};\
    printf "{{.LaunchCmd}}" >> ${SLURM_JOB_FILE}
`

// slurmRunTarget submits the job, tails the scheduler and solver logs while
// the job is queued or running, and cancels the job on interrupt. The last
// whitespace token of the sbatch output is the job id.
//
// The prerequisite uses a nested-substitution wildcard test of dubious
// correctness; its current expansion is what existing runs depend on, so it
// is preserved verbatim. See TestSlurmRunTargetPrerequisite.
const slurmRunTarget = `
run: $(if ! $("$(wildcard $(SLURM_JOB_FILE))",""), slurm)
    @set -e;\
    touch ${SLURM_LOG_FILE};\
    eval 'tail -f ${SLURM_LOG_FILE} outputs/mirror.out outputs/fatal.error &';\
    tail_pid=$${!};\
    job_id=$$(sbatch ${SLURM_JOB_FILE});\
    printf "$${job_id}\n";\
    job_id=$$(echo $${job_id} | awk '{print $$NF}');\
    ctrl_c() { \
        scancel "$${job_id}";\
    };\
    while [ $$(squeue -j $${job_id} | wc -l) -eq 2 ];\
    do \
        trap ctrl_c SIGINT;\
    done;\
    kill "$${tail_pid}"
`

// SlurmMakefile drives a run handed to a Slurm batch queue. Its run target
// submits the generated sbatch script instead of launching the solver
// directly.
type SlurmMakefile struct {
	Conf config.Slurm
}

// Render returns the complete makefile text.
func (m *SlurmMakefile) Render() (string, error) {
	mailType := m.Conf.MailType
	if mailType == "" {
		mailType = "all"
	}

	var memoryMb int64
	if m.Conf.Memory != "" {
		mem, err := units.ParseBase2Bytes(m.Conf.Memory)
		if err != nil {
			return "", err
		}
		memoryMb = int64(mem / units.Mebibyte)
	}

	data := map[string]interface{}{
		"JobFile":   m.Conf.JobFile,
		"LogFile":   m.Conf.LogFile,
		"Account":   m.Conf.Account,
		"Partition": m.Conf.Partition,
		"Ntasks":    m.Conf.Ntasks,
		"Walltime":  m.Conf.Walltime,
		"MailUser":  m.Conf.MailUser,
		"MailType":  mailType,
		"MemoryMb":  memoryMb,
		"LaunchCmd": m.launchCmd(),
	}

	vars, err := renderTemplate("slurm-vars", slurmVars, data)
	if err != nil {
		return "", err
	}
	slurm, err := renderTemplate("slurm-job", slurmTarget, data)
	if err != nil {
		return "", err
	}

	return assemble([]string{
		header,
		vars,
		slurmDefaultTarget,
		symlinksTarget,
		slurm,
		slurmRunTarget,
		tailTarget,
	}), nil
}

// launchCmd is the command line placed at the end of the sbatch script.
// Slurm provides the task count, so unlike the local variant there is no
// process count argument.
func (m *SlurmMakefile) launchCmd() string {
	parts := []string{m.Conf.Launcher, shellquote.Join(m.Conf.Binary)}
	return strings.TrimSpace(strings.Join(parts, " "))
}
