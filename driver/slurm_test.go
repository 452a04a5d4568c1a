package driver

import (
	"strings"
	"testing"

	"github.com/andreyvit/diff"
)

func TestSlurmMakefileRender(t *testing.T) {
	m, err := NewMakefile(slurmConf())
	if err != nil {
		t.Fatal(err)
	}
	actual, err := m.Render()
	if err != nil {
		t.Fatal(err)
	}

	expected := strings.ReplaceAll(`# Makefile driver generated by schismgen.
MAKEFILE_PATH:=$(abspath $(lastword $(MAKEFILE_LIST)))
ROOT_DIR:=$(dir $(MAKEFILE_PATH))

SLURM_JOB_FILE:=slurm.job
SLURM_LOG_FILE:=slurm.log


default: slurm


symlinks:
    @set -e;\
    if [ ! -z $${SYMLINK_OUTPUTS_DIR} ];\
    then \
        ln -sf $${SYMLINK_OUTPUTS_DIR} $${ROOT_DIR}outputs;\
    else \
        mkdir -p $${ROOT_DIR}outputs;\
    fi;\
    touch outputs/mirror.out outputs/fatal.error


slurm: symlinks
    @set -e;\
    printf "#!/bin/bash --login\n" > ${SLURM_JOB_FILE};\
    printf "#SBATCH -D .\n" >> ${SLURM_JOB_FILE};\
    printf "#SBATCH -A ocean123\n" >> ${SLURM_JOB_FILE};\
    printf "#SBATCH --mail-user=modeler@example.edu\n" >> ${SLURM_JOB_FILE};\
    printf "#SBATCH --mail-type=all\n" >> ${SLURM_JOB_FILE};\
    printf "#SBATCH --output=${SLURM_LOG_FILE}\n" >> ${SLURM_JOB_FILE};\
    printf "#SBATCH -n 48\n" >> ${SLURM_JOB_FILE};\
    printf "#SBATCH --time=02:00:00\n" >> ${SLURM_JOB_FILE};\
    printf "#SBATCH --partition=compute\n" >> ${SLURM_JOB_FILE};\
    printf "\nset -e\n" >> ${SLURM_JOB_FILE};\
    printf "ibrun /opt/schism" >> ${SLURM_JOB_FILE}


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


tail:
    tail -f outputs/mirror.out  outputs/fatal.error
`, "    ", "\t")

	if actual != expected {
		t.Fatal("unexpected makefile content:\n" + diff.LineDiff(expected, actual))
	}
}

func TestSlurmTargets(t *testing.T) {
	m, err := NewMakefile(slurmConf())
	if err != nil {
		t.Fatal(err)
	}
	out, err := m.Render()
	if err != nil {
		t.Fatal(err)
	}

	for _, target := range []string{"default:", "symlinks:", "slurm:", "run:", "tail:"} {
		if n := strings.Count(out, "\n"+target); n != 1 {
			t.Fatalf("expected target %q exactly once, found %d", target, n)
		}
	}
}

func TestSlurmMailDirectives(t *testing.T) {
	conf := slurmConf()
	conf.Slurm.MailUser = ""
	out, err := (&SlurmMakefile{Conf: conf.Slurm}).Render()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "--mail") {
		t.Fatal("mail directives emitted without a mail user:\n" + out)
	}

	conf.Slurm.MailUser = "modeler@example.edu"
	conf.Slurm.MailType = ""
	out, err = (&SlurmMakefile{Conf: conf.Slurm}).Render()
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "--mail-user=modeler@example.edu"); n != 1 {
		t.Fatalf("expected one mail-user directive, found %d", n)
	}
	// Mail type defaults to "all" when only the address is configured.
	if n := strings.Count(out, "--mail-type=all"); n != 1 {
		t.Fatalf("expected one mail-type directive, found %d", n)
	}
}

func TestSlurmWalltimeDirective(t *testing.T) {
	conf := slurmConf()
	conf.Slurm.Walltime = ""
	out, err := (&SlurmMakefile{Conf: conf.Slurm}).Render()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "--time") {
		t.Fatal("walltime directive emitted without a walltime:\n" + out)
	}

	conf.Slurm.Walltime = "02:00:00"
	out, err = (&SlurmMakefile{Conf: conf.Slurm}).Render()
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "--time=02:00:00"); n != 1 {
		t.Fatalf("expected one walltime directive, found %d", n)
	}
}

func TestSlurmPartitionDirective(t *testing.T) {
	conf := slurmConf()
	conf.Slurm.Partition = ""
	out, err := (&SlurmMakefile{Conf: conf.Slurm}).Render()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "--partition") {
		t.Fatal("partition directive emitted without a partition:\n" + out)
	}
}

func TestSlurmMemoryDirective(t *testing.T) {
	conf := slurmConf()
	conf.Slurm.Memory = "16GB"
	out, err := (&SlurmMakefile{Conf: conf.Slurm}).Render()
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "--mem=16384M"); n != 1 {
		t.Fatalf("expected one memory directive, found %d", n)
	}

	conf.Slurm.Memory = "not-a-size"
	_, err = (&SlurmMakefile{Conf: conf.Slurm}).Render()
	if err == nil {
		t.Fatal("expected error for unparseable memory size")
	}
}

// The run prerequisite expands through a nested substitution that does not
// test file existence the way it appears to. It is long-standing behavior
// that generated makefiles carry it unchanged, so this test pins the exact
// text rather than a corrected form.
func TestSlurmRunTargetPrerequisite(t *testing.T) {
	out, err := (&SlurmMakefile{Conf: slurmConf().Slurm}).Render()
	if err != nil {
		t.Fatal(err)
	}
	want := `run: $(if ! $("$(wildcard $(SLURM_JOB_FILE))",""), slurm)`
	if !strings.Contains(out, want) {
		t.Fatal("run target prerequisite changed:\n" + diff.LineDiff(want, out))
	}
}

func TestSlurmJobIdExtraction(t *testing.T) {
	out, err := (&SlurmMakefile{Conf: slurmConf().Slurm}).Render()
	if err != nil {
		t.Fatal(err)
	}
	// The job id is the last whitespace token of the sbatch output.
	if !strings.Contains(out, `awk '{print $$NF}'`) {
		t.Fatal("missing job id extraction")
	}
	if !strings.Contains(out, `scancel "$${job_id}"`) {
		t.Fatal("missing cancellation hook")
	}
	if !strings.Contains(out, "squeue -j $${job_id}") {
		t.Fatal("missing queue polling")
	}
}
