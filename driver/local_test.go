package driver

import (
	"strings"
	"testing"

	"github.com/andreyvit/diff"
)

func TestDefaultMakefileRender(t *testing.T) {
	m, err := NewMakefile(localConf())
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

MPI_LAUNCHER:=mpirun
NPROC:=4
SCHISM_BINARY:=/opt/schism


default: symlinks


symlinks:
    @set -e;\
    if [ ! -z $${SYMLINK_OUTPUTS_DIR} ];\
    then \
        ln -sf $${SYMLINK_OUTPUTS_DIR} $${ROOT_DIR}outputs;\
    else \
        mkdir -p $${ROOT_DIR}outputs;\
    fi;\
    touch outputs/mirror.out outputs/fatal.error


run: default
    @set -e;\
    eval 'tail -f outputs/mirror.out  outputs/fatal.error &';\
    tail_pid=$${!};\
    mpirun 4 /opt/schism;\
    kill "$${tail_pid}"


tail:
    tail -f outputs/mirror.out  outputs/fatal.error
`, "    ", "\t")

	if actual != expected {
		t.Fatal("unexpected makefile content:\n" + diff.LineDiff(expected, actual))
	}
}

func TestDefaultMakefileTargets(t *testing.T) {
	m, err := NewMakefile(localConf())
	if err != nil {
		t.Fatal(err)
	}
	out, err := m.Render()
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "mpirun 4 /opt/schism") {
		t.Fatal("missing launch command")
	}
	for _, target := range []string{"default:", "symlinks:", "run:", "tail:"} {
		if n := strings.Count(out, "\n"+target); n != 1 {
			t.Fatalf("expected target %q exactly once, found %d", target, n)
		}
	}
	if strings.Contains(out, "slurm") {
		t.Fatal("local makefile must not mention slurm")
	}
}

func TestRecipeLinesUseTabs(t *testing.T) {
	for _, conf := range []interface{ Render() (string, error) }{
		&DefaultMakefile{Conf: localConf().Local},
		&SlurmMakefile{Conf: slurmConf().Slurm},
	} {
		out, err := conf.Render()
		if err != nil {
			t.Fatal(err)
		}
		for _, line := range strings.Split(out, "\n") {
			if strings.HasPrefix(line, "    ") {
				t.Fatalf("line still indented with spaces: %q", line)
			}
		}
		if !strings.Contains(out, "\n\t") {
			t.Fatal("no tab-indented recipe lines found")
		}
	}
}

func TestBinaryPathQuoting(t *testing.T) {
	conf := localConf()
	conf.Local.Binary = "/opt/my schism/pschism"
	out, err := (&DefaultMakefile{Conf: conf.Local}).Render()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `'/opt/my schism/pschism'`) {
		t.Fatal("binary path with spaces not quoted:\n" + out)
	}
}
