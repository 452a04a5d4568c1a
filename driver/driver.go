// Package driver generates makefile drivers that launch the SCHISM solver,
// either directly through an MPI launcher or through a Slurm batch queue.
//
// The generated makefile is plain text. Everything it does at run time
// (tailing logs, submitting and polling batch jobs) is shell behavior
// encoded in the recipe lines, not behavior of this package.
package driver

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/schism-dev/schismgen/config"
)

// Makefile renders a makefile driver for one execution environment.
type Makefile interface {
	// Render returns the complete makefile text.
	Render() (string, error)
}

// NewMakefile selects the makefile variant matching the configured compute
// backend. An unrecognized backend name is an error.
func NewMakefile(conf config.Config) (Makefile, error) {
	switch conf.Compute {
	case config.ComputeSlurm:
		return &SlurmMakefile{Conf: conf.Slurm}, nil
	case config.ComputeLocal, "":
		return &DefaultMakefile{Conf: conf.Local}, nil
	}
	return nil, fmt.Errorf("unknown compute backend: '%s'. Available backends: [local, slurm]", conf.Compute)
}

// Write renders m and writes the text to path. When overwrite is false an
// existing file fails with fs.ErrExist and is left untouched.
func Write(m Makefile, path string, overwrite bool) error {
	text, err := m.Render()
	if err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// header locates the makefile's own directory so targets work regardless
// of the invocation directory.
const header = `# Makefile driver generated by schismgen.
MAKEFILE_PATH:=$(abspath $(lastword $(MAKEFILE_LIST)))
ROOT_DIR:=$(dir $(MAKEFILE_PATH))`

// symlinksTarget ensures the outputs directory and the two solver log files
// exist. When SYMLINK_OUTPUTS_DIR is set in the environment it is linked in
// place of the outputs directory, avoiding duplicate copies of large runs.
const symlinksTarget = `
symlinks:
    @set -e;\
    if [ ! -z $${SYMLINK_OUTPUTS_DIR} ];\
    then \
        ln -sf $${SYMLINK_OUTPUTS_DIR} $${ROOT_DIR}outputs;\
    else \
        mkdir -p $${ROOT_DIR}outputs;\
    fi;\
    touch outputs/mirror.out outputs/fatal.error
`

const tailTarget = `
tail:
    tail -f outputs/mirror.out  outputs/fatal.error
`

// assemble joins the makefile sections and converts the four-space indents
// used in the section text to the literal tabs make requires of recipe lines.
func assemble(sections []string) string {
	return strings.ReplaceAll(strings.Join(sections, "\n"), "    ", "\t")
}

func renderTemplate(name, text string, data interface{}) (string, error) {
	tpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
