// Package util contains helpers shared by the CLI commands.
package util

import (
	"github.com/imdario/mergo"

	"github.com/schism-dev/schismgen/config"
)

// MergeConfigFileWithFlags is used by commands that accept both a config
// file and flags that set config values. Flag values override values in the
// provided config file, which in turn override the defaults.
func MergeConfigFileWithFlags(file string, flagConf config.Config) (config.Config, error) {
	conf := config.DefaultConfig()
	err := config.ParseFile(file, &conf)
	if err != nil {
		return conf, err
	}

	// file vals <- cli vals
	err = mergo.MergeWithOverwrite(&conf, flagConf)
	if err != nil {
		return conf, err
	}

	return conf, nil
}
