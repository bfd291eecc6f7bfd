package commands

import (
	"github.com/macropower/winpath/pkg/config"
	"github.com/macropower/winpath/pkg/pathops"
	"github.com/macropower/winpath/pkg/winpath"
)

type RootArgs struct {
	logLevel   *string
	logFormat  *string
	configPath *string
	separator  *string
	output     *string

	cfg      *config.Config
	paths    *winpath.Paths
	registry *pathops.Registry
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:   new(string),
		logFormat:  new(string),
		configPath: new(string),
		separator:  new(string),
		output:     new(string),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetConfigPath() string {
	return *a.configPath
}

func (a *RootArgs) GetSeparator() string {
	return *a.separator
}

func (a *RootArgs) GetOutput() string {
	return *a.output
}

// Config returns the loaded configuration, or the defaults before loading.
func (a *RootArgs) Config() *config.Config {
	if a.cfg == nil {
		return config.Default()
	}

	return a.cfg
}

// Paths returns the path operations described by the configuration.
func (a *RootArgs) Paths() *winpath.Paths {
	if a.paths == nil {
		a.paths = a.Config().Paths()
	}

	return a.paths
}

// Registry returns the path methods bound to [RootArgs.Paths].
func (a *RootArgs) Registry() *pathops.Registry {
	if a.registry == nil {
		a.registry = pathops.NewRegistry(a.Paths())
	}

	return a.registry
}

// setConfig replaces the configuration and drops everything derived from it.
func (a *RootArgs) setConfig(cfg *config.Config) {
	a.cfg = cfg
	a.paths = nil
	a.registry = nil
}
