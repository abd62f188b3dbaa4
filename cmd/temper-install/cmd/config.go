package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/plexsphere/temper/internal/packaging"
)

// fileConfig is the on-disk form of the --config file.
type fileConfig struct {
	DestDir    string `yaml:"destdir"`
	Prefix     string `yaml:"prefix"`
	BinDir     string `yaml:"bindir"`
	SystemdDir string `yaml:"systemddir"`
	Script     string `yaml:"script"`
	Template   string `yaml:"template"`
}

// parseConfigFile reads a YAML configuration file. Unknown keys are rejected;
// an empty file yields an empty configuration.
func parseConfigFile(path string) (packaging.InstallConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return packaging.InstallConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return packaging.InstallConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return packaging.InstallConfig{
		DestDir:      fc.DestDir,
		Prefix:       fc.Prefix,
		BinDir:       fc.BinDir,
		SystemdDir:   fc.SystemdDir,
		ScriptPath:   fc.Script,
		TemplatePath: fc.Template,
	}, nil
}

// resolveConfig merges the configuration sources, lowest precedence first:
// config file, environment, NAME=VALUE args, flags. Derived paths are filled
// in last so that bindir and systemddir follow the final prefix.
func resolveConfig(args []string) (packaging.InstallConfig, error) {
	var cfg packaging.InstallConfig
	if cfgFile != "" {
		var err error
		if cfg, err = parseConfigFile(cfgFile); err != nil {
			return cfg, err
		}
	}

	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.ApplyAssignments(args); err != nil {
		return cfg, err
	}

	overrides := []struct {
		dst *string
		val string
	}{
		{&cfg.DestDir, destDir},
		{&cfg.Prefix, prefix},
		{&cfg.BinDir, binDir},
		{&cfg.SystemdDir, systemdDir},
		{&cfg.ScriptPath, scriptPath},
		{&cfg.TemplatePath, templatePath},
	}
	for _, o := range overrides {
		if o.val != "" {
			*o.dst = o.val
		}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newInstaller builds an Installer for a subcommand from the resolved configuration.
func newInstaller(cmd *cobra.Command, args []string) (*packaging.Installer, error) {
	cfg, err := resolveConfig(args)
	if err != nil {
		return nil, err
	}
	logger := setupLogger(cmd.ErrOrStderr(), logLevel)
	logger.Debug("configuration resolved",
		"destdir", cfg.DestDir,
		"prefix", cfg.Prefix,
		"bindir", cfg.BinDir,
		"systemddir", cfg.SystemdDir,
		"script", cfg.ScriptPath,
		"template", cfg.TemplatePath,
	)
	opts := packaging.Options{DaemonReload: daemonReload}
	return packaging.NewInstaller(cfg, opts, packaging.NewSystemdController(), logger), nil
}
