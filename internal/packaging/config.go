// Package packaging installs the temper script and its systemd unit file.
package packaging

import (
	"errors"
	"path/filepath"
)

// InstallConfig holds the installation paths for temper.
// InstallConfig is passed as a constructor argument — no configuration file I/O in this package.
type InstallConfig struct {
	// DestDir is the staging root prepended to every installed path.
	// Default: "" (install to the real root)
	DestDir string

	// Prefix is the base installation directory.
	// Default: /usr/local
	Prefix string

	// BinDir is the directory receiving the temper executable.
	// Default: ${Prefix}/bin
	BinDir string

	// SystemdDir is the directory receiving temper.service.
	// Default: ${Prefix}/lib/systemd/system/
	SystemdDir string

	// ScriptPath is the source script to install.
	// Default: temper.py
	ScriptPath string

	// TemplatePath is the source unit-file template.
	// Default: temper.service
	TemplatePath string
}

// DefaultPrefix is the default installation prefix.
const DefaultPrefix = "/usr/local"

// DefaultScriptPath is the default source script, relative to the working directory.
const DefaultScriptPath = "temper.py"

// DefaultTemplatePath is the default unit-file template, relative to the working directory.
const DefaultTemplatePath = "temper.service"

// BinaryName is the file name of the installed executable.
const BinaryName = "temper"

// UnitFileName is the file name of the installed unit file.
const UnitFileName = "temper.service"

// LegacyUnitDir is where older releases installed the unit file, relative to DestDir.
const LegacyUnitDir = "/etc/systemd/system"

// ApplyDefaults sets default values for zero-valued fields.
// BinDir and SystemdDir are derived from the final Prefix, so callers
// must apply every override before calling ApplyDefaults.
func (c *InstallConfig) ApplyDefaults() {
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.BinDir == "" {
		c.BinDir = c.Prefix + "/bin"
	}
	if c.SystemdDir == "" {
		c.SystemdDir = c.Prefix + "/lib/systemd/system/"
	}
	if c.ScriptPath == "" {
		c.ScriptPath = DefaultScriptPath
	}
	if c.TemplatePath == "" {
		c.TemplatePath = DefaultTemplatePath
	}
}

// Validate checks that required fields are set.
func (c *InstallConfig) Validate() error {
	if c.BinDir == "" {
		return errors.New("packaging: config: BinDir is required")
	}
	if c.SystemdDir == "" {
		return errors.New("packaging: config: SystemdDir is required")
	}
	if c.ScriptPath == "" {
		return errors.New("packaging: config: ScriptPath is required")
	}
	if c.TemplatePath == "" {
		return errors.New("packaging: config: TemplatePath is required")
	}
	return nil
}

// BinDirPath returns ${DestDir}${BinDir}.
func (c *InstallConfig) BinDirPath() string {
	return c.DestDir + c.BinDir
}

// SystemdDirPath returns ${DestDir}${SystemdDir}.
func (c *InstallConfig) SystemdDirPath() string {
	return c.DestDir + c.SystemdDir
}

// BinaryPath returns the installed location of the temper executable.
func (c *InstallConfig) BinaryPath() string {
	return filepath.Join(c.BinDirPath(), BinaryName)
}

// UnitFilePath returns the installed location of temper.service.
func (c *InstallConfig) UnitFilePath() string {
	return filepath.Join(c.SystemdDirPath(), UnitFileName)
}

// LegacyUnitFilePath returns the unit file location used by older releases.
// Its presence blocks installation.
func (c *InstallConfig) LegacyUnitFilePath() string {
	return filepath.Join(c.DestDir+LegacyUnitDir, UnitFileName)
}
