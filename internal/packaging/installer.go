package packaging

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/plexsphere/temper/internal/fsutil"
	"github.com/plexsphere/temper/internal/integrity"
)

const (
	dirPerm    os.FileMode = 0o755
	binaryPerm os.FileMode = 0o755
	unitPerm   os.FileMode = 0o644
)

// Options tune optional installer behaviour.
type Options struct {
	// DaemonReload runs systemctl daemon-reload after install and uninstall.
	// It is ignored when DestDir is set.
	DaemonReload bool
}

// Installer handles installing and uninstalling temper and its unit file.
type Installer struct {
	cfg     InstallConfig
	opts    Options
	systemd SystemdController
	logger  *slog.Logger
}

// NewInstaller creates a new Installer with defaults applied.
func NewInstaller(cfg InstallConfig, opts Options, systemd SystemdController, logger *slog.Logger) *Installer {
	cfg.ApplyDefaults()
	return &Installer{
		cfg:     cfg,
		opts:    opts,
		systemd: systemd,
		logger:  logger.With("component", "packaging"),
	}
}

// Config returns the resolved configuration.
func (ins *Installer) Config() InstallConfig {
	return ins.cfg
}

// Install copies the script and the rewritten unit file into place.
// A legacy unit file aborts the install before anything is written.
func (ins *Installer) Install() error {
	if err := ins.cfg.Validate(); err != nil {
		return err
	}

	// 1. Guard against a unit file from an older, fixed-path install
	if err := ins.checkLegacyUnit(); err != nil {
		return err
	}

	// 2. Read sources before touching the target tree
	script, unit, err := ins.readSources()
	if err != nil {
		return err
	}

	// 3. Create directories
	if err := ins.InstallDirs(); err != nil {
		return err
	}

	// 4. Install the executable
	if err := fsutil.WriteFileAtomic(ins.cfg.BinDirPath(), BinaryName, script, binaryPerm); err != nil {
		return fsError("install", ins.cfg.BinaryPath(), err)
	}
	ins.logger.Info("binary installed", "src", ins.cfg.ScriptPath, "dst", ins.cfg.BinaryPath(),
		"perm", fmt.Sprintf("%04o", binaryPerm), "sha256", integrity.HashBytes(script))

	// 5. Install the unit file
	if err := fsutil.WriteFileAtomic(ins.cfg.SystemdDirPath(), UnitFileName, unit, unitPerm); err != nil {
		return fsError("install", ins.cfg.UnitFilePath(), err)
	}
	ins.logger.Info("unit file written", "src", ins.cfg.TemplatePath, "dst", ins.cfg.UnitFilePath(),
		"bindir", ins.cfg.BinDir, "perm", fmt.Sprintf("%04o", unitPerm))

	return ins.reload()
}

// InstallDirs creates the bin and systemd directories under DestDir.
func (ins *Installer) InstallDirs() error {
	for _, dir := range []string{ins.cfg.BinDirPath(), ins.cfg.SystemdDirPath()} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fsError("create directory", dir, err)
		}
		ins.logger.Debug("directory ready", "path", dir)
	}
	return nil
}

// Verify compares the installed files with what Install would write from the
// current sources. Results are returned for every file; the error wraps
// ErrVerifyFailed when any file is missing or differs.
func (ins *Installer) Verify() ([]integrity.CheckResult, error) {
	if err := ins.cfg.Validate(); err != nil {
		return nil, err
	}
	script, unit, err := ins.readSources()
	if err != nil {
		return nil, err
	}

	checks := []struct {
		path string
		data []byte
		perm os.FileMode
	}{
		{ins.cfg.BinaryPath(), script, binaryPerm},
		{ins.cfg.UnitFilePath(), unit, unitPerm},
	}
	results := make([]integrity.CheckResult, 0, len(checks))
	failed := 0
	for _, c := range checks {
		res, err := integrity.VerifyFile(c.path, integrity.HashBytes(c.data), c.perm)
		if err != nil {
			return results, fsError("verify", c.path, err)
		}
		if res.OK {
			ins.logger.Info("file verified", "path", res.Path, "sha256", res.Actual)
		} else {
			failed++
			ins.logger.Warn("file differs", "path", res.Path, "detail", res.String())
		}
		results = append(results, res)
	}
	if failed > 0 {
		return results, fmt.Errorf("packaging: %d of %d files: %w", failed, len(checks), ErrVerifyFailed)
	}
	return results, nil
}

// Uninstall removes the executable and the unit file. Files that are
// already gone are not an error.
func (ins *Installer) Uninstall() error {
	for _, path := range []string{ins.cfg.BinaryPath(), ins.cfg.UnitFilePath()} {
		err := os.Remove(path)
		switch {
		case err == nil:
			ins.logger.Info("file removed", "path", path)
		case errors.Is(err, os.ErrNotExist):
			ins.logger.Debug("file not present", "path", path)
		default:
			return fsError("remove", path, err)
		}
	}
	return ins.reload()
}

// readSources returns the script and the unit file rewritten for BinDir.
func (ins *Installer) readSources() (script, unit []byte, err error) {
	script, err = os.ReadFile(ins.cfg.ScriptPath)
	if err != nil {
		return nil, nil, fsError("read script", ins.cfg.ScriptPath, err)
	}
	template, err := os.ReadFile(ins.cfg.TemplatePath)
	if err != nil {
		return nil, nil, fsError("read unit template", ins.cfg.TemplatePath, err)
	}
	return script, RewriteUnitFile(template, ins.cfg.BinDir), nil
}

func (ins *Installer) checkLegacyUnit() error {
	legacy := ins.cfg.LegacyUnitFilePath()
	_, err := os.Lstat(legacy)
	if err == nil {
		return &ConflictError{Path: legacy}
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fsError("stat", legacy, err)
	}
	return nil
}

func (ins *Installer) reload() error {
	if !ins.opts.DaemonReload {
		return nil
	}
	if ins.cfg.DestDir != "" {
		ins.logger.Info("staged install, skipping daemon-reload", "destdir", ins.cfg.DestDir)
		return nil
	}
	if !ins.systemd.IsAvailable() {
		ins.logger.Warn("systemctl not found, skipping daemon-reload")
		return nil
	}
	if err := ins.systemd.DaemonReload(); err != nil {
		return fmt.Errorf("packaging: daemon-reload: %w", err)
	}
	ins.logger.Info("systemd daemon reloaded")
	return nil
}
