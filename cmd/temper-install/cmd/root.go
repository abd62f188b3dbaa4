// Package cmd implements the temper-install CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	logLevel     string
	daemonReload bool

	destDir      string
	prefix       string
	binDir       string
	systemdDir   string
	scriptPath   string
	templatePath string
)

// Build info set from main.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersionInfo sets the version info from build-time ldflags.
func SetVersionInfo(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(fmt.Sprintf("temper-install version {{.Version}}\ncommit: %s\nbuilt: %s\n", buildCommit, buildDate))
}

var rootCmd = &cobra.Command{
	Use:   "temper-install",
	Short: "temper-install installs the temper thermometer reader and its systemd unit",
	Long: "temper-install copies the temper script into a bin directory and installs a\n" +
		"systemd unit file whose ExecStart path is rewritten to match that directory.\n" +
		"Paths follow the usual DESTDIR, prefix, bindir and systemddir conventions and may\n" +
		"be given as flags, environment variables or NAME=VALUE arguments.",
	SilenceErrors: true,
	SilenceUsage:  true,
	// No Run function — prints help by default.
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML file with installation paths")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolVar(&daemonReload, "daemon-reload", false, "run systemctl daemon-reload afterwards (ignored with DESTDIR)")

	pf.StringVar(&destDir, "destdir", "", "staging root prepended to every path (DESTDIR)")
	pf.StringVar(&prefix, "prefix", "", "installation prefix (default /usr/local)")
	pf.StringVar(&binDir, "bindir", "", "directory for the temper executable (default ${prefix}/bin)")
	pf.StringVar(&systemdDir, "systemddir", "", "directory for temper.service (default ${prefix}/lib/systemd/system/)")
	pf.StringVar(&scriptPath, "script", "", "source script to install (default temper.py)")
	pf.StringVar(&templatePath, "template", "", "source unit-file template (default temper.service)")

	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(fmt.Sprintf("temper-install version {{.Version}}\ncommit: %s\nbuilt: %s\n", buildCommit, buildDate))
}

// Execute runs the root command. Errors are reported on stderr as "ERROR: <message>".
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "ERROR: %s\n", err)
	}
	return err
}

func setupLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
