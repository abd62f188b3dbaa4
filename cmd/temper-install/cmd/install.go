package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install [NAME=VALUE...]",
	Short: "Install the temper script and temper.service",
	Long: "Install copies the script to ${DESTDIR}${bindir}/temper (mode 0755) and writes the\n" +
		"unit template to ${DESTDIR}${systemddir}/temper.service (mode 0644) with every\n" +
		"/usr/local/bin replaced by bindir. It refuses to run while a unit file from an\n" +
		"older release exists at ${DESTDIR}/etc/systemd/system/temper.service.",
	Args: cobra.ArbitraryArgs,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	installer, err := newInstaller(cmd, args)
	if err != nil {
		return fmt.Errorf("temper-install install: %w", err)
	}

	if err := installer.Install(); err != nil {
		return fmt.Errorf("temper-install install: %w", err)
	}

	cfg := installer.Config()
	fmt.Fprintf(cmd.OutOrStdout(), "temper installed to %s and %s\n", cfg.BinaryPath(), cfg.UnitFilePath())
	return nil
}
