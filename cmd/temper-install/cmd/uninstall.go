package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [NAME=VALUE...]",
	Short: "Remove the temper script and temper.service",
	Long:  "Uninstall removes the installed executable and unit file. Files that are already gone are skipped.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	installer, err := newInstaller(cmd, args)
	if err != nil {
		return fmt.Errorf("temper-install uninstall: %w", err)
	}

	if err := installer.Uninstall(); err != nil {
		return fmt.Errorf("temper-install uninstall: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "temper uninstalled")
	return nil
}
