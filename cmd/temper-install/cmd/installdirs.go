package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var installDirsCmd = &cobra.Command{
	Use:   "installdirs [NAME=VALUE...]",
	Short: "Create the bin and systemd unit directories",
	Args:  cobra.ArbitraryArgs,
	RunE:  runInstallDirs,
}

func init() {
	rootCmd.AddCommand(installDirsCmd)
}

func runInstallDirs(cmd *cobra.Command, args []string) error {
	installer, err := newInstaller(cmd, args)
	if err != nil {
		return fmt.Errorf("temper-install installdirs: %w", err)
	}

	if err := installer.InstallDirs(); err != nil {
		return fmt.Errorf("temper-install installdirs: %w", err)
	}
	return nil
}
