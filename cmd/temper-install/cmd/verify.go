package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [NAME=VALUE...]",
	Short: "Check installed files against the sources",
	Long: "Verify compares the installed temper executable and temper.service with what install\n" +
		"would write from the current sources, including file modes. It exits non-zero when\n" +
		"a file is missing or differs.",
	Args: cobra.ArbitraryArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	installer, err := newInstaller(cmd, args)
	if err != nil {
		return fmt.Errorf("temper-install verify: %w", err)
	}

	results, err := installer.Verify()
	for _, res := range results {
		fmt.Fprintln(cmd.OutOrStdout(), res.String())
	}
	if err != nil {
		return fmt.Errorf("temper-install verify: %w", err)
	}
	return nil
}
