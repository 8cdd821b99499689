package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(diagCmd)
}

var diagCmd = &cobra.Command{
	Use:   "diag",
	Short: "Dump a diagnostics snapshot as JSON",
	RunE:  runDiag,
}

func runDiag(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	report := a.diag.Collect(cmd.Context())

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	return nil
}
