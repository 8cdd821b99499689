// Package cli implements the omenctl command-line interface using
// Cobra. Each subcommand is a thin presentation layer over the core:
// it formats output and owns no hardware-access logic of its own.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "omenctl",
	Short: "omenctl — HP OMEN fan and thermal control",
	Long: `omenctl controls the thermal profile and fan boost of HP OMEN
laptops through the hp-wmi kernel driver and the ACPI platform-profile
interface. Mode and boost writes require elevated privileges.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "", "Log level (debug, info, warning, error)")
	flags.String("gpu-tool", "", "External GPU temperature query command")
	flags.String("sysfs-root", "", "Alternative sysfs root for staged trees")
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
