package cli

import (
	"fmt"

	"github.com/omen-linux/omenctl/internal/fancontrol"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <quiet|balanced|performance|max|off>",
	Short: "Set the fan mode",
	Long: `Set the fan mode. The three profile modes write the ACPI platform
profile; max forces the fans to full speed on top of the stored profile,
and off (alias: auto) releases that override.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"quiet", "balanced", "performance", "max", "off", "auto"},
	RunE:      runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	mode, err := fancontrol.ParseMode(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.control.SetMode(mode); err != nil {
		return wrapWriteError(err)
	}

	fmt.Printf("Fan mode set to %s\n", mode)

	return nil
}
