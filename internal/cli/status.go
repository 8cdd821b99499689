package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/omen-linux/omenctl/internal/errors"
	"github.com/spf13/cobra"
)

// The status panel shows at most the laptop's two fan channels; extra
// channels from other hwmon devices stay in diag output.
const statusFanLimit = 2

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show temperatures, fan mode, and fan speeds",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	status := a.control.Status(cmd.Context())
	if !status.Available {
		errFactory := errors.New()
		return errFactory.WithMessage(errors.ErrUnavailable,
			"HP-WMI interface not available (is the hp-wmi kernel module loaded?)")
	}

	mode := "Unknown"
	if status.Mode != nil {
		mode = status.Mode.String()
	}

	boost := "off"
	if status.BoostEnabled {
		boost = "on"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "CPU temperature:\t%s\n", formatTemp(status.CPUTemp))
	fmt.Fprintf(w, "GPU temperature:\t%s\n", formatTemp(status.GPUTemp))
	fmt.Fprintf(w, "Fan mode:\t%s\n", mode)
	fmt.Fprintf(w, "Max fan:\t%s\n", boost)

	if len(status.FanSpeeds) == 0 {
		fmt.Fprintf(w, "Fan speeds:\tn/a\n")
	}
	for i, fan := range status.FanSpeeds {
		if i == statusFanLimit {
			break
		}
		fmt.Fprintf(w, "%s:\t%d RPM\n", fan.Label, fan.RPM)
	}

	return w.Flush()
}
