package cli

import (
	"fmt"
	"strings"

	"github.com/omen-linux/omenctl/internal/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(boostCmd)
}

var boostCmd = &cobra.Command{
	Use:       "boost <on|off|toggle>",
	Short:     "Control the max-fan boost override directly",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off", "toggle"},
	RunE:      runBoost,
}

func runBoost(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if strings.EqualFold(args[0], "toggle") {
		if err := a.control.ToggleBoost(); err != nil {
			return wrapWriteError(err)
		}

		enabled, err := a.control.BoostEnabled()
		if err != nil {
			return err
		}
		fmt.Printf("Max fan %s\n", onOff(enabled))

		return nil
	}

	enabled, err := parseOnOff(args[0])
	if err != nil {
		return err
	}

	if err := a.control.SetBoost(enabled); err != nil {
		return wrapWriteError(err)
	}

	fmt.Printf("Max fan %s\n", onOff(enabled))

	return nil
}

// parseOnOff accepts the truthy spellings the original CLI took.
func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "1", "true", "yes":
		return true, nil
	case "off", "0", "false", "no":
		return false, nil
	default:
		errFactory := errors.New()
		return false, errFactory.WithData(errors.ErrInvalidArgument, s)
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "enabled"
	}

	return "disabled"
}
