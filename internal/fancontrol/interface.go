package fancontrol

import (
	"strings"

	"github.com/omen-linux/omenctl/internal/errors"
	"github.com/omen-linux/omenctl/internal/sensors"
)

// Mode is the user-facing fan mode. It is never stored anywhere;
// Status derives it fresh from the platform profile and boost state.
type Mode int

const (
	ModeQuiet Mode = iota
	ModeBalanced
	ModePerformance
	ModeMax
	ModeOff
)

// String returns the display name shown to users.
func (m Mode) String() string {
	switch m {
	case ModeQuiet:
		return "Quiet"
	case ModeBalanced:
		return "Balanced"
	case ModePerformance:
		return "Performance"
	case ModeMax:
		return "Max Fan"
	case ModeOff:
		return "Fans Off"
	default:
		return "Unknown"
	}
}

// ParseMode maps a command-line token to a Mode. "auto" is accepted as
// an alias for "off": both hand control back to the firmware.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quiet":
		return ModeQuiet, nil
	case "balanced":
		return ModeBalanced, nil
	case "performance":
		return ModePerformance, nil
	case "max":
		return ModeMax, nil
	case "off", "auto":
		return ModeOff, nil
	default:
		errFactory := errors.New()
		return 0, errFactory.WithData(errors.ErrInvalidArgument, s)
	}
}

// profileTable is the single source of truth mapping modes onto the
// heterogeneous platform-profile vocabulary. Aliases are tried in order
// against the platform's advertised legal values; the quiet tier is
// spelled "low-power" on most HP firmware and "quiet" on some.
var profileTable = []struct {
	mode      Mode
	canonical string
	aliases   []string
}{
	{ModeQuiet, "low-power", []string{"low-power", "quiet"}},
	{ModeBalanced, "balanced", []string{"balanced"}},
	{ModePerformance, "performance", []string{"performance"}},
}

// modeForProfile maps a hardware profile string to its Mode.
// Unrecognized values default to Balanced.
func modeForProfile(value string) Mode {
	for _, entry := range profileTable {
		for _, alias := range entry.aliases {
			if value == alias {
				return entry.mode
			}
		}
	}

	return ModeBalanced
}

// profileCandidates returns the hardware spellings to try for a mode.
func profileCandidates(mode Mode) []string {
	for _, entry := range profileTable {
		if entry.mode == mode {
			return entry.aliases
		}
	}

	return nil
}

// Status is the reconciled view handed to presentation layers. Mode is
// nil when the profile surface is absent and boost is not engaged.
type Status struct {
	CPUTemp      *float64           `json:"cpu_temp,omitempty"`
	GPUTemp      *float64           `json:"gpu_temp,omitempty"`
	Mode         *Mode              `json:"fan_mode,omitempty"`
	FanSpeeds    []sensors.FanSpeed `json:"fan_speeds"`
	BoostEnabled bool               `json:"boost_enabled"`
	Available    bool               `json:"available"`
}
