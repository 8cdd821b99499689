// Package fancontrol reconciles the two independently stored hardware
// bits — ACPI platform profile and firmware fan boost — into the single
// fan mode presented to users, and drives transitions between them.
package fancontrol

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/omen-linux/omenctl/internal/errors"
	"github.com/omen-linux/omenctl/internal/hwmon"
	"github.com/omen-linux/omenctl/internal/logger"
	"github.com/omen-linux/omenctl/internal/sensors"
	"github.com/omen-linux/omenctl/internal/sysfs"
)

// pwm1_enable values on the hp-wmi hwmon device.
const (
	boostFile  = "pwm1_enable"
	boostOn    = "0"
	boostAuto  = "2"
	boostOnInt = 0
)

type Controller struct {
	fs      *sysfs.FS
	reg     *hwmon.Registry
	sensors *sensors.Reader
}

// NewController wires the controller over the discovered registry and
// sensor reader.
func NewController(fs *sysfs.FS, reg *hwmon.Registry, reader *sensors.Reader) *Controller {
	return &Controller{fs: fs, reg: reg, sensors: reader}
}

// Available reports whether any fan control surface exists on this host.
func (c *Controller) Available() bool {
	return c.reg.Available()
}

// AvailableProfiles queries the platform's advertised legal profile
// values. Queried fresh on every call, never cached.
func (c *Controller) AvailableProfiles() []string {
	value, err := c.fs.ReadString(c.reg.Paths().ProfileChoices)
	if err != nil {
		logger.Debug().Err(err).Msg("Platform profile choices unreadable")
		return nil
	}

	return strings.Fields(value)
}

// Status derives the current fan mode from live hardware state. Boost
// always takes display precedence: the firmware layers it on top of
// whatever profile is stored underneath.
func (c *Controller) Status(ctx context.Context) Status {
	summary := c.sensors.ReadSummary(ctx)

	status := Status{
		CPUTemp:   summary.CPU,
		GPUTemp:   summary.GPU,
		FanSpeeds: c.sensors.FanSpeeds(),
		Available: c.Available(),
	}

	if c.reg.ProfileAvailable() {
		if value, err := c.fs.ReadString(c.reg.Paths().PlatformProfile); err == nil {
			mode := modeForProfile(value)
			status.Mode = &mode
		} else {
			logger.Warn().Err(err).Msg("Failed to read platform profile")
		}
	}

	if enabled, err := c.boostState(); err == nil && enabled {
		status.BoostEnabled = true
		mode := ModeMax
		status.Mode = &mode
	}

	return status
}

// SetMode transitions the hardware toward the requested mode.
//
// Max touches only the boost bit, preserving the stored profile for
// when boost is later cleared. Off clears the boost bit and nothing
// else: control returns to whatever profile was last set. The three
// profile modes resolve a legal hardware spelling first and fail
// without mutating anything when the platform advertises none; only
// then is a lingering boost override cleared, so the new profile
// becomes visible the moment it is written.
func (c *Controller) SetMode(mode Mode) error {
	logger.Info().Str("mode", mode.String()).Msg("Setting fan mode")

	switch mode {
	case ModeMax:
		return c.SetBoost(true)
	case ModeOff:
		return c.SetBoost(false)
	case ModeQuiet, ModeBalanced, ModePerformance:
		return c.setProfileMode(mode)
	default:
		errFactory := errors.New()
		return errFactory.WithData(errors.ErrInvalidArgument, mode)
	}
}

func (c *Controller) setProfileMode(mode Mode) error {
	errFactory := errors.New()

	if !c.reg.ProfileAvailable() {
		return errFactory.New(ErrProfileUnavailable)
	}

	target := ""
	available := c.AvailableProfiles()
	for _, candidate := range profileCandidates(mode) {
		for _, legal := range available {
			if candidate == legal {
				target = candidate
				break
			}
		}
		if target != "" {
			break
		}
	}
	if target == "" {
		return errFactory.WithData(ErrProfileUnsupported, available)
	}

	// Clear a lingering boost override before the profile write. A
	// failed clear is logged and the transition continues; writes are
	// single-attempt with no rollback.
	if enabled, err := c.boostState(); err == nil && enabled {
		if err := c.writeBoost(false); err != nil {
			logger.Warn().Err(err).Msg("Failed to clear fan boost before profile change")
		}
	}

	if err := c.fs.WriteString(c.reg.Paths().PlatformProfile, target); err != nil {
		wrapped := errFactory.Wrap(ErrSetProfileFailed, err)
		logger.ErrorWithCode(wrapped).Msg("Platform profile write failed")
		return wrapped
	}

	logger.Info().Str("profile", target).Msg("Platform profile set")

	return nil
}

// SetBoost writes the boost bit directly, leaving the profile untouched.
func (c *Controller) SetBoost(enabled bool) error {
	return c.writeBoost(enabled)
}

// ToggleBoost flips the boost bit. Fails without writing when the
// boost surface cannot be read.
func (c *Controller) ToggleBoost() error {
	enabled, err := c.boostState()
	if err != nil {
		return err
	}

	return c.writeBoost(!enabled)
}

// BoostEnabled reports the live boost state.
func (c *Controller) BoostEnabled() (bool, error) {
	return c.boostState()
}

func (c *Controller) boostPath() (string, error) {
	errFactory := errors.New()

	hpPath, ok := c.reg.HPHwmonPath()
	if !ok {
		return "", errFactory.New(ErrBoostUnavailable)
	}

	path := filepath.Join(hpPath, boostFile)
	if !c.fs.Exists(path) {
		return "", errFactory.WithData(ErrBoostUnavailable, path)
	}

	return path, nil
}

func (c *Controller) boostState() (bool, error) {
	errFactory := errors.New()

	path, err := c.boostPath()
	if err != nil {
		return false, err
	}

	value, err := c.fs.ReadInt(path)
	if err != nil {
		return false, errFactory.Wrap(ErrBoostUnavailable, err)
	}

	return value == boostOnInt, nil
}

func (c *Controller) writeBoost(enabled bool) error {
	errFactory := errors.New()

	path, err := c.boostPath()
	if err != nil {
		return err
	}

	value := boostAuto
	if enabled {
		value = boostOn
	}

	if err := c.fs.WriteString(path, value); err != nil {
		return errFactory.Wrap(ErrSetBoostFailed, err)
	}

	logger.Info().Bool("enabled", enabled).Msg("Fan boost set")

	return nil
}
