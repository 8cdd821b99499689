// Package hwmon discovers the host's hardware-monitoring surfaces: the
// ACPI platform-profile node, the hp-wmi platform device, and every
// hwmon directory with its declared name.
package hwmon

import (
	"path/filepath"
	"strings"

	"github.com/omen-linux/omenctl/internal/logger"
	"github.com/omen-linux/omenctl/internal/sysfs"
)

// hpNameFragment matches the firmware hwmon device by declared name
// when it is not parented under the hp-wmi platform directory.
const hpNameFragment = "hp"

type Registry struct {
	fs    *sysfs.FS
	paths Paths

	platformPresent bool
	profilePresent  bool
	hpHwmonPath     string
	devices         []Device
}

// Discover probes the host once and returns the captured state. It
// never fails: missing or unreadable nodes are recorded as unavailable
// and downstream consumers degrade gracefully.
func Discover(fs *sysfs.FS, paths Paths) *Registry {
	r := &Registry{fs: fs, paths: paths}

	r.platformPresent = fs.DirExists(paths.HPPlatform)
	r.profilePresent = fs.Exists(paths.PlatformProfile)
	r.enumerateDevices()
	r.locateHPHwmon()

	logger.Info().
		Bool("hp_wmi", r.platformPresent).
		Bool("platform_profile", r.profilePresent).
		Str("hp_hwmon", r.hpHwmonPath).
		Int("hwmon_devices", len(r.devices)).
		Msg("Hardware discovery complete")

	return r
}

// enumerateDevices captures every hwmon directory that declares a name.
func (r *Registry) enumerateDevices() {
	for _, nameFile := range r.fs.Glob(filepath.Join(r.paths.HwmonClass, "hwmon*", "name")) {
		name, err := r.fs.ReadString(nameFile)
		if err != nil {
			logger.Debug().Str("path", nameFile).Err(err).Msg("Skipping unreadable hwmon name")
			continue
		}

		r.devices = append(r.devices, Device{
			Name: name,
			Path: filepath.Dir(nameFile),
		})
	}
}

// locateHPHwmon finds the hwmon subtree owned by the firmware device.
// The hp-wmi platform directory is checked first; otherwise the name of
// every enumerated device is matched case-insensitively. First match in
// sorted enumeration order wins.
func (r *Registry) locateHPHwmon() {
	if r.platformPresent {
		matches := r.fs.Glob(filepath.Join(r.paths.HPPlatform, "hwmon", "hwmon*"))
		if len(matches) > 0 {
			r.hpHwmonPath = matches[0]
			return
		}
	}

	for _, dev := range r.devices {
		if strings.Contains(strings.ToLower(dev.Name), hpNameFragment) {
			r.hpHwmonPath = dev.Path
			return
		}
	}
}

// Available reports whether any firmware control surface exists.
func (r *Registry) Available() bool {
	return r.platformPresent || r.profilePresent
}

// PlatformPresent reports whether the hp-wmi platform directory exists.
func (r *Registry) PlatformPresent() bool {
	return r.platformPresent
}

// ProfileAvailable reports whether the platform-profile node exists.
func (r *Registry) ProfileAvailable() bool {
	return r.profilePresent
}

// HPHwmonPath returns the firmware hwmon directory, if one was found.
func (r *Registry) HPHwmonPath() (string, bool) {
	return r.hpHwmonPath, r.hpHwmonPath != ""
}

// Devices returns all enumerated hwmon devices in discovery order.
func (r *Registry) Devices() []Device {
	devices := make([]Device, len(r.devices))
	copy(devices, r.devices)

	return devices
}

// Paths returns the probed locations.
func (r *Registry) Paths() Paths {
	return r.paths
}
