// Package diag assembles a read-only snapshot of discovery, sensor,
// and mode-controller state for troubleshooting.
package diag

import (
	"context"

	"github.com/omen-linux/omenctl/internal/fancontrol"
	"github.com/omen-linux/omenctl/internal/hwmon"
	"github.com/omen-linux/omenctl/internal/sensors"
	"github.com/omen-linux/omenctl/internal/sysfs"
)

// Report is a JSON-serializable diagnostics record. Structure is stable
// across calls; only live temperature and RPM values vary.
type Report struct {
	HPWMIAvailable    bool               `json:"hp_wmi_available"`
	ProfileAvailable  bool               `json:"platform_profile_available"`
	Available         bool               `json:"available"`
	HPHwmonPath       string             `json:"hp_hwmon_path,omitempty"`
	AvailableProfiles []string           `json:"available_profiles"`
	CurrentProfile    string             `json:"current_profile,omitempty"`
	FanMode           string             `json:"fan_mode,omitempty"`
	BoostEnabled      bool               `json:"boost_enabled"`
	CPUTemp           *float64           `json:"cpu_temp,omitempty"`
	GPUTemp           *float64           `json:"gpu_temp,omitempty"`
	Devices           []hwmon.Device     `json:"hwmon_devices"`
	FanSpeeds         []sensors.FanSpeed `json:"fan_speeds"`
	Temperatures      []sensors.Reading  `json:"temperatures"`
}

type Reporter struct {
	fs     *sysfs.FS
	reg    *hwmon.Registry
	reader *sensors.Reader
	ctrl   *fancontrol.Controller
}

func NewReporter(fs *sysfs.FS, reg *hwmon.Registry, reader *sensors.Reader, ctrl *fancontrol.Controller) *Reporter {
	return &Reporter{fs: fs, reg: reg, reader: reader, ctrl: ctrl}
}

// Collect gathers the snapshot. No mutation, no side effects beyond the
// hardware reads it triggers.
func (r *Reporter) Collect(ctx context.Context) Report {
	status := r.ctrl.Status(ctx)

	report := Report{
		HPWMIAvailable:    r.reg.PlatformPresent(),
		ProfileAvailable:  r.reg.ProfileAvailable(),
		Available:         r.reg.Available(),
		AvailableProfiles: r.ctrl.AvailableProfiles(),
		BoostEnabled:      status.BoostEnabled,
		CPUTemp:           status.CPUTemp,
		GPUTemp:           status.GPUTemp,
		Devices:           r.reg.Devices(),
		FanSpeeds:         status.FanSpeeds,
		Temperatures:      r.reader.ReadAll(),
	}

	if path, ok := r.reg.HPHwmonPath(); ok {
		report.HPHwmonPath = path
	}

	if r.reg.ProfileAvailable() {
		if value, err := r.fs.ReadString(r.reg.Paths().PlatformProfile); err == nil {
			report.CurrentProfile = value
		}
	}

	if status.Mode != nil {
		report.FanMode = status.Mode.String()
	}

	return report
}
