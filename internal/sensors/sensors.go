// Package sensors reads raw hwmon temperature and fan channels and
// resolves the canonical CPU and GPU readings among many candidates.
package sensors

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/omen-linux/omenctl/internal/hwmon"
	"github.com/omen-linux/omenctl/internal/logger"
	"github.com/omen-linux/omenctl/internal/sysfs"
)

// Raw channel values are integer millidegrees Celsius.
const millidegree = 1000.0

// Known device classes, in resolution priority order. Readings from
// unlisted devices are still collected, just deprioritized: they only
// surface through the label-substring fallbacks.
var (
	cpuDevices = []string{"coretemp", "k10temp", "zenpower"}
	gpuDevices = []string{"amdgpu", "nvidia", "nouveau"}
)

type Reader struct {
	fs  *sysfs.FS
	reg *hwmon.Registry
	gpu GPUQuerier
}

// NewReader returns a Reader over the discovered hwmon devices. gpu may
// be nil to disable the external fallback query.
func NewReader(fs *sysfs.FS, reg *hwmon.Registry, gpu GPUQuerier) *Reader {
	return &Reader{fs: fs, reg: reg, gpu: gpu}
}

// ReadAll scans every hwmon device for temp<N>_input channels. Each
// offending file is skipped on failure; the scan never aborts.
func (r *Reader) ReadAll() []Reading {
	var readings []Reading
	for _, dev := range r.reg.Devices() {
		readings = append(readings, r.readDevice(dev)...)
	}

	return readings
}

func (r *Reader) readDevice(dev hwmon.Device) []Reading {
	var readings []Reading
	for _, input := range r.fs.Glob(filepath.Join(dev.Path, "temp[0-9]*_input")) {
		raw, err := r.fs.ReadInt(input)
		if err != nil {
			logger.Debug().Str("path", input).Err(err).Msg("Skipping unreadable temperature channel")
			continue
		}

		channel := strings.TrimSuffix(filepath.Base(input), "_input")
		readings = append(readings, Reading{
			Label:       r.channelLabel(dev, input, channel),
			Device:      dev.Name,
			Temperature: float64(raw) / millidegree,
			Critical:    r.threshold(input, "_crit"),
			Max:         r.threshold(input, "_max"),
		})
	}

	return readings
}

// channelLabel reads the sibling label file, or synthesizes
// "<device>_temp<N>" when the sensor supplies none.
func (r *Reader) channelLabel(dev hwmon.Device, input, channel string) string {
	label, err := r.fs.ReadString(strings.TrimSuffix(input, "_input") + "_label")
	if err != nil {
		return fmt.Sprintf("%s_%s", dev.Name, channel)
	}

	return label
}

// threshold reads an optional sibling threshold file; nil when absent
// or unparsable.
func (r *Reader) threshold(input, suffix string) *float64 {
	raw, err := r.fs.ReadInt(strings.TrimSuffix(input, "_input") + suffix)
	if err != nil {
		return nil
	}

	value := float64(raw) / millidegree
	return &value
}

// CPUTemperature resolves the canonical CPU reading. Priority: a
// package/tctl-labeled channel on a known CPU device, then any channel
// on a known CPU device, then any channel labeled "cpu".
func (r *Reader) CPUTemperature() (float64, bool) {
	readings := r.ReadAll()

	for _, dev := range cpuDevices {
		for i := range readings {
			if readings[i].Device != dev {
				continue
			}
			label := strings.ToLower(readings[i].Label)
			if strings.Contains(label, "package") || strings.Contains(label, "tctl") {
				return readings[i].Temperature, true
			}
		}
	}

	for _, dev := range cpuDevices {
		for i := range readings {
			if readings[i].Device == dev {
				return readings[i].Temperature, true
			}
		}
	}

	for i := range readings {
		if strings.Contains(strings.ToLower(readings[i].Label), "cpu") {
			return readings[i].Temperature, true
		}
	}

	return 0, false
}

// GPUTemperature resolves the canonical GPU reading. On amdgpu the
// junction channel wins whenever present, else edge; nvidia and nouveau
// accept their first channel. Falls back to any channel on a known GPU
// device, then the external query tool.
func (r *Reader) GPUTemperature(ctx context.Context) (float64, bool) {
	readings := r.ReadAll()

	for _, dev := range gpuDevices {
		var edge *Reading
		for i := range readings {
			if readings[i].Device != dev {
				continue
			}
			if dev != "amdgpu" {
				return readings[i].Temperature, true
			}

			label := strings.ToLower(readings[i].Label)
			if strings.Contains(label, "junction") {
				return readings[i].Temperature, true
			}
			if edge == nil && strings.Contains(label, "edge") {
				edge = &readings[i]
			}
		}
		if edge != nil {
			return edge.Temperature, true
		}
	}

	for _, dev := range gpuDevices {
		for i := range readings {
			if readings[i].Device == dev {
				return readings[i].Temperature, true
			}
		}
	}

	if r.gpu != nil {
		temp, err := r.gpu.Temperature(ctx)
		if err == nil {
			return temp, true
		}
		logger.Debug().Err(err).Msg("External GPU query yielded no reading")
	}

	return 0, false
}

// FanSpeeds scans fan<N>_input channels, firmware hwmon device first,
// then every other device, concatenated.
func (r *Reader) FanSpeeds() []FanSpeed {
	var fans []FanSpeed

	hpPath, hasHP := r.reg.HPHwmonPath()
	if hasHP {
		fans = append(fans, r.readFans(hpPath)...)
	}

	for _, dev := range r.reg.Devices() {
		if hasHP && dev.Path == hpPath {
			continue
		}
		fans = append(fans, r.readFans(dev.Path)...)
	}

	return fans
}

func (r *Reader) readFans(dir string) []FanSpeed {
	var fans []FanSpeed
	for _, input := range r.fs.Glob(filepath.Join(dir, "fan[0-9]*_input")) {
		rpm, err := r.fs.ReadInt(input)
		if err != nil {
			logger.Debug().Str("path", input).Err(err).Msg("Skipping unreadable fan channel")
			continue
		}

		label, err := r.fs.ReadString(strings.TrimSuffix(input, "_input") + "_label")
		if err != nil {
			label = strings.TrimSuffix(filepath.Base(input), "_input")
		}

		fans = append(fans, FanSpeed{Label: label, RPM: rpm})
	}

	return fans
}

// ReadSummary resolves both canonical temperatures in one call.
func (r *Reader) ReadSummary(ctx context.Context) Summary {
	var s Summary
	if cpu, ok := r.CPUTemperature(); ok {
		s.CPU = &cpu
	}
	if gpu, ok := r.GPUTemperature(ctx); ok {
		s.GPU = &gpu
	}

	return s
}
