package hwmon_test

import (
	"testing"

	"github.com/omen-linux/omenctl/internal/hwmon"
	"github.com/omen-linux/omenctl/internal/sysfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeFS(t *testing.T, files map[string]string) *sysfs.FS {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0o644))
	}

	return sysfs.NewFromFs(mem)
}

func TestDiscoverHPHwmonUnderPlatformDevice(t *testing.T) {
	fs := newFakeFS(t, map[string]string{
		"/sys/firmware/acpi/platform_profile":                   "balanced\n",
		"/sys/devices/platform/hp-wmi/hwmon/hwmon4/pwm1_enable": "2\n",
		"/sys/class/hwmon/hwmon0/name":                          "coretemp\n",
		"/sys/class/hwmon/hwmon4/name":                          "hp\n",
	})

	reg := hwmon.Discover(fs, hwmon.DefaultPaths())

	assert.True(t, reg.Available())
	assert.True(t, reg.PlatformPresent())
	assert.True(t, reg.ProfileAvailable())

	path, ok := reg.HPHwmonPath()
	require.True(t, ok)
	assert.Equal(t, "/sys/devices/platform/hp-wmi/hwmon/hwmon4", path)
}

func TestDiscoverHPHwmonByNameFallback(t *testing.T) {
	fs := newFakeFS(t, map[string]string{
		"/sys/devices/platform/hp-wmi/driver_override": "(null)\n",
		"/sys/class/hwmon/hwmon0/name":                 "coretemp\n",
		"/sys/class/hwmon/hwmon1/name":                 "HP\n",
	})

	reg := hwmon.Discover(fs, hwmon.DefaultPaths())

	path, ok := reg.HPHwmonPath()
	require.True(t, ok)
	assert.Equal(t, "/sys/class/hwmon/hwmon1", path)
}

func TestDiscoverNoFirmwareSurfaces(t *testing.T) {
	fs := newFakeFS(t, map[string]string{
		"/sys/class/hwmon/hwmon0/name": "coretemp\n",
	})

	reg := hwmon.Discover(fs, hwmon.DefaultPaths())

	assert.False(t, reg.Available())
	assert.False(t, reg.ProfileAvailable())

	_, ok := reg.HPHwmonPath()
	assert.False(t, ok)
}

func TestDiscoverProfileOnlyStillAvailable(t *testing.T) {
	fs := newFakeFS(t, map[string]string{
		"/sys/firmware/acpi/platform_profile": "quiet\n",
	})

	reg := hwmon.Discover(fs, hwmon.DefaultPaths())

	assert.True(t, reg.Available())
	assert.False(t, reg.PlatformPresent())
}

func TestDevicesEnumeratedInSortedOrder(t *testing.T) {
	fs := newFakeFS(t, map[string]string{
		"/sys/class/hwmon/hwmon2/name": "amdgpu\n",
		"/sys/class/hwmon/hwmon0/name": "acpitz\n",
		"/sys/class/hwmon/hwmon1/name": "coretemp\n",
	})

	reg := hwmon.Discover(fs, hwmon.DefaultPaths())

	devices := reg.Devices()
	require.Len(t, devices, 3)
	assert.Equal(t, "acpitz", devices[0].Name)
	assert.Equal(t, "coretemp", devices[1].Name)
	assert.Equal(t, "amdgpu", devices[2].Name)
	assert.Equal(t, "/sys/class/hwmon/hwmon2", devices[2].Path)
}

func TestDeviceWithoutNameIsSkipped(t *testing.T) {
	fs := newFakeFS(t, map[string]string{
		"/sys/class/hwmon/hwmon0/name":        "coretemp\n",
		"/sys/class/hwmon/hwmon1/temp1_input": "30000\n",
	})

	reg := hwmon.Discover(fs, hwmon.DefaultPaths())

	devices := reg.Devices()
	require.Len(t, devices, 1)
	assert.Equal(t, "coretemp", devices[0].Name)
}
