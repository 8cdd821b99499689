package sysfs_test

import (
	"testing"

	"github.com/omen-linux/omenctl/internal/errors"
	"github.com/omen-linux/omenctl/internal/sysfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemFS(t *testing.T, files map[string]string) *sysfs.FS {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0o644))
	}

	return sysfs.NewFromFs(mem)
}

func TestReadStringTrimsWhitespace(t *testing.T) {
	fs := newMemFS(t, map[string]string{
		"/sys/firmware/acpi/platform_profile": "balanced\n",
	})

	value, err := fs.ReadString("/sys/firmware/acpi/platform_profile")
	require.NoError(t, err)
	assert.Equal(t, "balanced", value)
}

func TestReadStringAbsent(t *testing.T) {
	fs := newMemFS(t, nil)

	_, err := fs.ReadString("/sys/class/hwmon/hwmon0/name")
	require.Error(t, err)
	assert.True(t, errors.IsAbsent(err))
}

func TestReadInt(t *testing.T) {
	fs := newMemFS(t, map[string]string{
		"/sys/class/hwmon/hwmon0/temp1_input": "45000\n",
	})

	value, err := fs.ReadInt("/sys/class/hwmon/hwmon0/temp1_input")
	require.NoError(t, err)
	assert.Equal(t, 45000, value)
}

func TestReadIntMalformed(t *testing.T) {
	fs := newMemFS(t, map[string]string{
		"/sys/class/hwmon/hwmon0/temp1_input": "not-a-number\n",
	})

	_, err := fs.ReadInt("/sys/class/hwmon/hwmon0/temp1_input")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrMalformedValue))
}

func TestWriteThenRead(t *testing.T) {
	fs := newMemFS(t, map[string]string{
		"/sys/firmware/acpi/platform_profile": "balanced\n",
	})

	require.NoError(t, fs.WriteString("/sys/firmware/acpi/platform_profile", "performance"))

	value, err := fs.ReadString("/sys/firmware/acpi/platform_profile")
	require.NoError(t, err)
	assert.Equal(t, "performance", value)
}

func TestGlobSorted(t *testing.T) {
	fs := newMemFS(t, map[string]string{
		"/sys/class/hwmon/hwmon2/name": "amdgpu\n",
		"/sys/class/hwmon/hwmon0/name": "coretemp\n",
		"/sys/class/hwmon/hwmon1/name": "acpitz\n",
	})

	matches := fs.Glob("/sys/class/hwmon/hwmon*/name")
	assert.Equal(t, []string{
		"/sys/class/hwmon/hwmon0/name",
		"/sys/class/hwmon/hwmon1/name",
		"/sys/class/hwmon/hwmon2/name",
	}, matches)
}

func TestExists(t *testing.T) {
	fs := newMemFS(t, map[string]string{
		"/sys/devices/platform/hp-wmi/hwmon/hwmon3/pwm1_enable": "2\n",
	})

	assert.True(t, fs.Exists("/sys/devices/platform/hp-wmi/hwmon/hwmon3/pwm1_enable"))
	assert.True(t, fs.DirExists("/sys/devices/platform/hp-wmi"))
	assert.False(t, fs.Exists("/sys/devices/platform/dell-smm"))
}
