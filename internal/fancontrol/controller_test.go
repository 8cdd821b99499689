package fancontrol_test

import (
	"context"
	"testing"

	"github.com/omen-linux/omenctl/internal/errors"
	"github.com/omen-linux/omenctl/internal/fancontrol"
	"github.com/omen-linux/omenctl/internal/hwmon"
	"github.com/omen-linux/omenctl/internal/sensors"
	"github.com/omen-linux/omenctl/internal/sysfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	profilePath = "/sys/firmware/acpi/platform_profile"
	choicesPath = "/sys/firmware/acpi/platform_profile_choices"
	boostPath   = "/sys/devices/platform/hp-wmi/hwmon/hwmon4/pwm1_enable"
)

type fixture struct {
	fs   *sysfs.FS
	ctrl *fancontrol.Controller
}

func newFixture(t *testing.T, files map[string]string) *fixture {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0o644))
	}

	fs := sysfs.NewFromFs(mem)
	reg := hwmon.Discover(fs, hwmon.DefaultPaths())
	reader := sensors.NewReader(fs, reg, nil)

	return &fixture{fs: fs, ctrl: fancontrol.NewController(fs, reg, reader)}
}

func fullSurface(profile, boost string) map[string]string {
	return map[string]string{
		profilePath: profile + "\n",
		choicesPath: "low-power balanced performance\n",
		boostPath:   boost + "\n",
	}
}

func (f *fixture) readFile(t *testing.T, path string) string {
	t.Helper()
	value, err := f.fs.ReadString(path)
	require.NoError(t, err)

	return value
}

func TestParseMode(t *testing.T) {
	for input, want := range map[string]fancontrol.Mode{
		"quiet":       fancontrol.ModeQuiet,
		"Balanced":    fancontrol.ModeBalanced,
		"PERFORMANCE": fancontrol.ModePerformance,
		"max":         fancontrol.ModeMax,
		"off":         fancontrol.ModeOff,
		"auto":        fancontrol.ModeOff,
	} {
		mode, err := fancontrol.ParseMode(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, mode, input)
	}

	_, err := fancontrol.ParseMode("turbo")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidArgument))
}

func TestStatusMapsProfileSpellings(t *testing.T) {
	for profile, want := range map[string]fancontrol.Mode{
		"low-power":   fancontrol.ModeQuiet,
		"quiet":       fancontrol.ModeQuiet,
		"balanced":    fancontrol.ModeBalanced,
		"performance": fancontrol.ModePerformance,
		"cool":        fancontrol.ModeBalanced, // unrecognized defaults to Balanced
	} {
		f := newFixture(t, fullSurface(profile, "2"))

		status := f.ctrl.Status(context.Background())
		require.NotNil(t, status.Mode, profile)
		assert.Equal(t, want, *status.Mode, profile)
		assert.False(t, status.BoostEnabled, profile)
	}
}

func TestStatusBoostOverridesEveryProfile(t *testing.T) {
	for _, profile := range []string{"low-power", "balanced", "performance"} {
		f := newFixture(t, fullSurface(profile, "0"))

		status := f.ctrl.Status(context.Background())
		require.NotNil(t, status.Mode, profile)
		assert.Equal(t, fancontrol.ModeMax, *status.Mode, profile)
		assert.True(t, status.BoostEnabled, profile)
	}
}

func TestStatusProfileSurfaceAbsent(t *testing.T) {
	f := newFixture(t, map[string]string{
		boostPath: "2\n",
	})

	status := f.ctrl.Status(context.Background())
	assert.Nil(t, status.Mode)
	assert.False(t, status.BoostEnabled)
}

func TestStatusBoostOnlySurfaceStillReportsMax(t *testing.T) {
	f := newFixture(t, map[string]string{
		boostPath: "0\n",
	})

	status := f.ctrl.Status(context.Background())
	require.NotNil(t, status.Mode)
	assert.Equal(t, fancontrol.ModeMax, *status.Mode)
	assert.True(t, status.BoostEnabled)
}

func TestSetModeMaxTouchesOnlyBoost(t *testing.T) {
	f := newFixture(t, fullSurface("performance", "2"))

	require.NoError(t, f.ctrl.SetMode(fancontrol.ModeMax))

	assert.Equal(t, "0", f.readFile(t, boostPath))
	assert.Equal(t, "performance", f.readFile(t, profilePath))

	status := f.ctrl.Status(context.Background())
	require.NotNil(t, status.Mode)
	assert.Equal(t, fancontrol.ModeMax, *status.Mode)
}

func TestSetModeOffExitsMaxToStoredProfile(t *testing.T) {
	f := newFixture(t, fullSurface("performance", "0"))

	require.NoError(t, f.ctrl.SetMode(fancontrol.ModeOff))

	assert.Equal(t, "2", f.readFile(t, boostPath))
	assert.Equal(t, "performance", f.readFile(t, profilePath))

	status := f.ctrl.Status(context.Background())
	require.NotNil(t, status.Mode)
	assert.Equal(t, fancontrol.ModePerformance, *status.Mode)
	assert.NotEqual(t, fancontrol.ModeMax, *status.Mode)
}

func TestSetModeProfileClearsBoostFirst(t *testing.T) {
	f := newFixture(t, fullSurface("balanced", "0"))

	require.NoError(t, f.ctrl.SetMode(fancontrol.ModeQuiet))

	assert.Equal(t, "2", f.readFile(t, boostPath))
	assert.Equal(t, "low-power", f.readFile(t, profilePath))

	status := f.ctrl.Status(context.Background())
	require.NotNil(t, status.Mode)
	assert.Equal(t, fancontrol.ModeQuiet, *status.Mode)
}

func TestSetModeQuietResolvesAliasSpelling(t *testing.T) {
	f := newFixture(t, map[string]string{
		profilePath: "balanced\n",
		choicesPath: "quiet balanced performance\n",
		boostPath:   "2\n",
	})

	require.NoError(t, f.ctrl.SetMode(fancontrol.ModeQuiet))
	assert.Equal(t, "quiet", f.readFile(t, profilePath))
}

func TestSetModeQuietNoLegalCandidateFailsWithoutMutation(t *testing.T) {
	f := newFixture(t, map[string]string{
		profilePath: "balanced\n",
		choicesPath: "balanced performance\n",
		boostPath:   "0\n",
	})

	err := f.ctrl.SetMode(fancontrol.ModeQuiet)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, fancontrol.ErrProfileUnsupported))

	assert.Equal(t, "balanced", f.readFile(t, profilePath))
	assert.Equal(t, "0", f.readFile(t, boostPath))
}

func TestSetModeProfileSurfaceUnavailable(t *testing.T) {
	f := newFixture(t, map[string]string{
		boostPath: "2\n",
	})

	err := f.ctrl.SetMode(fancontrol.ModeBalanced)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, fancontrol.ErrProfileUnavailable))
}

func TestSetModeRoundTripPerformance(t *testing.T) {
	f := newFixture(t, fullSurface("balanced", "2"))

	require.NoError(t, f.ctrl.SetMode(fancontrol.ModePerformance))

	status := f.ctrl.Status(context.Background())
	require.NotNil(t, status.Mode)
	assert.Equal(t, fancontrol.ModePerformance, *status.Mode)
}

func TestSetBoost(t *testing.T) {
	f := newFixture(t, fullSurface("balanced", "2"))

	require.NoError(t, f.ctrl.SetBoost(true))
	assert.Equal(t, "0", f.readFile(t, boostPath))

	require.NoError(t, f.ctrl.SetBoost(false))
	assert.Equal(t, "2", f.readFile(t, boostPath))
}

func TestToggleBoost(t *testing.T) {
	f := newFixture(t, fullSurface("balanced", "2"))

	require.NoError(t, f.ctrl.ToggleBoost())
	assert.Equal(t, "0", f.readFile(t, boostPath))

	require.NoError(t, f.ctrl.ToggleBoost())
	assert.Equal(t, "2", f.readFile(t, boostPath))
}

func TestToggleBoostUnavailable(t *testing.T) {
	f := newFixture(t, map[string]string{
		profilePath: "balanced\n",
		choicesPath: "balanced\n",
	})

	err := f.ctrl.ToggleBoost()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, fancontrol.ErrBoostUnavailable))
}

func TestAvailableProfiles(t *testing.T) {
	f := newFixture(t, fullSurface("balanced", "2"))

	assert.Equal(t, []string{"low-power", "balanced", "performance"}, f.ctrl.AvailableProfiles())
}
