package hwmon

// Device is one hwmon directory with its declared name, captured once
// at discovery. Laptop thermal sensors are not hot-pluggable in
// practice, so the set is never invalidated mid-run.
type Device struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Paths holds the sysfs/ACPI roots the registry probes. Overridable so
// tests and staged trees can relocate the whole hierarchy.
type Paths struct {
	PlatformProfile string
	ProfileChoices  string
	HPPlatform      string
	HwmonClass      string
}

// DefaultPaths returns the live kernel locations.
func DefaultPaths() Paths {
	return Paths{
		PlatformProfile: "/sys/firmware/acpi/platform_profile",
		ProfileChoices:  "/sys/firmware/acpi/platform_profile_choices",
		HPPlatform:      "/sys/devices/platform/hp-wmi",
		HwmonClass:      "/sys/class/hwmon",
	}
}
