// Package config loads settings from /etc/omenctl.toml, environment
// variables, and command-line flags, in increasing precedence.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/omen-linux/omenctl/internal/errors"
	"github.com/omen-linux/omenctl/internal/hwmon"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel       = "warning"
	DefaultGPUTool        = "nvidia-smi"
	DefaultGPUToolTimeout = 2 * time.Second

	configName = "omenctl"
	configType = "toml"
	configPath = "/etc"
	envPrefix  = "OMENCTL"
)

type Config struct {
	// LogLevel is one of debug, info, warning, error.
	LogLevel string `mapstructure:"log_level"`

	// GPUTool is the external GPU temperature query command, used only
	// when no hwmon device exposes a GPU channel.
	GPUTool        string        `mapstructure:"gpu_tool"`
	GPUToolTimeout time.Duration `mapstructure:"gpu_tool_timeout"`

	// SysfsRoot relocates the probed sysfs hierarchy, for staged trees.
	SysfsRoot string `mapstructure:"sysfs_root"`
}

// Load reads configuration from file, environment, and flags. The
// config file location can be overridden with OMENCTL_CONFIG.
func Load() (*Config, error) {
	errFactory := errors.New()
	v := viper.New()

	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("gpu_tool", DefaultGPUTool)
	v.SetDefault("gpu_tool_timeout", DefaultGPUToolTimeout.String())
	v.SetDefault("sysfs_root", "")

	if path := os.Getenv(envPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(configPath)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	if err := bindFlags(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// bindFlags overlays command-line flags onto the configuration. A
// fresh flag set is parsed each call with unknown flags whitelisted,
// so the CLI layer keeps ownership of its own flag surface.
func bindFlags(v *viper.Viper) error {
	errFactory := errors.New()

	flags := pflag.NewFlagSet(configName, pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.Usage = func() {}
	flags.String("log-level", "", "Log level (debug, info, warning, error)")
	flags.String("gpu-tool", "", "External GPU temperature query command")
	flags.String("sysfs-root", "", "Alternative sysfs root for staged trees")

	if err := flags.Parse(os.Args[1:]); err != nil && err != pflag.ErrHelp {
		return errFactory.Wrap(errors.ErrBindFlags, err)
	}

	for flagName, key := range map[string]string{
		"log-level":  "log_level",
		"gpu-tool":   "gpu_tool",
		"sysfs-root": "sysfs_root",
	} {
		if flag := flags.Lookup(flagName); flag != nil && flag.Changed {
			v.Set(key, flag.Value.String())
		}
	}

	return nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	errFactory := errors.New()

	switch c.LogLevel {
	case "debug", "info", "warning", "warn", "error":
	default:
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	if c.GPUToolTimeout <= 0 {
		c.GPUToolTimeout = DefaultGPUToolTimeout
	}

	return nil
}

// HwmonPaths returns the sysfs locations to probe, relocated under
// SysfsRoot when one is configured.
func (c *Config) HwmonPaths() hwmon.Paths {
	paths := hwmon.DefaultPaths()
	if c.SysfsRoot == "" {
		return paths
	}

	paths.PlatformProfile = filepath.Join(c.SysfsRoot, paths.PlatformProfile)
	paths.ProfileChoices = filepath.Join(c.SysfsRoot, paths.ProfileChoices)
	paths.HPPlatform = filepath.Join(c.SysfsRoot, paths.HPPlatform)
	paths.HwmonClass = filepath.Join(c.SysfsRoot, paths.HwmonClass)

	return paths
}
