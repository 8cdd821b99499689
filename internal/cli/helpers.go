package cli

import (
	"fmt"

	"github.com/omen-linux/omenctl/internal/config"
	"github.com/omen-linux/omenctl/internal/diag"
	"github.com/omen-linux/omenctl/internal/errors"
	"github.com/omen-linux/omenctl/internal/fancontrol"
	"github.com/omen-linux/omenctl/internal/hwmon"
	"github.com/omen-linux/omenctl/internal/logger"
	"github.com/omen-linux/omenctl/internal/sensors"
	"github.com/omen-linux/omenctl/internal/sysfs"
)

// app holds the process-wide object graph, constructed once per
// invocation and passed to commands explicitly. Hardware discovery
// happens here and is not repeated mid-run.
type app struct {
	cfg      *config.Config
	fs       *sysfs.FS
	registry *hwmon.Registry
	sensors  *sensors.Reader
	control  *fancontrol.Controller
	diag     *diag.Reporter
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return nil, err
	}

	fs := sysfs.New()
	registry := hwmon.Discover(fs, cfg.HwmonPaths())
	querier := sensors.NewSMIQuerier(cfg.GPUTool, cfg.GPUToolTimeout)
	reader := sensors.NewReader(fs, registry, querier)
	control := fancontrol.NewController(fs, registry, reader)

	return &app{
		cfg:      cfg,
		fs:       fs,
		registry: registry,
		sensors:  reader,
		control:  control,
		diag:     diag.NewReporter(fs, registry, reader, control),
	}, nil
}

// wrapWriteError turns a hardware write failure into an actionable
// message. Writes to sysfs control files need elevated privileges.
func wrapWriteError(err error) error {
	if errors.IsPermission(err) {
		return fmt.Errorf("%w (try running with sudo)", err)
	}

	return err
}

func formatTemp(temp *float64) string {
	if temp == nil {
		return "n/a"
	}

	return fmt.Sprintf("%.0f°C", *temp)
}
