package sensors

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/omen-linux/omenctl/internal/errors"
)

// DefaultGPUToolTimeout bounds the external query. On expiry the result
// is "no reading", never an escalated failure.
const DefaultGPUToolTimeout = 2 * time.Second

// SMIQuerier shells out to nvidia-smi for machines where the NVIDIA
// driver exposes no hwmon temperature channel.
type SMIQuerier struct {
	path    string
	timeout time.Duration
}

// NewSMIQuerier returns a querier for the given tool path. An empty
// path selects "nvidia-smi" from PATH; a non-positive timeout selects
// the default.
func NewSMIQuerier(path string, timeout time.Duration) *SMIQuerier {
	if path == "" {
		path = "nvidia-smi"
	}
	if timeout <= 0 {
		timeout = DefaultGPUToolTimeout
	}

	return &SMIQuerier{path: path, timeout: timeout}
}

// Temperature runs the query tool and parses the first output line as
// degrees Celsius. Tool-missing, timeout, and bad output all collapse
// into an error the caller treats as "no reading".
func (q *SMIQuerier) Temperature(ctx context.Context) (float64, error) {
	errFactory := errors.New()

	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, q.path,
		"--query-gpu=temperature.gpu", "--format=csv,noheader,nounits").Output()
	if err != nil {
		return 0, errFactory.Wrap(ErrGPUToolFailed, err)
	}

	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	temp, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, errFactory.Wrap(ErrGPUToolMalformed, err)
	}

	return temp, nil
}
