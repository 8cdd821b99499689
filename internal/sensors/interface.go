package sensors

import "context"

// Reading is one temperature channel, constructed fresh on every scan.
// Critical and Max are nil when the sibling threshold files are absent
// or unparsable.
type Reading struct {
	Label       string   `json:"label"`
	Device      string   `json:"device"`
	Temperature float64  `json:"temperature"`
	Critical    *float64 `json:"critical,omitempty"`
	Max         *float64 `json:"max,omitempty"`
}

// FanSpeed is one fan channel reading in RPM.
type FanSpeed struct {
	Label string `json:"label"`
	RPM   int    `json:"rpm"`
}

// Summary carries the resolved canonical CPU and GPU temperatures.
// Either can be nil when no candidate sensor matched.
type Summary struct {
	CPU *float64 `json:"cpu,omitempty"`
	GPU *float64 `json:"gpu,omitempty"`
}

// GPUQuerier is the last-resort external GPU temperature source, used
// when no hwmon device exposes a GPU reading.
type GPUQuerier interface {
	Temperature(ctx context.Context) (float64, error)
}
