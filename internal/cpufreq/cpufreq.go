// Package cpufreq reports per-CPU clock frequencies.
package cpufreq

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/CristiGvl/picoCPUFreq/internal/cpu"
)

// ErrUnsupported is returned by ReadAll on platforms without a known
// acquisition strategy.
var ErrUnsupported = errors.New("cpu frequency monitoring not supported on this platform")

const (
	defaultSysfsRoot   = "/sys/devices/system/cpu"
	defaultCPUInfoPath = "/proc/cpuinfo"
)

// Sample holds the frequency readings of one logical CPU in MHz.
// A nil field means the value could not be obtained.
type Sample struct {
	Minimum *float64 `json:"min_mhz"`
	Maximum *float64 `json:"max_mhz"`
	Current *float64 `json:"current_mhz"`
}

// Reader interface for CPU frequency monitoring
type Reader interface {
	// ReadAll returns one sample per logical CPU, or per "cpu MHz" entry
	// when scaling metadata is absent. It only fails with ErrUnsupported.
	ReadAll(ctx context.Context) ([]Sample, error)
}

// Option customizes a Reader.
type Option func(*config)

type config struct {
	log         *logrus.Logger
	sysfsRoot   string
	cpuInfoPath string
	countCPUs   func(context.Context) int
}

// WithLogger sets the logger used to report degraded readings.
func WithLogger(log *logrus.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithSysfsRoot overrides /sys/devices/system/cpu.
func WithSysfsRoot(root string) Option {
	return func(c *config) {
		if root != "" {
			c.sysfsRoot = root
		}
	}
}

// WithCPUInfoPath overrides /proc/cpuinfo.
func WithCPUInfoPath(path string) Option {
	return func(c *config) {
		if path != "" {
			c.cpuInfoPath = path
		}
	}
}

// WithCPUCounter overrides the logical CPU count source.
func WithCPUCounter(fn func(context.Context) int) Option {
	return func(c *config) {
		if fn != nil {
			c.countCPUs = fn
		}
	}
}

// NewReader creates a new frequency reader for the current platform
func NewReader(opts ...Option) Reader {
	return newPlatformReader(newConfig(opts))
}

func newConfig(opts []Option) config {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	cfg := config{
		log:         discard,
		sysfsRoot:   defaultSysfsRoot,
		cpuInfoPath: defaultCPUInfoPath,
		countCPUs:   cpu.LogicalCount,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
