//go:build !linux

package cpufreq

import (
	"context"
	"fmt"
	"runtime"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct{}

// newPlatformReader creates a fallback frequency reader for unsupported platforms
func newPlatformReader(config) Reader {
	return &UnsupportedReader{}
}

// ReadAll returns ErrUnsupported
func (r *UnsupportedReader) ReadAll(ctx context.Context) ([]Sample, error) {
	return nil, fmt.Errorf("%s: %w", runtime.GOOS, ErrUnsupported)
}
