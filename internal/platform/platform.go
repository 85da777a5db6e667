package platform

import (
	"fmt"
	"runtime"

	"github.com/CristiGvl/picoCPUFreq/internal/cpufreq"
)

// SupportedOS represents supported operating systems
type SupportedOS string

const (
	Linux SupportedOS = "linux"
)

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsSupported returns true if the current OS exposes cpufreq or cpuinfo
func IsSupported() bool {
	return isSupported(GetOS())
}

func isSupported(os SupportedOS) bool {
	return os == Linux
}

// ValidateSupport returns an error wrapping cpufreq.ErrUnsupported if the
// current OS is not supported
func ValidateSupport() error {
	return validate(GetOS())
}

func validate(os SupportedOS) error {
	if !isSupported(os) {
		return fmt.Errorf("unsupported operating system: %s. Supported: linux: %w", os, cpufreq.ErrUnsupported)
	}
	return nil
}
