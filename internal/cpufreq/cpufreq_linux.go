//go:build linux

package cpufreq

import "context"

// LinuxReader implements CPU frequency monitoring for Linux
type LinuxReader struct {
	cfg config
}

// newPlatformReader creates a new Linux frequency reader
func newPlatformReader(cfg config) Reader {
	return &LinuxReader{cfg: cfg}
}

// ReadAll prefers cpufreq scaling metadata and falls back to /proc/cpuinfo.
// It never returns an error on Linux.
func (r *LinuxReader) ReadAll(ctx context.Context) ([]Sample, error) {
	log := r.cfg.log

	if hasScalingMetadata(r.cfg.sysfsRoot) {
		count := r.cfg.countCPUs(ctx)
		log.WithField("cpus", count).Debug("reading cpufreq scaling metadata")
		return readScaling(log, r.cfg.sysfsRoot, count), nil
	}

	log.WithField("file", r.cfg.cpuInfoPath).Debug("no cpufreq metadata, falling back to cpuinfo")
	return readCPUInfo(log, r.cfg.cpuInfoPath), nil
}
