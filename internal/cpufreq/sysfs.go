package cpufreq

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	minFreqFile = "scaling_min_freq"
	maxFreqFile = "scaling_max_freq"
	curFreqFile = "scaling_cur_freq"
)

// hasScalingMetadata reports whether either cpufreq layout is present at all.
func hasScalingMetadata(root string) bool {
	return exists(filepath.Join(root, "cpufreq")) ||
		exists(filepath.Join(root, "cpu0", "cpufreq"))
}

// scalingDir resolves the cpufreq directory of one CPU. The per-cpu layout
// wins when both cpu{N}/cpufreq and cpufreq/policy{N} are present.
func scalingDir(root string, cpu int) (string, bool) {
	perCPU := filepath.Join(root, fmt.Sprintf("cpu%d", cpu), "cpufreq")
	policy := filepath.Join(root, "cpufreq", fmt.Sprintf("policy%d", cpu))

	switch {
	case exists(perCPU):
		return perCPU, true
	case exists(policy):
		return policy, true
	default:
		return "", false
	}
}

// readScaling emits exactly count samples, in CPU index order.
func readScaling(log *logrus.Logger, root string, count int) []Sample {
	samples := make([]Sample, 0, max(count, 0))

	for i := 0; i < count; i++ {
		dir, ok := scalingDir(root, i)
		if !ok {
			log.WithField("cpu", i).Debug("no cpufreq directory")
			samples = append(samples, Sample{})
			continue
		}

		samples = append(samples, Sample{
			Minimum: readMeasurement(log, i, filepath.Join(dir, minFreqFile)),
			Maximum: readMeasurement(log, i, filepath.Join(dir, maxFreqFile)),
			Current: readMeasurement(log, i, filepath.Join(dir, curFreqFile)),
		})
	}

	return samples
}

func readMeasurement(log *logrus.Logger, cpu int, path string) *float64 {
	mhz, err := readKHzAsMHz(path)
	if err != nil {
		log.WithFields(logrus.Fields{
			"cpu":   cpu,
			"file":  path,
			"error": err,
		}).Debug("cpu frequency unavailable")
		return nil
	}
	return &mhz
}

// readKHzAsMHz reads a kHz count such as "2400000\n" and returns 2400.
func readKHzAsMHz(path string) (float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	khz, err := parseFrequency(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, err
	}

	return khz / 1000, nil
}

// parseFrequency accepts finite, non-negative numbers only.
func parseFrequency(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("invalid frequency %q", s)
	}
	return v, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
