package cpufreq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// cpuMHzKey is matched case-insensitively at the start of a cpuinfo line.
const cpuMHzKey = "cpu mhz"

// readCPUInfo is the fallback used when no cpufreq directory exists. An
// unreadable file yields an empty result.
func readCPUInfo(log *logrus.Logger, path string) []Sample {
	f, err := os.Open(path)
	if err != nil {
		log.WithFields(logrus.Fields{
			"file":  path,
			"error": err,
		}).Debug("cpuinfo unavailable")
		return []Sample{}
	}
	defer f.Close()

	return parseCPUInfo(log, f)
}

// parseCPUInfo returns one sample per "cpu MHz : <value>" line, in file
// order. Lines whose value cannot be parsed are skipped.
func parseCPUInfo(log *logrus.Logger, r io.Reader) []Sample {
	samples := []Sample{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !strings.HasPrefix(strings.ToLower(line), cpuMHzKey) {
			continue
		}

		mhz, err := parseCPUMHzLine(line)
		if err != nil {
			log.WithFields(logrus.Fields{
				"line":  lineNo,
				"error": err,
			}).Warn("skipping malformed cpu MHz line")
			continue
		}

		samples = append(samples, Sample{Current: &mhz})
	}
	if err := scanner.Err(); err != nil {
		log.WithError(err).Warn("cpuinfo read interrupted")
	}

	return samples
}

// parseCPUMHzLine takes the 4th field: "cpu", "MHz", ":", value.
func parseCPUMHzLine(line string) (float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return 0, fmt.Errorf("expected at least 4 fields, got %d", len(fields))
	}
	return parseFrequency(fields[3])
}
