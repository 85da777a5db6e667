package cpufreq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}

// writeScaling populates a cpufreq directory with kHz readings.
func writeScaling(t *testing.T, dir, minKHz, maxKHz, curKHz string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, minFreqFile), minKHz)
	writeFile(t, filepath.Join(dir, maxFreqFile), maxKHz)
	writeFile(t, filepath.Join(dir, curFreqFile), curKHz)
}

func ptr(v float64) *float64 {
	return &v
}

func assertNonNegative(t *testing.T, samples []Sample) {
	t.Helper()
	for i, s := range samples {
		for _, v := range []*float64{s.Minimum, s.Maximum, s.Current} {
			if v != nil {
				require.GreaterOrEqual(t, *v, 0.0, "cpu %d", i)
			}
		}
	}
}
