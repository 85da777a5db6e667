package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CristiGvl/picoCPUFreq/internal/cpufreq"
)

type countingReader struct {
	calls   int
	samples []cpufreq.Sample
	err     error
}

func (r *countingReader) ReadAll(context.Context) ([]cpufreq.Sample, error) {
	r.calls++
	return r.samples, r.err
}

func ptr(v float64) *float64 {
	return &v
}

func stubReader(t *testing.T, r cpufreq.Reader) {
	t.Helper()
	orig := newReader
	newReader = func(...cpufreq.Option) cpufreq.Reader { return r }
	t.Cleanup(func() { newReader = orig })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestReadJSON(t *testing.T) {
	stubReader(t, &countingReader{samples: []cpufreq.Sample{
		{Minimum: ptr(800), Maximum: ptr(4200), Current: ptr(2400)},
	}})

	out, err := execute(t, "read", "--json")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 2400.0, got[0]["current_mhz"])
}

func TestReadTable(t *testing.T) {
	stubReader(t, &countingReader{samples: []cpufreq.Sample{{Current: ptr(1800.5)}}})

	out, err := execute(t, "read")
	require.NoError(t, err)
	assert.Contains(t, out, "1800.5")
}

func TestReadUnsupported(t *testing.T) {
	stubReader(t, &countingReader{err: cpufreq.ErrUnsupported})

	_, err := execute(t, "read")
	assert.True(t, errors.Is(err, cpufreq.ErrUnsupported))
}

func TestReadInvalidLogLevel(t *testing.T) {
	stubReader(t, &countingReader{})

	_, err := execute(t, "--log-level", "loud", "read")
	assert.Error(t, err)
}

func TestRunReadWatchStopsOnCancel(t *testing.T) {
	reader := &countingReader{samples: []cpufreq.Sample{{}}}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	err := runRead(ctx, &buf, reader, true, 5*time.Millisecond)
	require.NoError(t, err)
	assert.Greater(t, reader.calls, 1)
}

func TestRunReadOnce(t *testing.T) {
	reader := &countingReader{}

	var buf bytes.Buffer
	require.NoError(t, runRead(context.Background(), &buf, reader, false, 0))
	assert.Equal(t, 1, reader.calls)
}
