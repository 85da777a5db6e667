// Package cpu answers CPU topology questions for the frequency reader.
package cpu

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

var (
	countsWithContext = cpu.CountsWithContext
	infoWithContext   = cpu.InfoWithContext
)

// LogicalCount returns the number of logical CPUs, falling back to
// runtime.NumCPU when gopsutil cannot tell.
func LogicalCount(ctx context.Context) int {
	n, err := countsWithContext(ctx, true)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// ModelName returns the model of the first CPU, or "" if unknown
func ModelName(ctx context.Context) string {
	info, err := infoWithContext(ctx)
	if err != nil || len(info) == 0 {
		return ""
	}
	return info[0].ModelName
}
