package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/CristiGvl/picoCPUFreq/internal/cpu"
	"github.com/CristiGvl/picoCPUFreq/internal/cpufreq"
	"github.com/CristiGvl/picoCPUFreq/internal/platform"
	"github.com/CristiGvl/picoCPUFreq/internal/render"
)

var kernelVersion = host.KernelVersionWithContext

// frequencyResponse is the body of GET /api/cpu/freq
type frequencyResponse struct {
	Count int            `json:"count"`
	CPUs  []render.Entry `json:"cpus"`
}

// CPU frequency endpoint
func (s *Server) getFrequencies(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	samples, err := s.freqReader.ReadAll(ctx)
	if errors.Is(err, cpufreq.ErrUnsupported) {
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	entries := render.Entries(samples)
	return c.JSON(frequencyResponse{
		Count: len(entries),
		CPUs:  entries,
	})
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	kernel, err := kernelVersion(ctx)
	if err != nil {
		s.log.WithError(err).Debug("kernel version unavailable")
	}

	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.GetOS(),
		"kernel":    kernel,
		"cpu_model": cpu.ModelName(ctx),
		"timestamp": time.Now().Unix(),
	})
}
