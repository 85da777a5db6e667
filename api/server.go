package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	"github.com/CristiGvl/picoCPUFreq/internal/cpufreq"
	"github.com/CristiGvl/picoCPUFreq/internal/platform"
)

// Server represents the API server
type Server struct {
	app        *fiber.App
	log        *logrus.Logger
	freqReader cpufreq.Reader
}

// NewServer creates a new API server
func NewServer(log *logrus.Logger, reader cpufreq.Reader) (*Server, error) {
	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		return nil, err
	}

	return newServer(log, reader), nil
}

func newServer(log *logrus.Logger, reader cpufreq.Reader) *Server {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "picoCPUFreq",
		AppName:               "picoCPUFreq v1.0",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Output: log.Writer(),
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		MaxAge:       86400, // 24 hours
	}))

	server := &Server{
		app:        app,
		log:        log,
		freqReader: reader,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	api.Get("/cpu/freq", s.getFrequencies)
	api.Get("/health", s.healthCheck)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	s.log.WithField("address", address).Info("starting picoCPUFreq server")
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
