package main

import (
	"context"
	"io"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/CristiGvl/picoCPUFreq/api"
	"github.com/CristiGvl/picoCPUFreq/internal/cpufreq"
	"github.com/CristiGvl/picoCPUFreq/internal/logging"
	"github.com/CristiGvl/picoCPUFreq/internal/render"
)

var newReader = cpufreq.NewReader

type rootOptions struct {
	logLevel string
	log      *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "picocpufreq",
		Short:        "Report per-CPU clock frequencies",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(opts.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", logging.DefaultLevel, "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newReadCmd(opts), newServeCmd(opts))
	return cmd
}

func newReadCmd(opts *rootOptions) *cobra.Command {
	var (
		asJSON      bool
		watch       time.Duration
		sysfsRoot   string
		cpuInfoPath string
	)

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Print min, max and current frequency of every CPU",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := newReader(
				cpufreq.WithLogger(opts.log),
				cpufreq.WithSysfsRoot(sysfsRoot),
				cpufreq.WithCPUInfoPath(cpuInfoPath),
			)
			return runRead(cmd.Context(), cmd.OutOrStdout(), reader, asJSON, watch)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().DurationVar(&watch, "watch", 0, "repeat every interval until interrupted (0 reads once)")
	cmd.Flags().StringVar(&sysfsRoot, "sysfs-root", "", "cpu sysfs directory (default /sys/devices/system/cpu)")
	cmd.Flags().StringVar(&cpuInfoPath, "cpuinfo", "", "cpuinfo file (default /proc/cpuinfo)")

	return cmd
}

func runRead(ctx context.Context, w io.Writer, reader cpufreq.Reader, asJSON bool, watch time.Duration) error {
	for {
		samples, err := reader.ReadAll(ctx)
		if err != nil {
			return err
		}

		if asJSON {
			err = render.JSON(w, samples)
		} else {
			err = render.Table(w, samples)
		}
		if err != nil {
			return err
		}

		if watch <= 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(watch):
		}
	}
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var bind, port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve frequency readings over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := api.NewServer(opts.log, newReader(cpufreq.WithLogger(opts.log)))
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			go func() {
				<-ctx.Done()
				if err := server.Shutdown(); err != nil {
					opts.log.WithError(err).Error("error during shutdown")
				}
			}()

			err = server.Start(net.JoinHostPort(bind, port))
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "0.0.0.0", "IP address to bind the server to")
	cmd.Flags().StringVar(&port, "port", "8080", "Port to run the server on")

	return cmd
}
