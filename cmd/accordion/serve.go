package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/accordion/internal/config"
	"github.com/vango-dev/accordion/internal/errors"
	"github.com/vango-dev/accordion/pkg/live"
	"github.com/vango-dev/accordion/pkg/telemetry"
)

type serveOptions struct {
	addr          string
	container     string
	watch         bool
	reducedMotion bool
	noMetrics     bool
}

func serveCmd(flags *globalFlags) *cobra.Command {
	opts := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve [page.html]",
		Short: "Serve a page with live accordion transitions",
		Long: `Serve an HTML page and drive its accordion from the server.

Each browser tab gets its own accordion over a WebSocket: clicks, viewport
resizes and the reduced-motion preference are sent up, attribute patches
for every transition frame are sent down.

With --watch, edits to the config file apply to open tabs immediately.

Examples:
  accordion serve
  accordion serve faq.html --addr=0.0.0.0:8080
  accordion serve faq.html --config=accordion.json --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd.OutOrStdout(), flags, file, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", "", "Address to listen on (default from "+configFileHint+")")
	cmd.Flags().StringVar(&opts.container, "container", "", "Id of the element holding the items (default: whole page)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the config file on change")
	cmd.Flags().BoolVar(&opts.reducedMotion, "reduced-motion", false, "Assume reduced motion until a browser reports its preference")
	cmd.Flags().BoolVar(&opts.noMetrics, "no-metrics", false, "Do not expose /metrics")

	return cmd
}

func runServe(ctx context.Context, stdout io.Writer, flags *globalFlags, file string, opts serveOptions) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if opts.reducedMotion {
		cfg.Server.ReducedMotionDefault = true
	}
	if opts.noMetrics {
		cfg.Server.Metrics = false
	}
	if opts.watch && cfg.Path() == "" {
		return errors.New(errors.CodeConfigRead).
			WithDetail("--watch needs a config file").
			WithSuggestion("Create " + config.ConfigFileName + " or pass --config")
	}

	page, err := pageSource(file)
	if err != nil {
		return err
	}

	liveConfig := live.Config{
		Page:          page,
		ContainerID:   opts.container,
		Options:       cfg.Options(),
		ReducedMotion: cfg.Server.ReducedMotionDefault,
		Tracer:        telemetry.NewTracer(nil),
		Logger:        slog.Default(),
	}
	if cfg.Server.Metrics {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		liveConfig.Metrics = telemetry.NewMetrics(telemetry.WithRegistry(registry))
		liveConfig.Gatherer = registry
	}

	server := live.NewServer(liveConfig)

	if opts.watch {
		updates, err := config.Watch(ctx, cfg.Path(), slog.Default())
		if err != nil {
			return err
		}
		go func() {
			for next := range updates {
				server.Reconfigure(next.Options())
				slog.Info("config reloaded", "path", next.Path(), "sessions", server.SessionCount())
			}
		}()
	}

	printBanner(stdout)
	fmt.Fprintln(stdout, "  serve")
	fmt.Fprintln(stdout)
	if cfg.Path() == "" {
		warn(stdout, "No %s found, using defaults", config.ConfigFileName)
	}
	success(stdout, "Listening on http://%s", cfg.Server.Addr)
	if liveConfig.Gatherer != nil {
		info(stdout, "Metrics on http://%s/metrics", cfg.Server.Addr)
	}
	fmt.Fprintln(stdout)

	err = server.ListenAndServe(ctx, cfg.Server.Addr)
	if ctx.Err() != nil {
		fmt.Fprintln(stdout, "\n  Shutting down...")
	}
	return err
}
