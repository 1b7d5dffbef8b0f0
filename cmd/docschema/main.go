package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"git.home.luguber.info/inful/docschema/internal/config"
	"git.home.luguber.info/inful/docschema/internal/metrics"
	"git.home.luguber.info/inful/docschema/internal/theme"
	"git.home.luguber.info/inful/docschema/internal/watch"
)

var CLI struct {
	Config    []string `short:"c" help:"Configuration file path(s); later files override earlier ones" default:"docschema.yaml"`
	AssetsDir string   `short:"a" help:"Base directory holding themes/, templates/ and assets/" default:"./share"`
	Verbose   bool     `short:"v" help:"Enable verbose logging"`

	Check struct{} `cmd:"" help:"Validate the configuration and report warnings"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Watch struct {
		MetricsAddr string `help:"Serve Prometheus metrics on this address (empty disables)"`
	} `cmd:"" help:"Revalidate the configuration whenever it changes"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "check":
		if err := runCheck(); err != nil {
			slog.Error("Configuration invalid", "error", err)
			os.Exit(1)
		}
	case "init":
		if err := config.Init(CLI.Config[0], CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Wrote example configuration", "path", CLI.Config[0])
	case "watch":
		if err := runWatch(); err != nil {
			slog.Error("Watch failed", "error", err)
			os.Exit(1)
		}
	}
}

func registry() *theme.Registry {
	reg, err := theme.Discover(CLI.AssetsDir)
	if err != nil {
		slog.Debug("Theme discovery failed, using builtin theme list", "error", err)
		return theme.NewRegistry(CLI.AssetsDir)
	}
	return reg
}

func runCheck() error {
	cfg, warnings, err := config.Load(config.OSFileSystem{}, registry(), CLI.Config...)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "option", w.Option, "message", w.Message)
	}
	snap, err := cfg.Snapshot()
	if err != nil {
		return err
	}
	slog.Info("Configuration valid",
		"site_name", snap.SiteName,
		"theme", snap.Theme,
		"pages", len(snap.Pages),
		"warnings", len(warnings))
	return nil
}

func runWatch() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if addr := CLI.Watch.MetricsAddr; addr != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true}))
		go func() {
			if err := http.ListenAndServe(addr, mux); err != nil {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
	}

	fsys := config.OSFileSystem{}
	reg := registry()
	schema, err := config.DefaultSchema(fsys, reg)
	if err != nil {
		return err
	}
	validator := config.NewValidator(schema, slog.Default(), recorder)

	revalidate := func(context.Context) error {
		rc, err := config.LoadFiles(CLI.Config...)
		if err != nil {
			return err
		}
		_, warnings, err := validator.Validate(rc)
		if err != nil {
			return fmt.Errorf("configuration invalid: %w", err)
		}
		for _, w := range warnings {
			slog.Warn("Configuration warning", "option", w.Option, "message", w.Message)
		}
		slog.Info("Configuration valid", "warnings", len(warnings))
		return nil
	}

	if err := revalidate(ctx); err != nil {
		slog.Error("Initial validation failed", "error", err)
	}

	watcher, err := watch.NewWatcher(CLI.Config, revalidate)
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	<-ctx.Done()
	return nil
}
