// widget renders a live system-monitoring dashboard (CPU load, memory,
// swap, disk I/O) as pixels and presents the frames to a display compositor
// through a shared-memory surface.
//
// Usage:
//
//	widget [flags]
//
// Flags:
//
//	-config string    Path to configuration file (default: widget.yaml)
//	-out string       Output directory for the headless target (overrides config)
//	-width int        Logical surface width (overrides config)
//	-height int       Logical surface height (overrides config)
//	-scale int        Device scale factor (overrides config)
//	-interval string  Pacing interval between frames, e.g. "500ms" (overrides config)
//	-frames uint      Render this many frames then exit (0 = run until signalled)
//	-verbose          Enable verbose logging
//	-version          Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/acarl005/widget/config"
	"github.com/acarl005/widget/surface"
)

func main() {
	var (
		configPath  = flag.String("config", "widget.yaml", "Path to configuration file")
		outDir      = flag.String("out", "", "Output directory for the headless target")
		width       = flag.Int("width", 0, "Logical surface width")
		height      = flag.Int("height", 0, "Logical surface height")
		scale       = flag.Int("scale", 0, "Device scale factor")
		interval    = flag.String("interval", "", "Pacing interval between frames")
		frames      = flag.Uint64("frames", 0, "Render this many frames then exit (0 = run until signalled)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("widget %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides on top of the file.
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *width > 0 {
		cfg.Surface.Width = *width
	}
	if *height > 0 {
		cfg.Surface.Height = *height
	}
	if *scale > 0 {
		cfg.Surface.Scale = *scale
	}
	if *interval != "" {
		cfg.Render.PacingInterval = *interval
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger, cleanup, err := newLogger(cfg.LogFile, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	target, err := surface.NewHeadless(surface.HeadlessConfig{
		Dir:          cfg.Output.Dir,
		Keep:         cfg.Output.Keep,
		PreviewScale: cfg.Output.PreviewScale,
	}, logger)
	if err != nil {
		logger.Error("failed to create presentation target", "error", err)
		os.Exit(1)
	}

	a, err := newApp(cfg, target, logger)
	if err != nil {
		logger.Error("failed to assemble pipeline", "error", err)
		os.Exit(1)
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting",
		"version", version,
		"surface", fmt.Sprintf("%dx%d", cfg.Surface.Width, cfg.Surface.Height),
		"interval", cfg.PacingInterval(),
		"output", cfg.Output.Dir,
	)
	if err := a.run(ctx, *frames); err != nil {
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger, writing to the configured log file
// or stderr. The returned cleanup closes the log file, if any.
func newLogger(logFile string, verbose bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	w := os.Stderr
	cleanup := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", logFile, err)
		}
		w = f
		cleanup = func() { f.Close() }
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), cleanup, nil
}
