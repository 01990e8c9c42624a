package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/acarl005/widget/collectors"
	"github.com/acarl005/widget/collectors/sysstats"
	"github.com/acarl005/widget/config"
	"github.com/acarl005/widget/display/pixel"
	"github.com/acarl005/widget/display/render"
	"github.com/acarl005/widget/history"
	"github.com/acarl005/widget/scheduler"
	"github.com/acarl005/widget/shm"
	"github.com/acarl005/widget/surface"
)

// app owns the frame pipeline: one sampler, the three history rings, the
// shared-memory buffer, the compositor, and the scheduler that sequences
// them. A single goroutine drives everything through the event loop in run.
type app struct {
	logger *slog.Logger
	cfg    *config.Config

	sampler    collectors.Sampler
	histories  render.Histories
	compositor *render.Compositor
	buffer     *shm.Buffer
	target     surface.Target
	sched      *scheduler.Scheduler

	ctx    context.Context
	events chan surface.Event
	frames uint64
}

// newApp wires the pipeline against the given presentation target.
func newApp(cfg *config.Config, target surface.Target, logger *slog.Logger) (*app, error) {
	theme, err := render.ThemeFromHex(
		cfg.Render.Theme.Background,
		cfg.Render.Theme.Accent,
		cfg.Render.Theme.Warn,
		cfg.Render.Theme.Danger,
		cfg.Render.Theme.Text,
	)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	capacity := cfg.Render.HistoryCapacity
	a := &app{
		logger:  logger,
		cfg:     cfg,
		sampler: sysstats.NewSampler(cfg.Telemetry.Mounts, cfg.Telemetry.DiskDevices, logger),
		histories: render.Histories{
			CPU:     history.NewRing[float64](capacity),
			Read:    history.NewRing[uint64](capacity),
			Written: history.NewRing[uint64](capacity),
		},
		compositor: render.New(theme),
		buffer:     shm.NewBuffer(target, logger),
		target:     target,
		events:     make(chan surface.Event, 1),
	}
	a.sched = scheduler.New(cfg.PacingInterval(), a.renderCycle, logger)
	return a, nil
}

// renderCycle is one sample+draw+present pass, invoked by the scheduler.
// The buffer is written only after the draw completed, and the handle is
// committed only after the write completed; that ordering is what keeps the
// cross-process reader from ever observing a half-written frame.
func (a *app) renderCycle(geom surface.Geometry) error {
	snap := a.sampler.Sample(a.ctx)
	a.histories.CPU.Push(snap.CPUPercent)
	a.histories.Read.Push(snap.DiskReadBytes)
	a.histories.Written.Push(snap.DiskWriteBytes)

	pw, ph := geom.Physical()
	canvas := pixel.NewCanvas(pw, ph)
	if err := a.compositor.Draw(snap, a.histories, geom, canvas); err != nil {
		return err
	}

	if err := a.buffer.EnsureSized(pw, ph); err != nil {
		return err
	}
	a.buffer.Write(canvas.Bytes())

	// Rearm before committing so a target that consumes synchronously is
	// never missed.
	a.target.OnConsumed(a.notifyConsumed)
	if err := a.target.AttachAndCommit(a.buffer.Handle(), 0, 0); err != nil {
		return err
	}
	a.frames++
	a.logger.Debug("frame presented", "frame", a.frames, "width", pw, "height", ph)
	return nil
}

// notifyConsumed forwards the presentation side's readiness signal into the
// event loop. The queue holds a single event, so a burst of signals collapses
// into one pending trigger; extras are dropped, never queued.
func (a *app) notifyConsumed() {
	select {
	case a.events <- surface.FrameConsumedEvent{}:
	default:
	}
}

// run applies the initial configuration and then dispatches presentation
// events until the context ends, the surface closes, or maxFrames frames
// have been presented (0 means unlimited).
func (a *app) run(ctx context.Context, maxFrames uint64) error {
	a.ctx = ctx

	scale := a.cfg.Surface.Scale
	if scale <= 0 {
		scale = 1
	}
	a.sched.Dispatch(surface.ConfigureEvent{Geometry: surface.Geometry{
		Width:  a.cfg.Surface.Width,
		Height: a.cfg.Surface.Height,
		Scale:  scale,
	}})

	for {
		if maxFrames > 0 && a.frames >= maxFrames {
			a.logger.Info("frame budget reached", "frames", a.frames)
			return nil
		}
		select {
		case <-ctx.Done():
			a.logger.Info("shutting down", "frames", a.frames)
			return nil
		case ev := <-a.events:
			if _, closed := ev.(surface.CloseEvent); closed {
				a.logger.Info("surface closed", "frames", a.frames)
				return nil
			}
			a.sched.Dispatch(ev)
		}
	}
}

// close releases the shared-memory backing.
func (a *app) close() {
	if err := a.buffer.Close(); err != nil {
		a.logger.Error("failed to release frame buffer", "error", err)
	}
}
