// Package scheduler drives the frame cadence. A Scheduler is an explicit
// state machine fed presentation-side events; exactly one render cycle is
// ever in flight, and a new cycle starts only once the previous frame has
// been consumed and the pacing interval has elapsed. All methods must be
// called from the single goroutine that dispatches events.
package scheduler

import (
	"io"
	"log/slog"
	"time"

	"github.com/acarl005/widget/surface"
)

// State is the scheduler's position in the frame lifecycle.
type State int

const (
	// StateIdle means no frame is in flight and no geometry trigger is pending.
	StateIdle State = iota
	// StateRendering means a sample+draw+present cycle is executing.
	StateRendering
	// StateAwaitingPresentation means a frame has been committed and the
	// scheduler is waiting for the consumed notification.
	StateAwaitingPresentation
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRendering:
		return "rendering"
	case StateAwaitingPresentation:
		return "awaiting-presentation"
	default:
		return "unknown"
	}
}

// RenderFunc executes one full sample+draw+present cycle at the given
// geometry.
type RenderFunc func(surface.Geometry) error

// Scheduler sequences render cycles against presentation events.
type Scheduler struct {
	logger   *slog.Logger
	interval time.Duration
	render   RenderFunc

	state      State
	geom       surface.Geometry
	configured bool
	frames     uint64
	lastStart  time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// New creates a Scheduler that enforces at least interval between the
// starts of successive cycles. If logger is nil, a no-op logger is used.
func New(interval time.Duration, render RenderFunc, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scheduler{
		logger:   logger,
		interval: interval,
		render:   render,
		state:    StateIdle,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State { return s.state }

// Geometry returns the most recently configured target geometry.
func (s *Scheduler) Geometry() surface.Geometry { return s.geom }

// Frames returns the number of cycles completed, successful or not.
func (s *Scheduler) Frames() uint64 { return s.frames }

// Dispatch applies one presentation event to the state machine.
func (s *Scheduler) Dispatch(ev surface.Event) {
	switch e := ev.(type) {
	case surface.ConfigureEvent:
		s.handleConfigure(e.Geometry)
	case surface.FrameConsumedEvent:
		s.handleFrameConsumed()
	case surface.CloseEvent:
		s.logger.Info("presentation surface closed")
	}
}

// handleConfigure applies new geometry. From Idle it triggers a cycle
// immediately; mid-cycle the stored geometry simply becomes the one the
// next natural trigger renders at, the current cycle is never interrupted.
func (s *Scheduler) handleConfigure(geom surface.Geometry) {
	if geom.Scale <= 0 {
		geom.Scale = 1
	}
	s.geom = geom
	s.configured = true
	s.logger.Debug("configured",
		"width", geom.Width, "height", geom.Height, "scale", geom.Scale)

	if s.state == StateIdle {
		s.runCycle()
	}
}

// handleFrameConsumed is the readiness gate: the committed frame has been
// consumed, so the next cycle may start. Notifications arriving in any
// other state are bursts from the presentation side and are dropped, not
// queued.
func (s *Scheduler) handleFrameConsumed() {
	if s.state != StateAwaitingPresentation {
		s.logger.Debug("dropping readiness signal", "state", s.state.String())
		return
	}
	s.state = StateIdle
	s.runCycle()
}

// runCycle executes one sample+draw+present cycle, holding back until the
// pacing interval since the previous cycle start has elapsed. A cycle that
// fails is logged and then treated as completed: the scheduler still waits
// for the next natural trigger instead of retrying immediately, so one bad
// cycle never stalls or floods the pipeline.
func (s *Scheduler) runCycle() {
	if !s.configured {
		return
	}

	if !s.lastStart.IsZero() {
		if elapsed := s.now().Sub(s.lastStart); elapsed < s.interval {
			s.sleep(s.interval - elapsed)
		}
	}

	s.state = StateRendering
	s.lastStart = s.now()

	if err := s.render(s.geom); err != nil {
		s.logger.Error("render cycle failed", "error", err, "frame", s.frames)
	}
	s.frames++

	s.state = StateAwaitingPresentation
}
