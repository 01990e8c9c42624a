// Package render composes the dashboard. The Compositor is a pure function
// of the telemetry snapshot, the history rings, and the target geometry:
// drawing the same inputs always produces byte-identical pixels, which is
// what makes frames diffable in tests.
package render

import (
	"fmt"

	"github.com/acarl005/widget/collectors"
	"github.com/acarl005/widget/display/pixel"
	"github.com/acarl005/widget/display/widgets"
	"github.com/acarl005/widget/history"
	"github.com/acarl005/widget/surface"
)

// Histories bundles the three metric series the dashboard trends.
type Histories struct {
	// CPU holds usage percentages.
	CPU *history.Ring[float64]
	// Read and Written hold cumulative disk transfer counters.
	Read    *history.Ring[uint64]
	Written *history.Ring[uint64]
}

// Compositor draws the fixed dashboard layout.
type Compositor struct {
	theme Theme
}

// New creates a Compositor with the given palette.
func New(theme Theme) *Compositor {
	return &Compositor{theme: theme}
}

// layout holds the per-frame metrics derived from geometry. Everything is
// in physical pixels.
type layout struct {
	scale  int
	margin int
	gap    int
	lineH  int
	barH   int
	sparkH int
	coreH  int
	arcR   int
	arcT   int
}

func newLayout(geom surface.Geometry, pw, ph int) layout {
	s := geom.Scale
	return layout{
		scale:  s,
		margin: 16 * s,
		gap:    8 * s,
		lineH:  widgets.TextHeight() + 3*s,
		barH:   10 * s,
		sparkH: 40 * s,
		coreH:  28 * s,
		arcR:   min(pw, ph) / 5,
		arcT:   10 * s,
	}
}

// required returns the vertical extent of the full layout for the given
// number of tracked mounts.
func (l layout) required(mounts int) int {
	h := l.margin                       // top margin
	h += 2*l.arcR + l.arcT + l.gap      // load arc
	h += l.lineH + l.sparkH + l.gap     // cpu sparkline
	h += l.coreH + l.gap                // per-core bars
	h += 2 * (l.lineH + l.barH + l.gap) // mem + swap
	h += mounts * (l.lineH + l.barH + l.gap)
	h += l.lineH + l.sparkH // disk throughput
	h += l.margin
	return h
}

// Draw renders the dashboard into canvas. The canvas must match the
// geometry's physical dimensions; a canvas too small to hold the layout
// fails the cycle.
func (c *Compositor) Draw(snap collectors.Snapshot, hist Histories, geom surface.Geometry, canvas *pixel.Canvas) error {
	pw, ph := geom.Physical()
	if canvas.Width() != pw || canvas.Height() != ph {
		return fmt.Errorf("render: canvas %dx%d does not match geometry %dx%d",
			canvas.Width(), canvas.Height(), pw, ph)
	}

	l := newLayout(geom, pw, ph)
	if need := l.required(len(snap.Mounts)); ph < need || pw < 2*l.margin+64*l.scale {
		return fmt.Errorf("render: %dx%d canvas too small for dashboard layout (need %dx%d)",
			pw, ph, 2*l.margin+64*l.scale, need)
	}

	t := c.theme
	canvas.Fill(t.Background)

	x := l.margin
	w := pw - 2*l.margin
	y := l.margin

	// Load arc: sweep is the 1-minute load average capped at one full turn.
	cx := float64(pw) / 2
	cy := float64(y + l.arcR + l.arcT/2)
	widgets.DrawArcGauge(canvas, widgets.ArcGaugeConfig{
		CenterX: cx, CenterY: cy,
		Radius:    float64(l.arcR),
		Thickness: float64(l.arcT),
		Fraction:  snap.Load1,
		Track:     t.Surface,
		Fill:      t.Accent,
	})
	widgets.DrawTextCentered(canvas, pw/2, int(cy)+widgets.TextHeight()/2,
		fmt.Sprintf("load %.2f", snap.Load1), t.Text)
	y += 2*l.arcR + l.arcT + l.gap

	// CPU usage trend.
	widgets.DrawText(canvas, x, y+widgets.TextHeight(),
		fmt.Sprintf("cpu %3.0f%%", snap.CPUPercent), t.Text)
	y += l.lineH
	widgets.DrawSparkline(canvas, widgets.SparklineConfig{
		X: x, Y: y, Width: w, Height: l.sparkH,
		Data: hist.CPU.All(),
		Min:  0, Max: 100,
		Color:    t.Accent,
		Baseline: t.Surface,
	})
	y += l.sparkH + l.gap

	// Per-core cells.
	if n := len(snap.PerCore); n > 0 {
		cellGap := 2 * l.scale
		cellW := (w - (n-1)*cellGap) / n
		if cellW < 1 {
			cellW, cellGap = 1, 0
		}
		for i, core := range snap.PerCore {
			widgets.DrawVBar(canvas, widgets.VBarConfig{
				X: x + i*(cellW+cellGap), Y: y,
				Width: cellW, Height: l.coreH,
				Percent: core,
				Fill:    t.Accent, Warn: t.Warn, Danger: t.Danger,
				Empty: t.Surface,
			})
		}
	}
	y += l.coreH + l.gap

	y = c.drawUsageBar(canvas, l, x, y, w, "mem", snap.MemUsed, snap.MemTotal)
	y = c.drawUsageBar(canvas, l, x, y, w, "swap", snap.SwapUsed, snap.SwapTotal)

	for _, mount := range snap.Mounts {
		widgets.DrawText(canvas, x, y+widgets.TextHeight(),
			fmt.Sprintf("%s %3.0f%%", mount.Path, mount.UsedPercent), t.Muted)
		y += l.lineH
		widgets.DrawBar(canvas, widgets.BarConfig{
			X: x, Y: y, Width: w, Height: l.barH,
			Percent: mount.UsedPercent,
			Fill:    t.Accent, Warn: t.Warn, Danger: t.Danger,
			Empty: t.Surface,
		})
		y += l.barH + l.gap
	}

	// Disk throughput: cumulative counters in the caption, per-cycle deltas
	// in the two half-width sparklines.
	widgets.DrawText(canvas, x, y+widgets.TextHeight(),
		fmt.Sprintf("io rd %s wr %s",
			widgets.FormatBytes(snap.DiskReadBytes),
			widgets.FormatBytes(snap.DiskWriteBytes)), t.Text)
	y += l.lineH
	halfW := (w - l.gap) / 2
	widgets.DrawSparkline(canvas, widgets.SparklineConfig{
		X: x, Y: y, Width: halfW, Height: l.sparkH,
		Data:     counterDeltas(hist.Read),
		Color:    t.Accent,
		Baseline: t.Surface,
	})
	widgets.DrawSparkline(canvas, widgets.SparklineConfig{
		X: x + halfW + l.gap, Y: y, Width: halfW, Height: l.sparkH,
		Data:     counterDeltas(hist.Written),
		Color:    t.Danger,
		Baseline: t.Surface,
	})

	return nil
}

// drawUsageBar paints one labeled used/total byte bar and returns the next y.
func (c *Compositor) drawUsageBar(canvas *pixel.Canvas, l layout, x, y, w int, label string, used, total uint64) int {
	percent := 0.0
	if total > 0 {
		percent = float64(used) / float64(total) * 100
	}
	widgets.DrawText(canvas, x, y+widgets.TextHeight(),
		fmt.Sprintf("%s %s / %s", label, widgets.FormatBytes(used), widgets.FormatBytes(total)),
		c.theme.Muted)
	y += l.lineH
	widgets.DrawBar(canvas, widgets.BarConfig{
		X: x, Y: y, Width: w, Height: l.barH,
		Percent: percent,
		Fill:    c.theme.Accent, Warn: c.theme.Warn, Danger: c.theme.Danger,
		Empty: c.theme.Surface,
	})
	return y + l.barH + l.gap
}

// counterDeltas converts a cumulative counter series into per-cycle deltas,
// most-recent-first. Counter resets (a smaller newer value) clamp to zero.
func counterDeltas(r *history.Ring[uint64]) []float64 {
	vals := r.All()
	if len(vals) < 2 {
		return nil
	}
	out := make([]float64, len(vals)-1)
	for i := 0; i+1 < len(vals); i++ {
		if vals[i] >= vals[i+1] {
			out[i] = float64(vals[i] - vals[i+1])
		}
	}
	return out
}
