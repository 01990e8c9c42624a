// Package collectors defines the telemetry contract the render pipeline
// consumes. A Sampler produces one Snapshot per render cycle. Sampling is
// best-effort: counters that cannot be read come back as zeros with a
// warning attached, never as an error, so a bad probe blanks one dashboard
// element instead of halting the pipeline.
package collectors

import (
	"context"
	"time"
)

// MountUsage is the fill level of one tracked mount point.
type MountUsage struct {
	// Path is the mount point (e.g. "/", "/home").
	Path string
	// UsedPercent is the used fraction of the filesystem, 0 to 100.
	UsedPercent float64
}

// Snapshot is one reading of every metric the dashboard draws. It is derived
// fresh each cycle and never stored; trend data lives in the history rings.
type Snapshot struct {
	// Timestamp records when the sample was taken.
	Timestamp time.Time

	// CPUPercent is the average CPU usage since the previous sample, 0-100.
	CPUPercent float64
	// PerCore holds per-core usage percentages, 0-100 each.
	PerCore []float64

	// Load1, Load5, Load15 are the system load averages.
	Load1, Load5, Load15 float64

	// MemTotal and MemUsed are physical memory sizes in bytes.
	MemTotal, MemUsed uint64
	// SwapTotal and SwapUsed are swap sizes in bytes.
	SwapTotal, SwapUsed uint64

	// Mounts holds usage for each tracked mount point, in configured order.
	Mounts []MountUsage

	// DiskReadBytes and DiskWriteBytes are cumulative transfer counters
	// summed across tracked devices since boot.
	DiskReadBytes, DiskWriteBytes uint64

	// Warnings lists counters that could not be read this cycle and were
	// reported as zero.
	Warnings []string
}

// Sampler reads host telemetry on demand. Implementations own no history
// and must tolerate being called at the render cadence.
type Sampler interface {
	// Name returns the sampler's identifier for logs.
	Name() string

	// Description returns a human-readable description of what is sampled.
	Description() string

	// Sample reads all counters once. It blocks briefly on OS reads but
	// never fails; unavailable counters degrade to zero with a warning.
	Sample(ctx context.Context) Snapshot
}
