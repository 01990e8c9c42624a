// Package sysstats implements the host telemetry sampler on top of gopsutil.
package sysstats

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/acarl005/widget/collectors"
)

const (
	samplerName        = "sysstats"
	samplerDescription = "Host CPU, memory, swap, and disk counters"
)

// Sampler reads CPU, memory, swap, disk usage and disk throughput counters.
// CPU usage is computed as the delta since the previous Sample call, so the
// first snapshot reports zero and seeds the counters.
type Sampler struct {
	logger *slog.Logger

	// mounts are the mount points reported in Snapshot.Mounts.
	mounts []string
	// devices restricts throughput counters to the named block devices;
	// empty sums every device.
	devices []string

	// Overridable probes for testing.
	cpuPercent    func(ctx context.Context, interval time.Duration, percpu bool) ([]float64, error)
	virtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	swapMemory    func(ctx context.Context) (*mem.SwapMemoryStat, error)
	diskUsage     func(ctx context.Context, path string) (*disk.UsageStat, error)
	ioCounters    func(ctx context.Context, names ...string) (map[string]disk.IOCountersStat, error)
	loadAvg       func(ctx context.Context) (*load.AvgStat, error)
}

// NewSampler creates a Sampler tracking the given mount points and block
// devices. If logger is nil, a no-op logger is used.
func NewSampler(mounts, devices []string, logger *slog.Logger) *Sampler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if len(mounts) == 0 {
		mounts = []string{"/"}
	}
	return &Sampler{
		logger:        logger,
		mounts:        mounts,
		devices:       devices,
		cpuPercent:    cpu.PercentWithContext,
		virtualMemory: mem.VirtualMemoryWithContext,
		swapMemory:    mem.SwapMemoryWithContext,
		diskUsage:     disk.UsageWithContext,
		ioCounters:    disk.IOCountersWithContext,
		loadAvg:       load.AvgWithContext,
	}
}

// Name returns the sampler's identifier.
func (s *Sampler) Name() string { return samplerName }

// Description returns what this sampler reads.
func (s *Sampler) Description() string { return samplerDescription }

// Sample reads every counter once. Failed reads degrade to zero with a
// warning rather than failing the snapshot.
func (s *Sampler) Sample(ctx context.Context) collectors.Snapshot {
	snap := collectors.Snapshot{Timestamp: time.Now()}

	if avg, err := s.cpuPercent(ctx, 0, false); err != nil {
		snap.Warnings = append(snap.Warnings, fmt.Sprintf("sysstats: cpu average: %v", err))
	} else if len(avg) > 0 {
		snap.CPUPercent = clampPercent(avg[0])
	}

	if cores, err := s.cpuPercent(ctx, 0, true); err != nil {
		snap.Warnings = append(snap.Warnings, fmt.Sprintf("sysstats: per-core cpu: %v", err))
	} else {
		snap.PerCore = make([]float64, len(cores))
		for i, v := range cores {
			snap.PerCore[i] = clampPercent(v)
		}
	}

	if lavg, err := s.loadAvg(ctx); err != nil {
		snap.Warnings = append(snap.Warnings, fmt.Sprintf("sysstats: load average: %v", err))
	} else {
		snap.Load1, snap.Load5, snap.Load15 = lavg.Load1, lavg.Load5, lavg.Load15
	}

	if vm, err := s.virtualMemory(ctx); err != nil {
		snap.Warnings = append(snap.Warnings, fmt.Sprintf("sysstats: virtual memory: %v", err))
	} else {
		snap.MemTotal, snap.MemUsed = vm.Total, vm.Used
	}

	if sw, err := s.swapMemory(ctx); err != nil {
		snap.Warnings = append(snap.Warnings, fmt.Sprintf("sysstats: swap: %v", err))
	} else {
		snap.SwapTotal, snap.SwapUsed = sw.Total, sw.Used
	}

	snap.Mounts = make([]collectors.MountUsage, 0, len(s.mounts))
	for _, mount := range s.mounts {
		usage := collectors.MountUsage{Path: mount}
		if u, err := s.diskUsage(ctx, mount); err != nil {
			snap.Warnings = append(snap.Warnings, fmt.Sprintf("sysstats: disk usage %s: %v", mount, err))
		} else {
			usage.UsedPercent = clampPercent(u.UsedPercent)
		}
		snap.Mounts = append(snap.Mounts, usage)
	}

	if counters, err := s.ioCounters(ctx, s.devices...); err != nil {
		snap.Warnings = append(snap.Warnings, fmt.Sprintf("sysstats: disk io counters: %v", err))
	} else {
		for _, c := range counters {
			snap.DiskReadBytes += c.ReadBytes
			snap.DiskWriteBytes += c.WriteBytes
		}
	}

	for _, w := range snap.Warnings {
		s.logger.Warn("counter degraded to zero", "warning", w)
	}
	s.logger.Debug("sampled host telemetry",
		"cpu", fmt.Sprintf("%.1f%%", snap.CPUPercent),
		"cores", len(snap.PerCore),
		"mem_used", snap.MemUsed,
		"read_bytes", snap.DiskReadBytes,
		"write_bytes", snap.DiskWriteBytes,
	)
	return snap
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Compile-time interface compliance check.
var _ collectors.Sampler = (*Sampler)(nil)
