// Package sysmon samples host-wide CPU and memory load. Benchmarks taken on a
// busy host are not comparable, so the load is logged alongside the run.
package sysmon

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/agbru/microbench/internal/logging"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	NumCPU     int     // logical CPUs
}

// DefaultInterval is the window over which Sample measures CPU load.
const DefaultInterval = 200 * time.Millisecond

// Sample collects a system-wide CPU and memory snapshot, measuring CPU load
// over DefaultInterval.
func Sample() Stats {
	return SampleOver(DefaultInterval)
}

// SampleOver collects a snapshot with CPU load measured over interval. It
// blocks for interval. A non-positive interval is raised to DefaultInterval:
// gopsutil would otherwise report load since its previous call, which for
// the first call is the whole uptime. Returns zero values on error.
func SampleOver(interval time.Duration) Stats {
	if interval <= 0 {
		interval = DefaultInterval
	}
	var s Stats
	cpuPcts, err := cpu.Percent(interval, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	if n, err := cpu.Counts(true); err == nil {
		s.NumCPU = n
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Fields returns the snapshot as log fields.
func (s Stats) Fields() []logging.Field {
	return []logging.Field{
		logging.Float64("host_cpu_percent", s.CPUPercent),
		logging.Float64("host_mem_percent", s.MemPercent),
		logging.Int("host_cpus", s.NumCPU),
	}
}
