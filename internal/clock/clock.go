//go:generate mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks

// Package clock provides the time sources used to measure workloads.
//
// A Clock returns monotonic readings; the difference between two readings is
// the elapsed time attributed to whatever ran between them. The process CPU
// clock counts user plus system time consumed by the whole process, which is
// what the historical benchmark reported. The wall clock counts real time.
package clock

import (
	"fmt"
	"strings"
	"time"
)

// Clock names accepted by New.
const (
	NameCPU  = "cpu"
	NameWall = "wall"
)

// Clock is a monotonic time source.
type Clock interface {
	// Name identifies the clock in output and metrics labels.
	Name() string
	// Read returns the current reading. Only differences between readings
	// are meaningful.
	Read() time.Duration
}

// Wall measures elapsed real time using the runtime's monotonic clock.
type Wall struct {
	origin time.Time
}

// NewWall returns a wall clock anchored at the current instant.
func NewWall() *Wall {
	return &Wall{origin: time.Now()}
}

// Name returns "wall".
func (w *Wall) Name() string { return NameWall }

// Read returns the time elapsed since the clock was created.
func (w *Wall) Read() time.Duration { return time.Since(w.origin) }

// ProcessCPU measures CPU time (user + system) consumed by the process.
type ProcessCPU struct{}

// Name returns "cpu".
func (ProcessCPU) Name() string { return NameCPU }

// readProcessCPU is the platform CPU time source.
var readProcessCPU = processCPUTime

// Read returns the cumulative CPU time of the process. It panics if the
// reading fails after New accepted the clock, so a broken reading is never
// reported as a zero duration.
func (ProcessCPU) Read() time.Duration {
	d, err := readProcessCPU()
	if err != nil {
		panic(fmt.Sprintf("clock: reading process CPU time: %v", err))
	}
	return d
}

// CPUSupported reports whether the platform exposes process CPU time.
func CPUSupported() bool {
	_, err := readProcessCPU()
	return err == nil
}

// New returns the clock registered under name. When the CPU clock is
// requested on a platform without process CPU accounting, the wall clock is
// returned instead and fellBack is true.
func New(name string) (c Clock, fellBack bool, err error) {
	switch strings.ToLower(name) {
	case NameCPU, "":
		if !CPUSupported() {
			return NewWall(), true, nil
		}
		return ProcessCPU{}, false, nil
	case NameWall:
		return NewWall(), false, nil
	default:
		return nil, false, fmt.Errorf("unknown clock %q (want %q or %q)", name, NameCPU, NameWall)
	}
}
