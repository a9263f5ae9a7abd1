//go:build !unix && !windows

package clock

import (
	"errors"
	"time"
)

var errNoCPUClock = errors.New("process CPU time is not available on this platform")

func processCPUTime() (time.Duration, error) {
	return 0, errNoCPUClock
}
