package cli

import (
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/microbench/internal/harness"
)

// ProgressRefreshRate defines the refresh frequency of the spinner.
const ProgressRefreshRate = 100 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This decouples the progress indicator from a specific spinner
// implementation, facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner creates a spinner writing to w.
var newSpinner = func(w io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, spinner.WithWriter(w), spinner.WithHiddenCursor(true))
	return &realSpinner{s}
}

// SpinnerProgress shows a spinner on its writer while a workload runs. The
// spinner animates from its own goroutine, so it is only enabled on request:
// with the CPU clock its redraws are charged to the measured workload.
type SpinnerProgress struct {
	mu      sync.Mutex
	w       io.Writer
	factory func(io.Writer) Spinner
	current Spinner
}

var _ harness.ProgressIndicator = (*SpinnerProgress)(nil)

// NewSpinnerProgress returns a progress indicator rendering to w.
func NewSpinnerProgress(w io.Writer) *SpinnerProgress {
	return &SpinnerProgress{w: w, factory: newSpinner}
}

// Begin starts a spinner labelled with the running workload.
func (p *SpinnerProgress) Begin(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != nil {
		p.current.Stop()
	}
	s := p.factory(p.w)
	s.UpdateSuffix(" running " + label)
	s.Start()
	p.current = s
}

// End stops the current spinner, if any.
func (p *SpinnerProgress) End() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != nil {
		p.current.Stop()
		p.current = nil
	}
}
