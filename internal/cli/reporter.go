package cli

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"OnionShare-NG/internal/util"
)

// Reporter displays progress updates on a single terminal line that gets
// overwritten. The ETA is derived from the completion fraction and the
// time since the reporter was created.
type Reporter struct {
	mu        sync.Mutex
	started   time.Time
	progress  float32
	info      string
	quiet     bool
	cancelled atomic.Bool
	lastLine  int // Length of last printed line (for clearing)
}

// NewReporter creates a new CLI progress reporter.
// If quiet is true, nothing is printed.
func NewReporter(quiet bool) *Reporter {
	return &Reporter{
		quiet:   quiet,
		started: time.Now(),
	}
}

// SetProgress updates the progress bar and info text and repaints.
func (r *Reporter) SetProgress(fraction float32, info string) {
	if r.quiet {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = fraction
	r.info = info

	// Build progress bar
	barWidth := 30
	filled := min(int(r.progress*float32(barWidth)), barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	// ETA from the completion fraction scaled to a synthetic byte count
	eta := "--"
	if soFar := int64(r.progress * 1e6); soFar > 0 {
		if s, err := util.EstimatedTimeRemaining(soFar, 1e6, time.Since(r.started)); err == nil {
			eta = s
		}
	}

	// Format: [████████░░░░░░░░░░░░░░░░░░░░░░]  25.0% | 2/8 | ETA 5s
	line := fmt.Sprintf("\r[%s] %5.1f%% | %s | ETA %s", bar, r.progress*100, r.info, eta)

	// Clear previous line if it was longer
	if len(line) < r.lastLine {
		line += strings.Repeat(" ", r.lastLine-len(line))
	}
	r.lastLine = len(line)

	fmt.Fprint(os.Stderr, line)
}

// IsCancelled checks if the operation was cancelled.
func (r *Reporter) IsCancelled() bool {
	return r.cancelled.Load()
}

// Cancel marks the operation as cancelled.
func (r *Reporter) Cancel() {
	r.cancelled.Store(true)
}

// Finish prints a newline to move past the progress line.
func (r *Reporter) Finish() {
	if !r.quiet {
		fmt.Fprintln(os.Stderr)
	}
}

// PrintError prints an error message.
func (r *Reporter) PrintError(format string, args ...any) {
	// Move to new line if we were showing progress
	if !r.quiet && r.lastLine > 0 {
		fmt.Fprintln(os.Stderr)
	}
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
