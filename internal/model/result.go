package model

import (
	"fmt"
	"strings"
	"time"
)

// DownloadResult records the outcome of one submit
type DownloadResult struct {
	Request    DownloadRequest
	Status     Status
	ExitCode   int    // -1 when the process never ran
	Stderr     string // captured standard error of the downloader
	Command    string // shell-quoted command line, for logs
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewDownloadResult creates a pending result for the request
func NewDownloadResult(req DownloadRequest) *DownloadResult {
	return &DownloadResult{
		Request:  req,
		Status:   StatusPending,
		ExitCode: -1,
	}
}

// Duration returns how long the downloader ran, or 0 if it never finished
func (r *DownloadResult) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// GetDurationString returns the run time formatted as mm:ss or hh:mm:ss, or "—"
func (r *DownloadResult) GetDurationString() string {
	d := r.Duration()
	if d <= 0 {
		return "—"
	}

	total := int(d.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// TrimmedStderr returns the captured error output without trailing blank lines
func (r *DownloadResult) TrimmedStderr() string {
	return strings.TrimRight(r.Stderr, " \r\n\t")
}
