package download

import (
	"context"

	"github.com/ytget/youtube-alarm/internal/model"
)

// RunResult is what a finished process reports back
type RunResult struct {
	ExitCode int
	Stderr   string
}

// Runner starts an external program and waits for it.
// The error return is reserved for failures to start the program; a process
// that ran and exited non-zero is reported through RunResult.ExitCode.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (RunResult, error)
}

// Submitter defines the interface for the download form controller.
type Submitter interface {
	SetUpdateCallback(func(*model.DownloadResult))
	Submit(ctx context.Context, form *model.Form) (*model.DownloadResult, error)

	// SetDownloader sets the downloader executable used for the next submit
	SetDownloader(path string)
	Downloader() string
}
