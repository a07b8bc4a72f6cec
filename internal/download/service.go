package download

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/alessio/shellescape"

	"github.com/ytget/youtube-alarm/internal/model"
)

// DefaultDownloader is the executable looked up on PATH when none is configured
const DefaultDownloader = "yt-dlp"

// Controller validates the form and runs the downloader once per submit
type Controller struct {
	runner     Runner
	downloader string
	mu         sync.RWMutex
	onUpdate   func(*model.DownloadResult) // callback for UI updates
}

// NewController creates a controller. An empty downloader means DefaultDownloader.
func NewController(runner Runner, downloader string) *Controller {
	if runner == nil {
		runner = NewExecRunner()
	}
	if downloader == "" {
		downloader = DefaultDownloader
	}
	return &Controller{
		runner:     runner,
		downloader: downloader,
	}
}

// SetUpdateCallback sets the callback function for status updates
func (c *Controller) SetUpdateCallback(callback func(*model.DownloadResult)) {
	c.onUpdate = callback
}

// SetDownloader sets the downloader executable
func (c *Controller) SetDownloader(path string) {
	if path == "" {
		path = DefaultDownloader
	}
	c.mu.Lock()
	c.downloader = path
	c.mu.Unlock()
}

// Downloader returns the downloader executable
func (c *Controller) Downloader() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.downloader
}

// Submit validates the form, then runs the downloader and waits for it.
// The returned result is never nil; the error is one of ErrNoDirectory,
// ErrEmptyURL, *LaunchError or *ExitError.
func (c *Controller) Submit(ctx context.Context, form *model.Form) (*model.DownloadResult, error) {
	req := form.Request()
	result := model.NewDownloadResult(req)

	if !req.HasDirectory() {
		return c.reject(result, ErrNoDirectory)
	}
	if !req.HasURL() {
		return c.reject(result, ErrEmptyURL)
	}

	downloader := c.Downloader()
	args := req.Args()
	result.Command = shellescape.QuoteCommand(append([]string{downloader}, args...))

	log.Printf("Starting download %s (%s): %s", req.ID, req.Mode, result.Command)

	result.Status = model.StatusDownloading
	result.StartedAt = time.Now()
	c.notifyUpdate(result)

	run, err := c.runner.Run(ctx, downloader, args...)
	result.FinishedAt = time.Now()
	result.ExitCode = run.ExitCode
	result.Stderr = run.Stderr

	if err != nil {
		launchErr := &LaunchError{Downloader: downloader, Err: err}
		result.Status = model.StatusLaunchFailed
		result.LastError = launchErr.Error()
		log.Printf("Download %s could not start: %v", req.ID, err)
		c.notifyUpdate(result)
		return result, launchErr
	}

	if run.ExitCode != 0 {
		exitErr := &ExitError{ExitCode: run.ExitCode, Stderr: result.TrimmedStderr()}
		result.Status = model.StatusFailed
		result.LastError = exitErr.Error()
		log.Printf("Download %s failed with exit status %d: %s", req.ID, run.ExitCode, exitErr.Stderr)
		c.notifyUpdate(result)
		return result, exitErr
	}

	result.Status = model.StatusCompleted
	log.Printf("Download %s completed in %s", req.ID, result.GetDurationString())
	c.notifyUpdate(result)
	return result, nil
}

func (c *Controller) reject(result *model.DownloadResult, err error) (*model.DownloadResult, error) {
	result.Status = model.StatusRejected
	result.LastError = err.Error()
	log.Printf("Download %s rejected: %v", result.Request.ID, err)
	c.notifyUpdate(result)
	return result, err
}

// notifyUpdate calls the update callback if set
func (c *Controller) notifyUpdate(result *model.DownloadResult) {
	if c.onUpdate != nil {
		c.onUpdate(result)
	}
}
