package model

// Status represents where a download request is in its short life
type Status string

const (
	// StatusPending means the request was captured but not yet run
	StatusPending Status = "Pending"

	// StatusRejected means the form failed validation and nothing was spawned
	StatusRejected Status = "Rejected"

	// StatusDownloading means the downloader process is running
	StatusDownloading Status = "Downloading"

	// StatusCompleted means the downloader exited with status 0
	StatusCompleted Status = "Completed"

	// StatusFailed means the downloader exited with a non-zero status
	StatusFailed Status = "Failed"

	// StatusLaunchFailed means the downloader could not be started at all
	StatusLaunchFailed Status = "LaunchFailed"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsFinished returns true if no further transition can happen
func (s Status) IsFinished() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusFailed, StatusLaunchFailed:
		return true
	}
	return false
}

// IsFailure returns true for every finished status other than Completed
func (s Status) IsFailure() bool {
	return s.IsFinished() && s != StatusCompleted
}
