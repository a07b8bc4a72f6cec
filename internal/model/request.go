package model

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Mode selects which streams the downloader fetches
type Mode int

const (
	// ModeAudioOnly fetches the best audio-only stream. It is the default.
	ModeAudioOnly Mode = iota

	// ModeVideoAudio fetches the best video and audio streams merged together
	ModeVideoAudio
)

// Format selectors understood by yt-dlp
const (
	SelectorAudioOnly  = "bestaudio"
	SelectorVideoAudio = "bestvideo+bestaudio"
)

// Output extensions per mode
const (
	ExtAudioOnly  = "mp3"
	ExtVideoAudio = "mkv"
)

// Downloader command-line flags
const (
	FlagFormat    = "-f"
	FlagOutput    = "-o"
	TitlePattern  = "%(title)s"
	requestPrefix = "req-"
)

// ModeFromVideo maps the "download video" checkbox onto a Mode
func ModeFromVideo(video bool) Mode {
	if video {
		return ModeVideoAudio
	}
	return ModeAudioOnly
}

// String returns a short name for logs
func (m Mode) String() string {
	if m == ModeVideoAudio {
		return "video+audio"
	}
	return "audio-only"
}

// FormatSelector returns the yt-dlp format expression for the mode
func (m Mode) FormatSelector() string {
	if m == ModeVideoAudio {
		return SelectorVideoAudio
	}
	return SelectorAudioOnly
}

// Extension returns the output file extension for the mode.
// mkv holds the merged video and audio streams.
func (m Mode) Extension() string {
	if m == ModeVideoAudio {
		return ExtVideoAudio
	}
	return ExtAudioOnly
}

// DownloadRequest is the immutable snapshot of the form taken on submit
type DownloadRequest struct {
	ID        string
	Directory string
	URL       string
	Mode      Mode
}

// NewDownloadRequest creates a request with a fresh ID
func NewDownloadRequest(directory, url string, mode Mode) DownloadRequest {
	return DownloadRequest{
		ID:        generateRequestID(),
		Directory: directory,
		URL:       url,
		Mode:      mode,
	}
}

// OutputTemplate returns "<directory>/%(title)s.<ext>".
// The directory is cleaned so a trailing separator never doubles up.
func (r DownloadRequest) OutputTemplate() string {
	return filepath.Join(r.Directory, TitlePattern+"."+r.Mode.Extension())
}

// Args returns the downloader arguments for the request
func (r DownloadRequest) Args() []string {
	return []string{
		FlagFormat, r.Mode.FormatSelector(),
		FlagOutput, r.OutputTemplate(),
		r.URL,
	}
}

// HasDirectory reports whether a directory was chosen
func (r DownloadRequest) HasDirectory() bool {
	return strings.TrimSpace(r.Directory) != ""
}

// HasURL reports whether the URL is non-blank
func (r DownloadRequest) HasURL() bool {
	return strings.TrimSpace(r.URL) != ""
}

func generateRequestID() string {
	return requestPrefix + uuid.NewString()
}
