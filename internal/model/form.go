package model

import "strings"

// Form holds what the user entered. It is owned by the UI and handed by
// pointer to the controller; nothing else keeps a reference to it.
type Form struct {
	Directory string
	URL       string
	Video     bool
}

// NewForm returns a form with no directory, no URL and audio-only mode
func NewForm() *Form {
	return &Form{}
}

// SetDirectory replaces the stored directory after the folder picker is accepted
func (f *Form) SetDirectory(dir string) {
	f.Directory = dir
}

// HasDirectory reports whether a directory has been selected
func (f *Form) HasDirectory() bool {
	return strings.TrimSpace(f.Directory) != ""
}

// Mode returns the mode selected by the video checkbox
func (f *Form) Mode() Mode {
	return ModeFromVideo(f.Video)
}

// Request snapshots the form into a DownloadRequest.
// Line breaks and surrounding blanks pasted with the URL are dropped.
func (f *Form) Request() DownloadRequest {
	return NewDownloadRequest(f.Directory, cleanURL(f.URL), f.Mode())
}

func cleanURL(raw string) string {
	cleaned := strings.ReplaceAll(raw, "\n", "")
	cleaned = strings.ReplaceAll(cleaned, "\r", "")
	cleaned = strings.ReplaceAll(cleaned, "\t", " ")
	return strings.TrimSpace(cleaned)
}
