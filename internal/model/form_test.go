package model

import "testing"

func TestNewForm_Defaults(t *testing.T) {
	f := NewForm()

	if f.HasDirectory() {
		t.Error("Expected new form to have no directory")
	}
	if f.URL != "" {
		t.Errorf("Expected empty URL, got %q", f.URL)
	}
	if f.Mode() != ModeAudioOnly {
		t.Errorf("Expected audio-only mode by default, got %s", f.Mode())
	}
}

func TestForm_SetDirectory(t *testing.T) {
	f := NewForm()
	f.SetDirectory("/first")
	f.SetDirectory("/second")

	if f.Directory != "/second" {
		t.Errorf("Expected directory '/second', got %q", f.Directory)
	}
	if !f.HasDirectory() {
		t.Error("Expected HasDirectory to be true")
	}
}

func TestForm_Request(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		video    bool
		wantURL  string
		wantMode Mode
	}{
		{"plain", "https://youtube.com/watch?v=1", false, "https://youtube.com/watch?v=1", ModeAudioOnly},
		{"video", "https://youtube.com/watch?v=2", true, "https://youtube.com/watch?v=2", ModeVideoAudio},
		{"pasted with newline", " https://youtube.com/watch?v=3\n", false, "https://youtube.com/watch?v=3", ModeAudioOnly},
		{"blank", "   ", false, "", ModeAudioOnly},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := &Form{Directory: "/tmp", URL: test.url, Video: test.video}
			req := f.Request()

			if req.URL != test.wantURL {
				t.Errorf("Request().URL = %q, expected %q", req.URL, test.wantURL)
			}
			if req.Mode != test.wantMode {
				t.Errorf("Request().Mode = %s, expected %s", req.Mode, test.wantMode)
			}
			if req.Directory != "/tmp" {
				t.Errorf("Request().Directory = %q, expected /tmp", req.Directory)
			}
		})
	}
}

func TestForm_RequestIsSnapshot(t *testing.T) {
	f := &Form{Directory: "/a", URL: "https://example.com/v"}
	req := f.Request()

	f.SetDirectory("/b")
	f.URL = "https://example.com/other"

	if req.Directory != "/a" || req.URL != "https://example.com/v" {
		t.Errorf("Expected request to be unaffected by later form edits, got %+v", req)
	}
}
