package ui

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/youtube-alarm/internal/platform"
)

// LoadIconResource loads the window icon from path.
// A missing icon is logged and yields nil; the window keeps the default icon.
func LoadIconResource(path string) fyne.Resource {
	if path == "" {
		return nil
	}
	if !platform.FileExists(path) {
		log.Printf("Icon file not found: %q", path)
		return nil
	}

	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		log.Printf("Failed to load icon %q: %v", path, err)
		return nil
	}
	return res
}
