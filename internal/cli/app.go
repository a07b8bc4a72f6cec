package cli

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/youtube-alarm/internal/config"
	"github.com/ytget/youtube-alarm/internal/download"
	"github.com/ytget/youtube-alarm/internal/platform"
	"github.com/ytget/youtube-alarm/internal/ui"
)

// runApp creates the Fyne app and blocks until the window is closed
func runApp(version string, opts config.Options) error {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	opts = settings.Merge(prepareDirectory(opts))

	myApp.Settings().SetTheme(ui.NewAppTheme(opts.Theme))

	logDownloader(opts.Downloader)

	controller := download.NewController(download.NewExecRunner(), opts.Downloader)

	myWindow := myApp.NewWindow(AppName)
	ui.NewRootUI(myWindow, myApp, controller, settings, opts, version)

	myWindow.ShowAndRun()
	return nil
}

// prepareDirectory creates the --dir directory when it does not exist yet.
// If it cannot be created the option is dropped and the user picks one.
func prepareDirectory(opts config.Options) config.Options {
	if opts.Directory == "" {
		return opts
	}
	if err := platform.CreateDirectoryIfNotExists(opts.Directory); err != nil {
		log.Printf("Warning: cannot use download directory %s: %v", opts.Directory, err)
		opts.Directory = ""
	}
	return opts
}

// logDownloader reports which downloader will be used. A missing tool is not
// fatal; each download reports the launch failure.
func logDownloader(name string) {
	path, err := platform.LookupExecutable(name)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}

	version, err := platform.DownloaderVersion(context.Background(), path)
	if err != nil {
		log.Printf("Using downloader %s (version unknown: %v)", path, err)
		return
	}
	log.Printf("Using downloader %s version %s", path, version)
}
