package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/youtube-alarm/internal/config"
	"github.com/ytget/youtube-alarm/internal/download"
	"github.com/ytget/youtube-alarm/internal/model"
	"github.com/ytget/youtube-alarm/internal/platform"
)

// RootUI represents the main window: the download form and its status line
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	form         *model.Form
	controller   download.Submitter
	settings     *config.Settings
	localization *Localization
	version      string

	// opts holds the values in effect: command-line values merged over
	// stored settings, updated when the user saves the settings dialog
	opts config.Options

	// openDirectory opens a folder in the OS file manager
	openDirectory func(string) error

	dirTitleLabel     *widget.Label
	selectDirBtn      *widget.Button
	currentDirLabel   *widget.Label
	openDirBtn        *widget.Button
	urlTitleLabel     *widget.Label
	urlEntry          *widget.Entry
	videoCheck        *widget.Check
	downloadBtn       *widget.Button
	notificationLabel *widget.Label
}

// NewRootUI creates and initializes the main UI.
// Empty opts fields fall back to the stored settings. A non-empty version
// is shown in the window title.
func NewRootUI(window fyne.Window, app fyne.App, controller download.Submitter, settings *config.Settings, opts config.Options, version string) *RootUI {
	opts = settings.Merge(opts)
	localization := NewLocalization()
	localization.SetLanguage(opts.Language)

	ui := &RootUI{
		window:        window,
		app:           app,
		form:          model.NewForm(),
		controller:    controller,
		settings:      settings,
		localization:  localization,
		version:       version,
		opts:          opts,
		openDirectory: platform.OpenDirectory,
	}

	window.SetTitle(ui.windowTitle())
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetFixedSize(true)
	if icon := LoadIconResource(opts.IconPath); icon != nil {
		window.SetIcon(icon)
	}

	// Set up callback for status updates
	ui.controller.SetUpdateCallback(ui.onResultUpdate)

	ui.setupUI()

	if opts.Directory != "" {
		ui.applyDirectory(opts.Directory)
	}

	log.Printf("RootUI initialized with downloader %q", controller.Downloader())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Directory row
	ui.dirTitleLabel = widget.NewLabel(ui.localization.GetText(KeyDownloadDirectory))
	ui.selectDirBtn = widget.NewButton(ui.localization.GetText(KeySelectDirectory), ui.onSelectDirectory)
	ui.openDirBtn = widget.NewButton(IconFolder, ui.onOpenFolder)
	ui.openDirBtn.Importance = widget.LowImportance
	ui.openDirBtn.Disable()
	ui.currentDirLabel = widget.NewLabel(ui.localization.GetText(KeyNoDirectorySelected))
	ui.currentDirLabel.Truncation = fyne.TextTruncateEllipsis

	// URL row
	ui.urlTitleLabel = widget.NewLabel(ui.localization.GetText(KeyURLLabel))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	// Audio-only unless checked
	ui.videoCheck = widget.NewCheck(ui.localization.GetText(KeyVideoCheckbox), nil)

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord

	dirRow := container.NewBorder(nil, nil, ui.dirTitleLabel, container.NewHBox(ui.openDirBtn, settingsBtn), ui.selectDirBtn)
	urlRow := container.NewBorder(nil, nil, ui.urlTitleLabel, nil, ui.urlEntry)

	content := container.NewVBox(
		dirRow,
		ui.currentDirLabel,
		urlRow,
		ui.videoCheck,
		container.NewCenter(ui.downloadBtn),
		ui.notificationLabel,
	)

	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.opts.Language = langCode
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.windowTitle())

	ui.dirTitleLabel.SetText(ui.localization.GetText(KeyDownloadDirectory))
	ui.selectDirBtn.SetText(ui.localization.GetText(KeySelectDirectory))
	if !ui.form.HasDirectory() {
		ui.currentDirLabel.SetText(ui.localization.GetText(KeyNoDirectorySelected))
	}
	ui.urlTitleLabel.SetText(ui.localization.GetText(KeyURLLabel))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.videoCheck.Text = ui.localization.GetText(KeyVideoCheckbox)
	ui.videoCheck.Refresh()
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
}

// windowTitle returns the localized title with the version appended
func (ui *RootUI) windowTitle() string {
	title := ui.localization.GetText(KeyAppTitle)
	if ui.version == "" {
		return title
	}
	return fmt.Sprintf("%s v%s", title, ui.version)
}

// onSelectDirectory opens the folder picker
func (ui *RootUI) onSelectDirectory() {
	fd := dialog.NewFolderOpen(ui.onFolderChosen, ui.window)
	if start := ui.pickerStartDir(); start != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.Show()
}

// pickerStartDir returns where the folder picker opens: the current
// directory if set, else the user's Downloads folder
func (ui *RootUI) pickerStartDir() string {
	if ui.form.HasDirectory() && platform.DirExists(ui.form.Directory) {
		return ui.form.Directory
	}
	if dir, err := platform.GetHomeDownloadsDir(); err == nil && platform.DirExists(dir) {
		return dir
	}
	return ""
}

// onFolderChosen handles the folder picker result. Cancel and errors leave
// the stored directory unchanged.
func (ui *RootUI) onFolderChosen(uri fyne.ListableURI, err error) {
	if err != nil {
		log.Printf("Folder selection failed: %v", err)
		return
	}
	if uri == nil {
		log.Printf("Folder selection cancelled")
		return
	}
	ui.applyDirectory(uri.Path())
}

// applyDirectory stores dir as the download directory and shows it
func (ui *RootUI) applyDirectory(dir string) {
	ui.form.SetDirectory(dir)
	ui.currentDirLabel.SetText(dir)
	ui.openDirBtn.Enable()
	ui.settings.SetLastDirectory(dir)
	log.Printf("Download directory set to %s", dir)
}

// onOpenFolder opens the chosen directory in the file manager
func (ui *RootUI) onOpenFolder() {
	if !ui.form.HasDirectory() {
		return
	}
	if err := ui.openDirectory(ui.form.Directory); err != nil {
		log.Printf("Error opening folder %s: %v", ui.form.Directory, err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFolder)+": "+err.Error(), widget.DangerImportance)
	}
}

// captureForm copies widget state into the owned form
func (ui *RootUI) captureForm() {
	ui.form.URL = ui.urlEntry.Text
	ui.form.Video = ui.videoCheck.Checked
}

// onDownloadClick handles the download button click.
// The downloader runs synchronously; the window is unresponsive until it exits.
func (ui *RootUI) onDownloadClick() {
	ui.captureForm()
	_, err := ui.controller.Submit(context.Background(), ui.form)
	ui.reportOutcome(err)
}

// reportOutcome shows the result of a submit in the notification line and the log
func (ui *RootUI) reportOutcome(err error) {
	var (
		exitErr   *download.ExitError
		launchErr *download.LaunchError
	)

	switch {
	case err == nil:
		ui.showNotification(ui.localization.GetText(KeyDownloadComplete), widget.SuccessImportance)
		return
	case download.IsValidationError(err):
		key := KeyPleaseEnterURL
		if errors.Is(err, download.ErrNoDirectory) {
			key = KeyNoDownloadDirectory
		}
		ui.showNotification(ui.localization.GetText(key), widget.WarningImportance)
	case errors.As(err, &exitErr):
		ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyDownloadFailed), exitErr.Stderr), widget.DangerImportance)
	case errors.As(err, &launchErr):
		ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyLaunchFailed), launchErr.Downloader, launchErr.Err), widget.DangerImportance)
	default:
		ui.showNotification(err.Error(), widget.DangerImportance)
	}
}

// onResultUpdate receives status transitions from the controller
func (ui *RootUI) onResultUpdate(result *model.DownloadResult) {
	log.Printf("Download %s status: %s", result.Request.ID, result.Status)
	if result.Status == model.StatusDownloading {
		ui.showNotification(ui.localization.GetText(KeyDownloading), widget.MediumImportance)
	}
}

// showNotification displays a message in the status line under the form
func (ui *RootUI) showNotification(message string, importance widget.Importance) {
	if ui.notificationLabel == nil {
		return
	}
	log.Print(message)
	ui.notificationLabel.Importance = importance
	ui.notificationLabel.SetText(message)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.opts, ui.onSettingsSaved)
}

// onSettingsSaved applies the settings the user edited. Fields left
// untouched keep their effective value, so command-line values survive.
func (ui *RootUI) onSettingsSaved(changed config.Options) {
	if changed.Downloader != "" {
		ui.opts.Downloader = changed.Downloader
	}
	if changed.IconPath != "" {
		ui.opts.IconPath = changed.IconPath
	}
	if changed.Theme != "" {
		ui.opts.Theme = changed.Theme
	}
	if changed.Language != "" {
		ui.opts.Language = changed.Language
	}

	ui.controller.SetDownloader(ui.opts.Downloader)
	ui.app.Settings().SetTheme(NewAppTheme(ui.opts.Theme))
	if icon := LoadIconResource(ui.opts.IconPath); icon != nil {
		ui.window.SetIcon(icon)
	}
	if ui.form.HasDirectory() {
		ui.settings.SetLastDirectory(ui.form.Directory)
	}

	ui.localization.SetLanguage(ui.opts.Language)
	ui.refreshUITexts()
	ui.createMenu()

	ui.showNotification(ui.localization.GetText(KeySettingsSaved), widget.SuccessImportance)
}
