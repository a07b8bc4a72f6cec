package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/youtube-alarm/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(changed config.Options)

	// current holds the effective values shown when the dialog opens
	current config.Options

	// UI components
	downloaderEntry *widget.Entry
	iconEntry       *widget.Entry
	themeSelect     *widget.Select
	languageSelect  *widget.Select
	rememberCheck   *widget.Check
}

// ShowSettingsDialog builds the dialog, loads the effective values and shows it.
// onSaved runs after the edited values were written to preferences and
// receives only the fields the user changed.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, current config.Options, onSaved func(config.Options)) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, current, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, current config.Options, onSaved func(config.Options)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
		current:      settings.Merge(current),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.downloaderEntry = widget.NewEntry()
	sd.downloaderEntry.SetPlaceHolder(config.DefaultDownloaderPath)
	browseDownloaderBtn := widget.NewButton(text(KeyBrowse), func() {
		sd.browseFile(sd.downloaderEntry)
	})
	downloaderRow := container.NewBorder(nil, nil, nil, browseDownloaderBtn, sd.downloaderEntry)

	sd.iconEntry = widget.NewEntry()
	sd.iconEntry.SetPlaceHolder(config.DefaultIconPath)
	browseIconBtn := widget.NewButton(text(KeyBrowse), func() {
		sd.browseFile(sd.iconEntry)
	})
	iconRow := container.NewBorder(nil, nil, nil, browseIconBtn, sd.iconEntry)

	themeOptions := []string{}
	for _, name := range sd.settings.GetThemeOptions() {
		themeOptions = append(themeOptions, string(name))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.rememberCheck = widget.NewCheck(text(KeyRememberDirectory), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyDownloaderPath)+":"),
		downloaderRow,

		widget.NewLabel(text(KeyIconPath)+":"),
		iconRow,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyTheme)+":"),
		sd.themeSelect,

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,

		sd.rememberCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads the effective values into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloaderEntry.SetText(sd.current.Downloader)
	sd.iconEntry.SetText(sd.current.IconPath)
	sd.themeSelect.SetSelected(string(sd.current.Theme))
	sd.languageSelect.SetSelected(sd.current.Language)
	sd.rememberCheck.SetChecked(sd.settings.GetRememberDirectory())
}

// browseFile fills target with a file picked from disk
func (sd *SettingsDialog) browseFile(target *widget.Entry) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		target.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
}

// save writes the fields the user edited to preferences
func (sd *SettingsDialog) save() {
	var changed config.Options

	if sd.downloaderEntry.Text != sd.current.Downloader {
		sd.settings.SetDownloaderPath(sd.downloaderEntry.Text)
		changed.Downloader = sd.settings.GetDownloaderPath()
	}

	if sd.iconEntry.Text != sd.current.IconPath {
		sd.settings.SetIconPath(sd.iconEntry.Text)
		changed.IconPath = sd.settings.GetIconPath()
	}

	if selected := sd.themeSelect.Selected; selected != "" && selected != string(sd.current.Theme) {
		if name, err := config.ParseTheme(selected); err == nil {
			sd.settings.SetTheme(name)
			changed.Theme = name
		}
	}

	if selected := sd.languageSelect.Selected; selected != "" && selected != sd.current.Language {
		sd.settings.SetLanguage(selected)
		changed.Language = selected
	}

	sd.settings.SetRememberDirectory(sd.rememberCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved(changed)
	}
}
