package config

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
)

// Theme names accepted by the settings and the --theme flag
type ThemeName string

const (
	ThemeDark   ThemeName = "dark"
	ThemeLight  ThemeName = "light"
	ThemeSystem ThemeName = "system"
)

// Settings keys for Fyne preferences
const (
	KeyDownloaderPath    = "downloader_path"
	KeyIconPath          = "icon_path"
	KeyTheme             = "app_theme"
	KeyLanguage          = "app_language"
	KeyRememberDirectory = "remember_directory"
	KeyLastDirectory     = "last_directory"
)

// Default values
const (
	DefaultDownloaderPath    = "yt-dlp"
	DefaultIconPath          = "assets/youtube_alarm_icon.png"
	DefaultTheme             = ThemeDark
	DefaultLanguage          = "system"
	DefaultRememberDirectory = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloaderPath returns the downloader executable
func (s *Settings) GetDownloaderPath() string {
	return s.app.Preferences().StringWithFallback(KeyDownloaderPath, DefaultDownloaderPath)
}

// SetDownloaderPath sets the downloader executable; empty restores the default
func (s *Settings) SetDownloaderPath(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultDownloaderPath
	}
	s.app.Preferences().SetString(KeyDownloaderPath, path)
}

// GetIconPath returns the window icon location
func (s *Settings) GetIconPath() string {
	return s.app.Preferences().StringWithFallback(KeyIconPath, DefaultIconPath)
}

// SetIconPath sets the window icon location; empty restores the default
func (s *Settings) SetIconPath(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultIconPath
	}
	s.app.Preferences().SetString(KeyIconPath, path)
}

// GetTheme returns the configured theme
func (s *Settings) GetTheme() ThemeName {
	name, err := ParseTheme(s.app.Preferences().String(KeyTheme))
	if err != nil {
		return DefaultTheme
	}
	return name
}

// SetTheme sets the theme
func (s *Settings) SetTheme(name ThemeName) {
	s.app.Preferences().SetString(KeyTheme, string(name))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRememberDirectory returns whether the last chosen directory is restored on startup
func (s *Settings) GetRememberDirectory() bool {
	return s.app.Preferences().BoolWithFallback(KeyRememberDirectory, DefaultRememberDirectory)
}

// SetRememberDirectory sets whether the last chosen directory is restored on startup.
// Turning it off forgets the stored directory.
func (s *Settings) SetRememberDirectory(remember bool) {
	s.app.Preferences().SetBool(KeyRememberDirectory, remember)
	if !remember {
		s.app.Preferences().RemoveValue(KeyLastDirectory)
	}
}

// GetLastDirectory returns the stored directory, or "" when remembering is off
func (s *Settings) GetLastDirectory() string {
	if !s.GetRememberDirectory() {
		return ""
	}
	return s.app.Preferences().String(KeyLastDirectory)
}

// SetLastDirectory stores the chosen directory when remembering is on
func (s *Settings) SetLastDirectory(dir string) {
	if !s.GetRememberDirectory() {
		return
	}
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetThemeOptions returns available theme options
func (s *Settings) GetThemeOptions() []ThemeName {
	return []ThemeName{ThemeDark, ThemeLight, ThemeSystem}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// ParseTheme validates a theme name. Empty means the default.
func ParseTheme(value string) (ThemeName, error) {
	switch ThemeName(strings.ToLower(strings.TrimSpace(value))) {
	case "":
		return DefaultTheme, nil
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	case ThemeSystem:
		return ThemeSystem, nil
	}
	return "", fmt.Errorf("unknown theme %q (want dark, light or system)", value)
}
