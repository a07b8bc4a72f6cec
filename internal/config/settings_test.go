package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloaderPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetDownloaderPath(); got != DefaultDownloaderPath {
		t.Errorf("Expected default downloader %s, got %s", DefaultDownloaderPath, got)
	}

	settings.SetDownloaderPath("/usr/local/bin/yt-dlp")
	if got := settings.GetDownloaderPath(); got != "/usr/local/bin/yt-dlp" {
		t.Errorf("Expected custom downloader, got %s", got)
	}

	settings.SetDownloaderPath("  ")
	if got := settings.GetDownloaderPath(); got != DefaultDownloaderPath {
		t.Errorf("Blank downloader should default to %s, got %s", DefaultDownloaderPath, got)
	}
}

func TestIconPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetIconPath(); got != DefaultIconPath {
		t.Errorf("Expected default icon path %s, got %s", DefaultIconPath, got)
	}

	settings.SetIconPath("/opt/alarm/icon.png")
	if got := settings.GetIconPath(); got != "/opt/alarm/icon.png" {
		t.Errorf("Expected custom icon path, got %s", got)
	}
}

func TestTheme(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetTheme(); got != ThemeDark {
		t.Errorf("Expected default theme dark, got %s", got)
	}

	settings.SetTheme(ThemeLight)
	if got := settings.GetTheme(); got != ThemeLight {
		t.Errorf("Expected light theme, got %s", got)
	}

	// Garbage in preferences falls back to the default
	app.Preferences().SetString(KeyTheme, "neon")
	if got := settings.GetTheme(); got != DefaultTheme {
		t.Errorf("Expected fallback to %s, got %s", DefaultTheme, got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language 'ru', got %s", lang)
	}
}

func TestRememberDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetRememberDirectory() {
		t.Error("Remembering the directory should be off by default")
	}

	// Not stored while remembering is off
	settings.SetLastDirectory("/music")
	if got := settings.GetLastDirectory(); got != "" {
		t.Errorf("Expected no stored directory, got %s", got)
	}

	settings.SetRememberDirectory(true)
	settings.SetLastDirectory("/music")
	if got := settings.GetLastDirectory(); got != "/music" {
		t.Errorf("Expected '/music', got %s", got)
	}

	settings.SetRememberDirectory(false)
	settings.SetRememberDirectory(true)
	if got := settings.GetLastDirectory(); got != "" {
		t.Errorf("Turning remembering off should forget the directory, got %s", got)
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input    string
		expected ThemeName
		wantErr  bool
	}{
		{"", ThemeDark, false},
		{"dark", ThemeDark, false},
		{"Light", ThemeLight, false},
		{" system ", ThemeSystem, false},
		{"neon", "", true},
	}

	for _, test := range tests {
		got, err := ParseTheme(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseTheme(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			continue
		}
		if got != test.expected {
			t.Errorf("ParseTheme(%q) = %s, expected %s", test.input, got, test.expected)
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
