package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/youtube-alarm/internal/config"
)

func TestNewAppTheme_ForcesVariant(t *testing.T) {
	dark := NewAppTheme(config.ThemeDark)
	want := theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark)
	if got := dark.Color(theme.ColorNameBackground, theme.VariantLight); got != want {
		t.Errorf("Dark theme should ignore the light variant: got %v, want %v", got, want)
	}

	light := NewAppTheme(config.ThemeLight)
	want = theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantLight)
	if got := light.Color(theme.ColorNameBackground, theme.VariantDark); got != want {
		t.Errorf("Light theme should ignore the dark variant: got %v, want %v", got, want)
	}
}

func TestNewAppTheme_System(t *testing.T) {
	sys := NewAppTheme(config.ThemeSystem)
	for _, variant := range []fyne.ThemeVariant{theme.VariantDark, theme.VariantLight} {
		want := theme.DefaultTheme().Color(theme.ColorNameForeground, variant)
		if got := sys.Color(theme.ColorNameForeground, variant); got != want {
			t.Errorf("System theme should follow variant %d: got %v, want %v", variant, got, want)
		}
	}
}
