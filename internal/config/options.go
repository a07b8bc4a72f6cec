package config

// Options carries values given on the command line, in the environment or in
// the config file. Empty fields fall back to the stored settings.
type Options struct {
	Downloader string
	IconPath   string
	Theme      ThemeName
	Language   string
	Directory  string
}

// Merge fills the empty fields of opts from preferences and defaults.
// Options are never written back to preferences.
func (s *Settings) Merge(opts Options) Options {
	if opts.Downloader == "" {
		opts.Downloader = s.GetDownloaderPath()
	}
	if opts.IconPath == "" {
		opts.IconPath = s.GetIconPath()
	}
	if opts.Theme == "" {
		opts.Theme = s.GetTheme()
	}
	if opts.Language == "" {
		opts.Language = s.GetLanguage()
	}
	if opts.Directory == "" {
		opts.Directory = s.GetLastDirectory()
	}
	return opts
}
