package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/youtube-alarm/internal/config"
)

// Application identity
const (
	AppID      = "com.ytget.youtube-alarm"
	AppName    = "YouTube Alarm"
	EnvPrefix  = "YTALARM"
	ConfigName = "youtube-alarm"
)

// Flag and config keys
const (
	KeyDownloader = "downloader"
	KeyIcon       = "icon"
	KeyTheme      = "theme"
	KeyLanguage   = "lang"
	KeyDirectory  = "dir"
	KeyConfig     = "config"
)

// Launcher starts the application with the resolved options
type Launcher func(opts config.Options) error

// Execute runs the root command with a fresh viper instance
func Execute(version string) error {
	v := viper.New()
	return NewRootCommand(version, v, func(opts config.Options) error {
		return runApp(version, opts)
	}).Execute()
}

// NewRootCommand builds the root command. launch is called once options are loaded.
func NewRootCommand(version string, v *viper.Viper, launch Launcher) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           ConfigName,
		Short:         "Download YouTube audio or video with yt-dlp from a small desktop window",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := LoadOptions(v)
			if err != nil {
				return err
			}
			return launch(opts)
		},
	}

	flags := rootCmd.Flags()
	flags.String(KeyDownloader, "", "Downloader executable (default \"yt-dlp\" from PATH)")
	flags.String(KeyIcon, "", "Window icon file")
	flags.String(KeyTheme, "", "Theme: dark, light or system")
	flags.String(KeyLanguage, "", "Interface language: en, ru, pt or system")
	flags.String(KeyDirectory, "", "Preselect this download directory")
	flags.String(KeyConfig, "", "Config file (default is <user config dir>/"+ConfigName+"/"+ConfigName+".yaml)")

	for _, key := range []string{KeyDownloader, KeyIcon, KeyTheme, KeyLanguage, KeyDirectory, KeyConfig} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			// Lookup on a flag defined just above cannot fail
			panic(err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return rootCmd
}

// initConfig reads the config file if there is one. Only an explicitly
// requested file is required to exist.
func initConfig(v *viper.Viper) error {
	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", file, err)
		}
		return nil
	}

	v.SetConfigName(ConfigName)
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, ConfigName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// LoadOptions converts viper values into config.Options
func LoadOptions(v *viper.Viper) (config.Options, error) {
	opts := config.Options{
		Downloader: strings.TrimSpace(v.GetString(KeyDownloader)),
		IconPath:   strings.TrimSpace(v.GetString(KeyIcon)),
		Language:   strings.TrimSpace(v.GetString(KeyLanguage)),
	}

	if raw := v.GetString(KeyTheme); raw != "" {
		name, err := config.ParseTheme(raw)
		if err != nil {
			return config.Options{}, err
		}
		opts.Theme = name
	}

	if dir := strings.TrimSpace(v.GetString(KeyDirectory)); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return config.Options{}, fmt.Errorf("invalid directory %q: %w", dir, err)
		}
		opts.Directory = abs
	}

	return opts, nil
}
