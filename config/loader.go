package config

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Loader reads gospotify.toml and can keep watching it.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader for path. An empty path searches
// $HOME/.config/ and the working directory for gospotify.toml.
func NewLoader(path string) *Loader {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gospotify")
		v.SetConfigType("toml")
		v.AddConfigPath("$HOME/.config/")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("GOSPOTIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, DefaultConfig())
	return &Loader{v: v}
}

func setDefaults(v *viper.Viper, defaults *Config) {
	v.SetDefault("session.cache_location", defaults.Session.CacheLocation)
	v.SetDefault("session.settings_location", defaults.Session.SettingsLocation)
	v.SetDefault("session.user_agent", defaults.Session.UserAgent)

	v.SetDefault("search.track_offset", defaults.Search.TrackOffset)
	v.SetDefault("search.track_count", defaults.Search.TrackCount)
	v.SetDefault("search.album_offset", defaults.Search.AlbumOffset)
	v.SetDefault("search.album_count", defaults.Search.AlbumCount)
	v.SetDefault("search.artist_offset", defaults.Search.ArtistOffset)
	v.SetDefault("search.artist_count", defaults.Search.ArtistCount)
	v.SetDefault("search.playlist_offset", defaults.Search.PlaylistOffset)
	v.SetDefault("search.playlist_count", defaults.Search.PlaylistCount)
	v.SetDefault("search.type", defaults.Search.Type)

	v.SetDefault("load.timeout_seconds", defaults.Load.TimeoutSeconds)
	v.SetDefault("load.poll_interval_ms", defaults.Load.PollIntervalMS)

	v.SetDefault("ui.page_size", defaults.UI.PageSize)
	v.SetDefault("ui.max_column_width", defaults.UI.MaxColumnWidth)

	v.SetDefault("emulator.load_delay", defaults.Emulator.LoadDelay)
	v.SetDefault("emulator.seed_demo", defaults.Emulator.SeedDemo)

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)
}

// Load reads the config file, if there is one, and returns the merged
// configuration. A missing file is not an error when searching the default
// locations.
func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
		slog.Debug("no config file found, using defaults")
	}
	return l.decode()
}

// File returns the config file in use, or "" when running on defaults.
func (l *Loader) File() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// Watch calls onChange with the new configuration every time the config file
// changes on disk. Invalid edits are logged and skipped.
func (l *Loader) Watch(onChange func(*Config)) {
	if l.File() == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := l.decode()
		if err != nil {
			slog.Warn("ignoring config change", "file", e.Name, "error", err)
			return
		}
		slog.Info("config reloaded", "file", e.Name, "op", e.Op.String())
		onChange(cfg)
	})
	l.v.WatchConfig()
}

// Load reads the configuration from the default locations.
func Load() (*Config, error) {
	return NewLoader("").Load()
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to find home directory")
	}
	return filepath.Join(home, ".config", "gospotify.toml"), nil
}

// Encode renders cfg in the config file format.
func Encode(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode config")
	}
	return data, nil
}

// WriteFile writes cfg to path. An existing file is never replaced.
func WriteFile(path string, cfg *Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return errors.Errorf("%s already exists", path)
	}
	if err != nil {
		return errors.Wrap(err, "failed to create config file")
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}
