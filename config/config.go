package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/yhkl-dev/gospotify/spotify"
)

// Config represents the complete application configuration
type Config struct {
	Session  SessionConfig  `mapstructure:"session" toml:"session"`
	Search   SearchConfig   `mapstructure:"search" toml:"search"`
	Load     LoadConfig     `mapstructure:"load" toml:"load"`
	UI       UIConfig       `mapstructure:"ui" toml:"ui"`
	Emulator EmulatorConfig `mapstructure:"emulator" toml:"emulator"`
	Log      LogConfig      `mapstructure:"log" toml:"log"`
}

// SessionConfig contains the settings handed to the native session
type SessionConfig struct {
	CacheLocation    string `mapstructure:"cache_location" toml:"cache_location"`
	SettingsLocation string `mapstructure:"settings_location" toml:"settings_location"`
	UserAgent        string `mapstructure:"user_agent" toml:"user_agent"`
}

// SearchConfig contains the default result window of every search
type SearchConfig struct {
	TrackOffset    int    `mapstructure:"track_offset" toml:"track_offset"`
	TrackCount     int    `mapstructure:"track_count" toml:"track_count"`
	AlbumOffset    int    `mapstructure:"album_offset" toml:"album_offset"`
	AlbumCount     int    `mapstructure:"album_count" toml:"album_count"`
	ArtistOffset   int    `mapstructure:"artist_offset" toml:"artist_offset"`
	ArtistCount    int    `mapstructure:"artist_count" toml:"artist_count"`
	PlaylistOffset int    `mapstructure:"playlist_offset" toml:"playlist_offset"`
	PlaylistCount  int    `mapstructure:"playlist_count" toml:"playlist_count"`
	Type           string `mapstructure:"type" toml:"type"` // "standard" or "suggest"
}

// LoadConfig controls how long and how often loads poll
type LoadConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds" toml:"timeout_seconds"`
	PollIntervalMS int `mapstructure:"poll_interval_ms" toml:"poll_interval_ms"`
}

// UIConfig contains user interface settings
type UIConfig struct {
	PageSize       int `mapstructure:"page_size" toml:"page_size"`
	MaxColumnWidth int `mapstructure:"max_column_width" toml:"max_column_width"`
}

// EmulatorConfig configures the in-memory native library
type EmulatorConfig struct {
	LoadDelay int  `mapstructure:"load_delay" toml:"load_delay"` // event pumps before data reports loaded
	SeedDemo  bool `mapstructure:"seed_demo" toml:"seed_demo"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `mapstructure:"level" toml:"level"`
	File  string `mapstructure:"file" toml:"file"`
}

// SessionSettings converts the section to the binding's session config.
func (s SessionConfig) SessionSettings() spotify.SessionConfig {
	return spotify.SessionConfig{
		CacheLocation:    s.CacheLocation,
		SettingsLocation: s.SettingsLocation,
		UserAgent:        s.UserAgent,
	}
}

// SearchType parses Type. Unknown values fall back to standard.
func (s SearchConfig) SearchType() spotify.SearchType {
	if strings.EqualFold(s.Type, "suggest") {
		return spotify.SearchTypeSuggest
	}
	return spotify.SearchTypeStandard
}

// Options returns the search options described by the section
func (s SearchConfig) Options() spotify.SearchOptions {
	return spotify.SearchOptions{
		TrackOffset:    s.TrackOffset,
		TrackCount:     s.TrackCount,
		AlbumOffset:    s.AlbumOffset,
		AlbumCount:     s.AlbumCount,
		ArtistOffset:   s.ArtistOffset,
		ArtistCount:    s.ArtistCount,
		PlaylistOffset: s.PlaylistOffset,
		PlaylistCount:  s.PlaylistCount,
		Type:           s.SearchType(),
	}
}

// GetTimeout returns the load timeout as a time.Duration
func (l *LoadConfig) GetTimeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

// GetPollInterval returns the load poll interval as a time.Duration
func (l *LoadConfig) GetPollInterval() time.Duration {
	return time.Duration(l.PollIntervalMS) * time.Millisecond
}

// Validate checks that the configured values are usable
func (c *Config) Validate() error {
	counts := map[string]int{
		"search.track_offset":    c.Search.TrackOffset,
		"search.track_count":     c.Search.TrackCount,
		"search.album_offset":    c.Search.AlbumOffset,
		"search.album_count":     c.Search.AlbumCount,
		"search.artist_offset":   c.Search.ArtistOffset,
		"search.artist_count":    c.Search.ArtistCount,
		"search.playlist_offset": c.Search.PlaylistOffset,
		"search.playlist_count":  c.Search.PlaylistCount,
		"emulator.load_delay":    c.Emulator.LoadDelay,
	}
	for key, v := range counts {
		if v < 0 {
			return errors.Errorf("%s must not be negative, got %d", key, v)
		}
	}

	switch strings.ToLower(c.Search.Type) {
	case "", "standard", "suggest":
	default:
		return errors.Errorf("search.type must be standard or suggest, got %q", c.Search.Type)
	}
	if c.Load.TimeoutSeconds <= 0 {
		return errors.Errorf("load.timeout_seconds must be positive, got %d", c.Load.TimeoutSeconds)
	}
	if c.Load.PollIntervalMS <= 0 {
		return errors.Errorf("load.poll_interval_ms must be positive, got %d", c.Load.PollIntervalMS)
	}
	if len(c.Session.UserAgent) > 255 {
		return errors.New("session.user_agent must be at most 255 characters")
	}
	if c.UI.PageSize <= 0 {
		return errors.Errorf("ui.page_size must be positive, got %d", c.UI.PageSize)
	}
	return nil
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Session: SessionConfig{
			CacheLocation:    "tmp",
			SettingsLocation: "tmp",
			UserAgent:        "gospotify",
		},
		Search: SearchConfig{
			TrackCount:    20,
			AlbumCount:    20,
			ArtistCount:   20,
			PlaylistCount: 20,
			Type:          "standard",
		},
		Load: LoadConfig{
			TimeoutSeconds: 10,
			PollIntervalMS: 10,
		},
		UI: UIConfig{
			PageSize:       20,
			MaxColumnWidth: 40,
		},
		Emulator: EmulatorConfig{
			LoadDelay: 1,
			SeedDemo:  true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
