package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/pkg/errors"
	"github.com/yhkl-dev/gospotify/config"
	"github.com/yhkl-dev/gospotify/library"
	"github.com/yhkl-dev/gospotify/native/emulator"
	"github.com/yhkl-dev/gospotify/spotify"
)

func defaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

// setupLogging installs the default slog logger. Logs go to cfg.File when
// set, otherwise to fallback. The returned func closes the log file.
func setupLogging(cfg config.LogConfig, verbose bool, fallback io.Writer) (func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log.level %q", cfg.Level)
	}
	if verbose {
		level = slog.LevelDebug
	}

	out, closeFn := fallback, func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open log file")
		}
		out, closeFn = f, func() { f.Close() }
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}

// backend is a running session and the library on top of it
type backend struct {
	session *spotify.Session
	library *library.SpotifyLibrary
}

// openBackend creates the native library and session described by cfg,
// makes the session current and starts its event loop.
func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	opts := []emulator.Option{emulator.WithLoadDelay(cfg.Emulator.LoadDelay)}
	if cfg.Emulator.SeedDemo {
		opts = append(opts, emulator.WithDemoCatalog())
	}

	spotify.SetPollInterval(cfg.Load.GetPollInterval())
	spotify.SetDefaultLoadTimeout(cfg.Load.GetTimeout())

	session, err := spotify.NewSession(emulator.New(opts...), cfg.Session.SessionSettings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}
	spotify.SetSession(session)
	session.StartEventLoop(ctx)

	slog.Debug("session ready", "user_agent", cfg.Session.UserAgent, "load_delay", cfg.Emulator.LoadDelay)
	return &backend{
		session: session,
		library: library.NewSpotifyLibrary(session, cfg.Load.GetTimeout()),
	}, nil
}

// applyConfig updates the running backend after a config reload
func (b *backend) applyConfig(cfg *config.Config) {
	spotify.SetPollInterval(cfg.Load.GetPollInterval())
	spotify.SetDefaultLoadTimeout(cfg.Load.GetTimeout())
	b.library.SetTimeout(cfg.Load.GetTimeout())
}

// Close releases the session. A failed release is logged; the process is
// on its way out and has nothing better to do with it.
func (b *backend) Close() {
	if err := b.session.Close(); err != nil {
		slog.Warn("failed to close session", "error", err)
	}
}
