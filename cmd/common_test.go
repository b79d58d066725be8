package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/yhkl-dev/gospotify/config"
	"github.com/yhkl-dev/gospotify/spotify"
)

func TestBackendCloseLogsReleaseFailure(t *testing.T) {
	keepLogger(t)

	b, err := openBackend(context.Background(), config.DefaultConfig())
	if err != nil {
		t.Fatalf("openBackend: %v", err)
	}
	b.session.StopEventLoop()
	b.session.Library().SessionRelease(b.session.Handle())

	var logs bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	b.Close()

	if !strings.Contains(logs.String(), "failed to close session") {
		t.Errorf("release failure not logged: %q", logs.String())
	}
	if spotify.CurrentSession() != nil {
		t.Error("session still current after Close")
	}
}
