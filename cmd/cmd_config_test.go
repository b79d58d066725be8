package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yhkl-dev/gospotify/config"
)

func TestRunInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gospotify.toml")

	var stdout, stderr bytes.Buffer
	if code := runInitConfig(&InitConfigParams{Path: path}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), path) {
		t.Errorf("stdout = %q", stdout.String())
	}

	cfg, err := config.NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *config.DefaultConfig() {
		t.Errorf("written config = %+v", cfg)
	}

	stderr.Reset()
	if code := runInitConfig(&InitConfigParams{Path: path}, &stdout, &stderr); code != 1 {
		t.Errorf("second run exit code %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunInitConfigPrint(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := runInitConfig(&InitConfigParams{Print: true}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	for _, want := range []string{"[search]", "track_count = 20", "user_agent ="} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, stdout.String())
		}
	}
}
