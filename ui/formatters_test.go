package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/yhkl-dev/gospotify/domain"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{3*time.Minute + 37*time.Second, "03:37"},
		{61*time.Minute + 500*time.Millisecond, "61:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Rooster", 0, "Rooster"},
		{"Rooster", 7, "Rooster"},
		{"Rooster", 5, "Roos…"},
		{"Rooster", 1, "…"},
		{"Süßigkeit", 4, "Süß…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestFormatSuggestion(t *testing.T) {
	tests := []struct {
		name string
		page *domain.SearchPage
		want bool
	}{
		{"nil page", nil, false},
		{"no suggestion", &domain.SearchPage{Query: "alice"}, false},
		{"same as query", &domain.SearchPage{Query: "alice coltrane", DidYouMean: "Alice Coltrane"}, false},
		{"suggestion", &domain.SearchPage{Query: "alcie", DidYouMean: "Alice Coltrane"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSuggestion(tt.page)
			if (got != "") != tt.want {
				t.Errorf("FormatSuggestion() = %q", got)
			}
			if tt.want && !strings.Contains(got, tt.page.DidYouMean) {
				t.Errorf("hint %q does not mention %q", got, tt.page.DidYouMean)
			}
		})
	}
}

func TestFormatTrackInfo(t *testing.T) {
	track := domain.Track{
		URI:      "spotify:track:abc",
		Name:     "Rooster",
		Album:    "Dirt",
		Artists:  []string{"Alice in Chains"},
		Duration: 6*time.Minute + 15*time.Second,
		Playable: true,
	}

	info := FormatTrackInfo(track, 0, "")
	for _, want := range []string{"Track 1:", "Rooster", "06:15", "Alice in Chains", "Dirt", "spotify:track:abc", "playable"} {
		if !strings.Contains(info, want) {
			t.Errorf("track info lacks %q", want)
		}
	}

	track.Playable = false
	track.Artists = nil
	info = FormatTrackInfo(track, 4, "COVER")
	for _, want := range []string{"Track 5:", "not playable", "unknown", "COVER"} {
		if !strings.Contains(info, want) {
			t.Errorf("track info lacks %q", want)
		}
	}
}

func TestFormatPageInfo(t *testing.T) {
	if got := FormatPageInfo(nil, 1, 1); !strings.Contains(got, "No search") {
		t.Errorf("FormatPageInfo(nil) = %q", got)
	}
	page := &domain.SearchPage{Query: "alice", Tracks: make([]domain.Track, 3), TotalTracks: 8}
	got := FormatPageInfo(page, 2, 4)
	if !strings.Contains(got, `"alice"`) || !strings.Contains(got, "Page 2/4") || !strings.Contains(got, "3 of 8 tracks") {
		t.Errorf("FormatPageInfo() = %q", got)
	}
}
