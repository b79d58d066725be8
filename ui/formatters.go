package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/yhkl-dev/gospotify/domain"
)

// FormatDuration converts a duration to MM:SS format
func FormatDuration(d time.Duration) string {
	seconds := int(d / time.Second)
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Truncate shortens s to at most width runes, marking the cut with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// FormatTrackInfo creates the side panel text for the selected track
func FormatTrackInfo(track domain.Track, index int, cover string) string {
	status := "[lightgreen]playable"
	if !track.Playable {
		status = "[red]not playable"
	}

	artists := strings.Join(track.Artists, ", ")
	if artists == "" {
		artists = "unknown"
	}

	info := fmt.Sprintf(`
[white]Track %d:
[yellow]%s

[darkgray][duration] %s [darkgray][popularity] %d
[darkgray][status] %s

[gray]Artist: [white]%s
[gray]Album:  [white]%s
[darkgray]%s`,
		index+1, track.Name,
		FormatDuration(track.Duration), track.Popularity, status,
		artists, track.Album, track.URI)

	if cover != "" {
		info += "\n\n" + cover
	}
	return info + `

[darkgray] ENTER (cover art)
[darkgray] j/k (row)
[darkgray] J/K (page)
[darkgray] gg/G (nav)
[darkgray] o (overview)
[darkgray] ? (help)`
}

// FormatPageInfo summarizes the current search and table page
func FormatPageInfo(page *domain.SearchPage, currentPage, totalPages int) string {
	if page == nil {
		return "[gray]No search yet"
	}
	return fmt.Sprintf("[gray]%q | Page %d/%d | %s", page.Query, currentPage, totalPages, page.Summary())
}

// FormatSuggestion returns the "did you mean" hint for a page, if any
func FormatSuggestion(page *domain.SearchPage) string {
	if page == nil || page.DidYouMean == "" || strings.EqualFold(page.DidYouMean, page.Query) {
		return ""
	}
	return fmt.Sprintf("[darkgray]Did you mean [yellow]%s[darkgray]? (press s)", page.DidYouMean)
}

// CreateWelcomeMessage creates the welcome screen message
func CreateWelcomeMessage(ready bool) string {
	source := "[lightgreen]ready"
	if !ready {
		source = "[red]not responding"
	}
	return fmt.Sprintf(`
[lightgreen] Welcome to gospotify
[darkgray][search] Browse the catalog!
[darkgray][session] %s

[gray]  / (search) | ENTER (cover art)
[gray]  J/K (page) | j/k (row)
[gray]  gg (start) | G (end)
[gray]  o (overview) | ? (help)
[gray]  ESC to exit`, source)
}
