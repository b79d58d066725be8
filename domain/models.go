package domain

import (
	"fmt"
	"sync"
	"time"
)

// Track represents a track found by a search
type Track struct {
	URI        string
	Name       string
	Album      string
	AlbumURI   string
	Artists    []string
	Duration   time.Duration
	Popularity int
	Playable   bool
}

// Album represents an album found by a search
type Album struct {
	URI       string
	Name      string
	Artist    string
	Year      int
	Type      string
	Available bool
	HasCover  bool
}

// Artist represents an artist found by a search
type Artist struct {
	URI         string
	Name        string
	HasPortrait bool
}

// Playlist is a playlist record from a search result
type Playlist struct {
	Name     string
	URI      string
	ImageURI string
}

// SearchPage is one completed search, detached from any native handles
type SearchPage struct {
	Query      string
	DidYouMean string
	SearchURI  string

	Tracks    []Track
	Albums    []Album
	Artists   []Artist
	Playlists []Playlist

	TotalTracks    int
	TotalAlbums    int
	TotalArtists   int
	TotalPlaylists int
}

// Empty reports whether the search found nothing at all
func (p *SearchPage) Empty() bool {
	return len(p.Tracks)+len(p.Albums)+len(p.Artists)+len(p.Playlists) == 0
}

// Summary returns a one line description such as "3 of 12 tracks, 1 album"
func (p *SearchPage) Summary() string {
	return fmt.Sprintf("%d of %d tracks, %d of %d albums, %d of %d artists, %d of %d playlists",
		len(p.Tracks), p.TotalTracks,
		len(p.Albums), p.TotalAlbums,
		len(p.Artists), p.TotalArtists,
		len(p.Playlists), p.TotalPlaylists)
}

// BrowserState holds the current search and selection in a thread-safe manner
type BrowserState struct {
	page          *SearchPage
	selectedIndex int
	isSearching   bool
	mux           sync.RWMutex
}

// NewBrowserState creates a new BrowserState with nothing selected
func NewBrowserState() *BrowserState {
	return &BrowserState{
		selectedIndex: -1,
	}
}

// GetState returns the current page, selection and searching flag (thread-safe)
func (s *BrowserState) GetState() (page *SearchPage, index int, searching bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.page, s.selectedIndex, s.isSearching
}

// SetSearching updates the searching flag (thread-safe)
func (s *BrowserState) SetSearching(searching bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.isSearching = searching
}

// SetPage replaces the current page and resets the selection (thread-safe)
func (s *BrowserState) SetPage(page *SearchPage) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.page = page
	s.selectedIndex = -1
	if page != nil && len(page.Tracks) > 0 {
		s.selectedIndex = 0
	}
}

// Select updates the selected track index (thread-safe). Out of range
// indexes are ignored.
func (s *BrowserState) Select(index int) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.page == nil || index < 0 || index >= len(s.page.Tracks) {
		return
	}
	s.selectedIndex = index
}

// SelectedTrack returns the selected track, if any (thread-safe)
func (s *BrowserState) SelectedTrack() (Track, bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	if s.page == nil || s.selectedIndex < 0 || s.selectedIndex >= len(s.page.Tracks) {
		return Track{}, false
	}
	return s.page.Tracks[s.selectedIndex], true
}
