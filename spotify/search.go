package spotify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/yhkl-dev/gospotify/native"
)

// SearchOptions controls how many results of each kind a search returns.
type SearchOptions struct {
	TrackOffset    int
	TrackCount     int
	AlbumOffset    int
	AlbumCount     int
	ArtistOffset   int
	ArtistCount    int
	PlaylistOffset int
	PlaylistCount  int
	Type           SearchType
}

// DefaultSearchOptions asks for the first 20 results of every kind.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		TrackCount:    20,
		AlbumCount:    20,
		ArtistCount:   20,
		PlaylistCount: 20,
		Type:          SearchTypeStandard,
	}
}

func (o SearchOptions) request(query string) native.SearchRequest {
	return native.SearchRequest{
		Query:          query,
		TrackOffset:    o.TrackOffset,
		TrackCount:     o.TrackCount,
		AlbumOffset:    o.AlbumOffset,
		AlbumCount:     o.AlbumCount,
		ArtistOffset:   o.ArtistOffset,
		ArtistCount:    o.ArtistCount,
		PlaylistOffset: o.PlaylistOffset,
		PlaylistCount:  o.PlaylistCount,
		Type:           o.Type,
	}
}

// SearchResultPlaylist is a playlist as reported inside a search result.
// Playlists found by a search are plain values, not native references.
type SearchResultPlaylist struct {
	Name     string
	URI      string
	ImageURI string
}

// SearchResult is a pending or completed search.
type SearchResult struct {
	lib     native.Library
	h       native.SearchHandle
	ref     *ref
	session *Session

	// mu guards built and early. A completion that arrives before Search has
	// built the wrapper, for example from inside SearchCreate, is recorded in
	// early and delivered by Search once the wrapper is ready.
	mu    sync.Mutex
	built bool
	early bool

	done     chan struct{}
	doneOnce sync.Once
	callback func(*SearchResult)
	token    uintptr
}

// NewSearchResult starts a search on the active session. callback, if not
// nil, is called once from the event thread when the search completes.
func NewSearchResult(query string, opts SearchOptions, callback func(*SearchResult)) (*SearchResult, error) {
	s := CurrentSession()
	if s == nil {
		return nil, ErrNoSession
	}
	return s.Search(query, opts, callback)
}

// Search starts a search on s. The result stays reachable until its
// completion callback has run, even if the caller drops it.
func (s *Session) Search(query string, opts SearchOptions, callback func(*SearchResult)) (*SearchResult, error) {
	r := &SearchResult{
		lib:      s.lib,
		session:  s,
		done:     make(chan struct{}),
		callback: callback,
	}
	r.token = pendingSearches.hold(r)

	h := s.lib.SearchCreate(s.h, opts.request(query), searchComplete, r.token)
	if h == 0 {
		pendingSearches.take(r.token)
		return nil, &Error{Op: "create search", Code: ErrorOtherTransient}
	}
	lib := s.lib
	r.mu.Lock()
	r.h = h
	r.ref = adopt(r, "search", func() native.ErrorType { return lib.SearchRelease(h) })
	r.built = true
	early := r.early
	r.mu.Unlock()

	slog.Debug("search issued", "query", query, "type", opts.Type.String(), "token", r.token, "completed", early)
	if early {
		r.complete()
	}
	return r, nil
}

// NewSearchResultFromHandle wraps a search the native library already
// created and takes a reference to it. Its completion signal starts unset.
func NewSearchResultFromHandle(lib native.Library, h native.SearchHandle) *SearchResult {
	if h == 0 {
		return nil
	}
	lib.SearchAddRef(h)
	r := &SearchResult{
		lib:   lib,
		h:     h,
		built: true,
		done:  make(chan struct{}),
	}
	r.ref = adopt(r, "search", func() native.ErrorType { return lib.SearchRelease(h) })
	return r
}

// searchComplete is the single native callback for every search. userdata
// is the keep-alive token given to SearchCreate.
func searchComplete(h native.SearchHandle, userdata uintptr) {
	r, ok := pendingSearches.take(userdata)
	if !ok {
		slog.Warn("search completed with unknown token", "token", userdata)
		return
	}
	r.mu.Lock()
	if !r.built {
		r.early = true
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	r.complete()
}

func (r *SearchResult) complete() {
	fired := false
	r.doneOnce.Do(func() {
		close(r.done)
		fired = true
	})
	if fired && r.callback != nil {
		r.callback(r)
	}
}

func (r *SearchResult) Handle() native.SearchHandle {
	return r.h
}

// Release gives back the native reference. A search released before it
// completes never runs its callback.
func (r *SearchResult) Release() {
	if r.token != 0 {
		pendingSearches.take(r.token)
	}
	r.ref.close()
}

// abandon releases a search whose session is going away. Its callback never
// runs.
func (r *SearchResult) abandon() {
	r.mu.Lock()
	rf := r.ref
	r.mu.Unlock()
	if rf != nil {
		rf.close()
	}
}

func (r *SearchResult) isReleased() bool {
	return !r.ref.live()
}

// Done is closed when the native library reports the search complete.
func (r *SearchResult) Done() <-chan struct{} {
	return r.done
}

// IsComplete reports whether the completion signal is set.
func (r *SearchResult) IsComplete() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the search completes or ctx is done.
func (r *SearchResult) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsLoaded reports whether the search's data is loaded.
func (r *SearchResult) IsLoaded() bool {
	return r.ref.live() && r.lib.SearchIsLoaded(r.h)
}

// Load blocks until the search's data is loaded.
func (r *SearchResult) Load(timeout time.Duration) (*SearchResult, error) {
	if err := Load(r, timeout); err != nil {
		return nil, err
	}
	return r, nil
}

// Error returns the native status of the search. It is ErrorIsLoading until
// the search completes.
func (r *SearchResult) Error() ErrorType {
	if !r.ref.live() {
		return ErrorInvalidArgument
	}
	return r.lib.SearchError(r.h)
}

func (r *SearchResult) check(op string) error {
	if !r.ref.live() {
		return ErrReleased
	}
	return checkError("search "+op, r.lib.SearchError(r.h))
}

// Tracks returns the tracks found, in result order. The slice is empty while
// the search isn't loaded. Null native handles are skipped.
func (r *SearchResult) Tracks() ([]*Track, error) {
	if err := r.check("tracks"); err != nil {
		return nil, err
	}
	if !r.IsLoaded() {
		return []*Track{}, nil
	}
	return lo.Compact(lo.Times(r.lib.SearchNumTracks(r.h), func(i int) *Track {
		return NewTrack(r.lib, r.lib.SearchTrack(r.h, i))
	})), nil
}

func (r *SearchResult) Albums() ([]*Album, error) {
	if err := r.check("albums"); err != nil {
		return nil, err
	}
	if !r.IsLoaded() {
		return []*Album{}, nil
	}
	return lo.Compact(lo.Times(r.lib.SearchNumAlbums(r.h), func(i int) *Album {
		return NewAlbum(r.lib, r.lib.SearchAlbum(r.h, i))
	})), nil
}

func (r *SearchResult) Artists() ([]*Artist, error) {
	if err := r.check("artists"); err != nil {
		return nil, err
	}
	if !r.IsLoaded() {
		return []*Artist{}, nil
	}
	return lo.Compact(lo.Times(r.lib.SearchNumArtists(r.h), func(i int) *Artist {
		return NewArtist(r.lib, r.lib.SearchArtist(r.h, i))
	})), nil
}

func (r *SearchResult) Playlists() ([]SearchResultPlaylist, error) {
	if err := r.check("playlists"); err != nil {
		return nil, err
	}
	if !r.IsLoaded() {
		return []SearchResultPlaylist{}, nil
	}
	return lo.Times(r.lib.SearchNumPlaylists(r.h), func(i int) SearchResultPlaylist {
		return SearchResultPlaylist{
			Name:     r.lib.SearchPlaylistName(r.h, i),
			URI:      r.lib.SearchPlaylistURI(r.h, i),
			ImageURI: r.lib.SearchPlaylistImageURI(r.h, i),
		}
	}), nil
}

// Query returns the query the search was issued with, or "" if empty.
func (r *SearchResult) Query() (string, error) {
	if err := r.check("query"); err != nil {
		return "", err
	}
	return r.lib.SearchQuery(r.h), nil
}

// DidYouMean returns the spelling suggestion, or "" if there is none.
func (r *SearchResult) DidYouMean() (string, error) {
	if err := r.check("did you mean"); err != nil {
		return "", err
	}
	return r.lib.SearchDidYouMean(r.h), nil
}

// TotalTracks is the number of matching tracks, which may exceed the
// number returned.
func (r *SearchResult) TotalTracks() (int, error) {
	if err := r.check("total tracks"); err != nil {
		return 0, err
	}
	return r.lib.SearchTotalTracks(r.h), nil
}

func (r *SearchResult) TotalAlbums() (int, error) {
	if err := r.check("total albums"); err != nil {
		return 0, err
	}
	return r.lib.SearchTotalAlbums(r.h), nil
}

func (r *SearchResult) TotalArtists() (int, error) {
	if err := r.check("total artists"); err != nil {
		return 0, err
	}
	return r.lib.SearchTotalArtists(r.h), nil
}

func (r *SearchResult) TotalPlaylists() (int, error) {
	if err := r.check("total playlists"); err != nil {
		return 0, err
	}
	return r.lib.SearchTotalPlaylists(r.h), nil
}

// Link returns a link that re-runs the search.
func (r *SearchResult) Link() (*Link, error) {
	if err := r.check("link"); err != nil {
		return nil, err
	}
	return adoptLink(r.lib, r.lib.LinkCreateFromSearch(r.h))
}
