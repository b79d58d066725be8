package emulator

import (
	"sort"
	"strings"

	"github.com/yhkl-dev/gospotify/native"
)

// suggestLimit caps every category of a SUGGEST search.
const suggestLimit = 4

type search struct {
	query      string
	didYouMean string
	complete   bool
	err        native.ErrorType

	tracks    []native.TrackHandle
	albums    []native.AlbumHandle
	artists   []native.ArtistHandle
	playlists []playlist

	totalTracks    int
	totalAlbums    int
	totalArtists   int
	totalPlaylists int

	cb       native.SearchCompleteFunc
	userdata uintptr
}

type recordedRequest struct {
	session  native.SessionHandle
	req      native.SearchRequest
	userdata uintptr
}

type completion struct {
	h        native.SearchHandle
	cb       native.SearchCompleteFunc
	userdata uintptr
}

func (c completion) fire() {
	if c.cb != nil {
		c.cb(c.h, c.userdata)
	}
}

// LastSearchRequest returns the arguments of the most recent SearchCreate.
func (e *Emulator) LastSearchRequest() (native.SessionHandle, native.SearchRequest, uintptr, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lastRequest == nil {
		return 0, native.SearchRequest{}, 0, false
	}
	r := e.lastRequest
	return r.session, r.req, r.userdata, true
}

// FailNextSearch makes the next search complete with code instead of OK.
func (e *Emulator) FailNextSearch(code native.ErrorType) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failNext = code
}

// SetSearchError overrides the error a search reports.
func (e *Emulator) SetSearchError(h native.SearchHandle, code native.ErrorType) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s, ok := e.searches[h]; ok {
		s.err = code
	}
}

// CompleteSearch finishes a pending search right away and fires its callback
// on the calling goroutine. It reports false when h is not pending.
func (e *Emulator) CompleteSearch(h native.SearchHandle) bool {
	e.mu.Lock()
	idx := -1
	for i, p := range e.pending {
		if p == h {
			idx = i
			break
		}
	}
	s, ok := e.searches[h]
	if idx < 0 || !ok {
		e.mu.Unlock()
		return false
	}
	e.pending = append(e.pending[:idx], e.pending[idx+1:]...)
	c := e.finish(h, s)
	e.mu.Unlock()
	c.fire()
	return true
}

// finish marks s as complete. Callers hold e.mu.
func (e *Emulator) finish(h native.SearchHandle, s *search) completion {
	s.complete = true
	s.err = native.ErrorOK
	if e.failNext != native.ErrorOK {
		s.err = e.failNext
		e.failNext = native.ErrorOK
	}
	return completion{h: h, cb: s.cb, userdata: s.userdata}
}

func (e *Emulator) SearchCreate(session native.SessionHandle, req native.SearchRequest, cb native.SearchCompleteFunc, userdata uintptr) native.SearchHandle {
	e.mu.Lock()
	if _, ok := e.lookup(uintptr(session), kindSession); !ok {
		e.mu.Unlock()
		return 0
	}
	e.lastRequest = &recordedRequest{session: session, req: req, userdata: userdata}
	h := native.SearchHandle(e.newEntry(kindSearch, true))
	s := &search{query: req.Query, err: native.ErrorIsLoading, cb: cb, userdata: userdata}
	e.match(s, req)
	e.searches[h] = s
	e.pending = append(e.pending, h)
	e.mu.Unlock()

	e.wake()
	return h
}

// match fills s with the catalog entries whose names contain the query.
// Callers hold e.mu.
func (e *Emulator) match(s *search, req native.SearchRequest) {
	q := strings.ToLower(strings.TrimSpace(req.Query))
	if q == "" {
		return
	}
	contains := func(name string) bool { return strings.Contains(strings.ToLower(name), q) }
	artistMatches := func(hs ...native.ArtistHandle) bool {
		for _, h := range hs {
			if a, ok := e.artists[h]; ok && contains(a.name) {
				return true
			}
		}
		return false
	}

	var tracks []native.TrackHandle
	for h, t := range e.tracks {
		if contains(t.name) || artistMatches(t.artists...) {
			tracks = append(tracks, h)
		}
	}
	var albums []native.AlbumHandle
	for h, a := range e.albums {
		if contains(a.name) || artistMatches(a.artist) {
			albums = append(albums, h)
		}
	}
	var artists []native.ArtistHandle
	for h, a := range e.artists {
		if contains(a.name) {
			artists = append(artists, h)
		}
	}
	var playlists []playlist
	for _, p := range e.playlists {
		if contains(p.name) {
			playlists = append(playlists, p)
		}
	}

	// Map iteration is random; handles grow with insertion order.
	sort.Slice(tracks, func(i, j int) bool { return tracks[i] < tracks[j] })
	sort.Slice(albums, func(i, j int) bool { return albums[i] < albums[j] })
	sort.Slice(artists, func(i, j int) bool { return artists[i] < artists[j] })

	s.totalTracks, s.totalAlbums = len(tracks), len(albums)
	s.totalArtists, s.totalPlaylists = len(artists), len(playlists)

	limit := func(n int) int {
		if req.Type == native.SearchTypeSuggest && n > suggestLimit {
			return suggestLimit
		}
		return n
	}
	s.tracks = page(tracks, req.TrackOffset, limit(req.TrackCount))
	s.albums = page(albums, req.AlbumOffset, limit(req.AlbumCount))
	s.artists = page(artists, req.ArtistOffset, limit(req.ArtistCount))
	s.playlists = page(playlists, req.PlaylistOffset, limit(req.PlaylistCount))

	if len(tracks)+len(albums)+len(artists)+len(playlists) == 0 {
		s.didYouMean = e.closestArtist(q)
	}
}

func page[T any](items []T, offset, count int) []T {
	if offset < 0 || count <= 0 || offset >= len(items) {
		return nil
	}
	end := offset + count
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// closestArtist suggests the artist name nearest to q by edit distance, if it
// is close enough to be a plausible typo. Callers hold e.mu.
func (e *Emulator) closestArtist(q string) string {
	best, bestDist := "", len(q)/2+1
	for _, a := range e.artists {
		name := strings.ToLower(a.name)
		// Compare against the prefix so "alcie" still suggests "alice cooper".
		if len(name) > len(q) {
			name = name[:len(q)]
		}
		if d := editDistance(q, name); d < bestDist || (d == bestDist && best != "" && a.name < best) {
			best, bestDist = a.name, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func (e *Emulator) SearchAddRef(h native.SearchHandle) native.ErrorType {
	return e.addRef(uintptr(h), kindSearch)
}

func (e *Emulator) SearchRelease(h native.SearchHandle) native.ErrorType {
	return e.release(uintptr(h), kindSearch)
}

func (e *Emulator) SearchIsLoaded(h native.SearchHandle) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	en, ok := e.lookup(uintptr(h), kindSearch)
	if !ok {
		return false
	}
	if en.forced != nil {
		return *en.forced
	}
	return e.searches[h].complete
}

func (e *Emulator) withSearch(h native.SearchHandle, fn func(s *search)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.lookup(uintptr(h), kindSearch); ok {
		fn(e.searches[h])
	}
}

func (e *Emulator) SearchError(h native.SearchHandle) native.ErrorType {
	code := native.ErrorInvalidArgument
	e.withSearch(h, func(s *search) { code = s.err })
	return code
}

func (e *Emulator) SearchQuery(h native.SearchHandle) (q string) {
	e.withSearch(h, func(s *search) { q = s.query })
	return q
}

func (e *Emulator) SearchDidYouMean(h native.SearchHandle) (q string) {
	e.withSearch(h, func(s *search) { q = s.didYouMean })
	return q
}

func (e *Emulator) SearchNumTracks(h native.SearchHandle) (n int) {
	e.withSearch(h, func(s *search) { n = len(s.tracks) })
	return n
}

func (e *Emulator) SearchTrack(h native.SearchHandle, index int) (t native.TrackHandle) {
	e.withSearch(h, func(s *search) {
		if index >= 0 && index < len(s.tracks) {
			t = s.tracks[index]
		}
	})
	return t
}

func (e *Emulator) SearchNumAlbums(h native.SearchHandle) (n int) {
	e.withSearch(h, func(s *search) { n = len(s.albums) })
	return n
}

func (e *Emulator) SearchAlbum(h native.SearchHandle, index int) (a native.AlbumHandle) {
	e.withSearch(h, func(s *search) {
		if index >= 0 && index < len(s.albums) {
			a = s.albums[index]
		}
	})
	return a
}

func (e *Emulator) SearchNumArtists(h native.SearchHandle) (n int) {
	e.withSearch(h, func(s *search) { n = len(s.artists) })
	return n
}

func (e *Emulator) SearchArtist(h native.SearchHandle, index int) (a native.ArtistHandle) {
	e.withSearch(h, func(s *search) {
		if index >= 0 && index < len(s.artists) {
			a = s.artists[index]
		}
	})
	return a
}

func (e *Emulator) SearchNumPlaylists(h native.SearchHandle) (n int) {
	e.withSearch(h, func(s *search) { n = len(s.playlists) })
	return n
}

func (e *Emulator) searchPlaylist(h native.SearchHandle, index int, field func(p playlist) string) (v string) {
	e.withSearch(h, func(s *search) {
		if index >= 0 && index < len(s.playlists) {
			v = field(s.playlists[index])
		}
	})
	return v
}

func (e *Emulator) SearchPlaylistName(h native.SearchHandle, index int) string {
	return e.searchPlaylist(h, index, func(p playlist) string { return p.name })
}

func (e *Emulator) SearchPlaylistURI(h native.SearchHandle, index int) string {
	return e.searchPlaylist(h, index, func(p playlist) string { return p.uri })
}

func (e *Emulator) SearchPlaylistImageURI(h native.SearchHandle, index int) string {
	return e.searchPlaylist(h, index, func(p playlist) string { return p.imageURI })
}

func (e *Emulator) SearchTotalTracks(h native.SearchHandle) (n int) {
	e.withSearch(h, func(s *search) { n = s.totalTracks })
	return n
}

func (e *Emulator) SearchTotalAlbums(h native.SearchHandle) (n int) {
	e.withSearch(h, func(s *search) { n = s.totalAlbums })
	return n
}

func (e *Emulator) SearchTotalArtists(h native.SearchHandle) (n int) {
	e.withSearch(h, func(s *search) { n = s.totalArtists })
	return n
}

func (e *Emulator) SearchTotalPlaylists(h native.SearchHandle) (n int) {
	e.withSearch(h, func(s *search) { n = s.totalPlaylists })
	return n
}
