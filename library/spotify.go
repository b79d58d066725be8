package library

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/yhkl-dev/gospotify/domain"
	"github.com/yhkl-dev/gospotify/spotify"
)

// ErrNoCover is returned by CoverArt for albums without cover art, or albums
// that no search has returned yet.
var ErrNoCover = errors.New("no cover art for album")

// SpotifyLibrary runs searches on a session and converts the results to
// domain values. Every wrapper it creates is released before returning.
type SpotifyLibrary struct {
	session *spotify.Session
	timeout time.Duration

	mu     sync.Mutex
	covers map[string][]byte // album URI -> normal size cover id
}

func NewSpotifyLibrary(session *spotify.Session, timeout time.Duration) *SpotifyLibrary {
	if timeout <= 0 {
		timeout = spotify.DefaultLoadTimeout
	}
	return &SpotifyLibrary{
		session: session,
		timeout: timeout,
		covers:  make(map[string][]byte),
	}
}

// SetTimeout changes how long Search and CoverArt wait for data.
func (s *SpotifyLibrary) SetTimeout(timeout time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timeout > 0 {
		s.timeout = timeout
	}
}

func (s *SpotifyLibrary) getTimeout() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeout
}

func (s *SpotifyLibrary) Search(ctx context.Context, query string, opts spotify.SearchOptions) (*domain.SearchPage, error) {
	timeout := s.getTimeout()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	r, err := s.session.Search(query, opts, nil)
	if err != nil {
		return nil, errors.Wrap(err, "search")
	}
	defer r.Release()

	if err := waitFor(ctx, r, timeout); err != nil {
		return nil, errors.Wrapf(err, "search %q", query)
	}

	tracks, err := r.Tracks()
	if err != nil {
		return nil, err
	}
	defer releaseAll(tracks)
	albums, err := r.Albums()
	if err != nil {
		return nil, err
	}
	defer releaseAll(albums)
	artists, err := r.Artists()
	if err != nil {
		return nil, err
	}
	defer releaseAll(artists)
	playlists, err := r.Playlists()
	if err != nil {
		return nil, err
	}

	items := make([]spotify.Loadable, 0, len(tracks)+len(albums)+len(artists))
	items = append(items, lo.Map(tracks, func(t *spotify.Track, _ int) spotify.Loadable { return t })...)
	items = append(items, lo.Map(albums, func(a *spotify.Album, _ int) spotify.Loadable { return a })...)
	items = append(items, lo.Map(artists, func(a *spotify.Artist, _ int) spotify.Loadable { return a })...)
	if err := spotify.LoadAll(ctx, timeout, items...); err != nil {
		return nil, errors.Wrap(err, "load search results")
	}

	page := &domain.SearchPage{
		Tracks:    lo.Map(tracks, func(t *spotify.Track, _ int) domain.Track { return convertTrack(t) }),
		Albums:    lo.Map(albums, func(a *spotify.Album, _ int) domain.Album { return s.convertAlbum(a) }),
		Artists:   lo.Map(artists, func(a *spotify.Artist, _ int) domain.Artist { return convertArtist(a) }),
		Playlists: lo.Map(playlists, func(p spotify.SearchResultPlaylist, _ int) domain.Playlist { return domain.Playlist(p) }),
	}
	page.Query, _ = r.Query()
	page.DidYouMean, _ = r.DidYouMean()
	page.TotalTracks, _ = r.TotalTracks()
	page.TotalAlbums, _ = r.TotalAlbums()
	page.TotalArtists, _ = r.TotalArtists()
	page.TotalPlaylists, _ = r.TotalPlaylists()
	page.SearchURI = linkURI(r.Link())

	slog.Debug("search finished", "query", query, "summary", page.Summary())
	return page, nil
}

// CoverArt returns the encoded cover image of an album seen in an earlier
// search.
func (s *SpotifyLibrary) CoverArt(ctx context.Context, albumURI string) ([]byte, error) {
	s.mu.Lock()
	id, ok := s.covers[albumURI]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoCover
	}

	timeout := s.getTimeout()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	img, err := s.session.CreateImage(id)
	if err != nil {
		return nil, errors.Wrap(err, "cover art")
	}
	defer img.Release()

	if err := waitFor(ctx, img, timeout); err != nil {
		return nil, errors.Wrapf(err, "cover art for %s", albumURI)
	}
	if code := img.Error(); code != spotify.ErrorOK {
		return nil, errors.Wrapf(&spotify.Error{Op: "load image", Code: code}, "cover art for %s", albumURI)
	}
	return img.Data(), nil
}

// Ping runs an empty search to check that the native library is responsive.
func (s *SpotifyLibrary) Ping() error {
	timeout := s.getTimeout()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	r, err := s.session.Search("", spotify.SearchOptions{}, nil)
	if err != nil {
		return errors.Wrap(err, "ping")
	}
	defer r.Release()
	if err := waitFor(ctx, r, timeout); err != nil {
		return errors.Wrap(err, "ping")
	}
	if code := r.Error(); code != spotify.ErrorOK {
		return errors.Wrap(&spotify.Error{Op: "ping", Code: code}, "ping")
	}
	return nil
}

// waitFor loads l, reporting a deadline as a timeout error.
func waitFor(ctx context.Context, l spotify.Loadable, timeout time.Duration) error {
	err := spotify.LoadContext(ctx, l)
	if errors.Is(err, context.DeadlineExceeded) {
		return &spotify.TimeoutError{Timeout: timeout}
	}
	return err
}

func releaseAll[T interface{ Release() }](items []T) {
	for _, item := range items {
		item.Release()
	}
}

// linkURI returns the URI of a freshly created link and releases it.
func linkURI(l *spotify.Link, err error) string {
	if err != nil {
		return ""
	}
	defer l.Release()
	return l.String()
}

func convertTrack(t *spotify.Track) domain.Track {
	dt := domain.Track{
		URI:        linkURI(t.Link()),
		Name:       t.Name(),
		Duration:   t.Duration(),
		Popularity: t.Popularity(),
		Playable:   t.Error() == spotify.ErrorOK,
	}
	if album := t.Album(); album != nil {
		dt.Album = album.Name()
		dt.AlbumURI = linkURI(album.Link())
		album.Release()
	}
	artists := t.Artists()
	dt.Artists = lo.Map(artists, func(a *spotify.Artist, _ int) string { return a.Name() })
	releaseAll(artists)
	return dt
}

func (s *SpotifyLibrary) convertAlbum(a *spotify.Album) domain.Album {
	da := domain.Album{
		URI:       linkURI(a.Link()),
		Name:      a.Name(),
		Year:      a.Year(),
		Type:      a.Type().String(),
		Available: a.IsAvailable(),
	}
	if artist := a.Artist(); artist != nil {
		da.Artist = artist.Name()
		artist.Release()
	}
	if id := a.CoverID(spotify.ImageSizeNormal); id != nil {
		da.HasCover = true
		s.mu.Lock()
		s.covers[da.URI] = id
		s.mu.Unlock()
	}
	return da
}

func convertArtist(a *spotify.Artist) domain.Artist {
	return domain.Artist{
		URI:         linkURI(a.Link()),
		Name:        a.Name(),
		HasPortrait: a.PortraitID(spotify.ImageSizeNormal) != nil,
	}
}
