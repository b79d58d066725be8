// Package native describes the boundary to the native music-service client
// library. Every handle is owned and reference counted by the library; the
// zero value of each handle type is the null handle.
package native

type (
	SessionHandle uintptr
	ArtistHandle  uintptr
	AlbumHandle   uintptr
	TrackHandle   uintptr
	SearchHandle  uintptr
	ImageHandle   uintptr
	LinkHandle    uintptr
)

// SearchCompleteFunc is invoked exactly once per created search, from the
// library's event thread. userdata is the opaque token passed to SearchCreate.
type SearchCompleteFunc func(search SearchHandle, userdata uintptr)

// NotifyFunc is invoked from any library thread when ProcessEvents should be
// called soon.
type NotifyFunc func()

// SessionConfig is passed to SessionCreate.
type SessionConfig struct {
	CacheLocation    string
	SettingsLocation string
	UserAgent        string
}

// SearchRequest groups the arguments of SearchCreate in native order.
type SearchRequest struct {
	Query          string
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

// Library is the set of native calls the binding uses. Implementations must
// be safe for concurrent use.
type Library interface {
	SessionCreate(cfg SessionConfig) (SessionHandle, ErrorType)
	SessionRelease(session SessionHandle) ErrorType
	// SessionProcessEvents runs pending library work and returns the number
	// of milliseconds until it wants to be called again.
	SessionProcessEvents(session SessionHandle) (nextTimeoutMs int, err ErrorType)
	SetNotifyFunc(session SessionHandle, fn NotifyFunc)

	ArtistAddRef(artist ArtistHandle) ErrorType
	ArtistRelease(artist ArtistHandle) ErrorType
	ArtistIsLoaded(artist ArtistHandle) bool
	ArtistName(artist ArtistHandle) string
	// ArtistPortrait returns nil when the artist has no portrait.
	ArtistPortrait(artist ArtistHandle, size ImageSize) []byte

	AlbumAddRef(album AlbumHandle) ErrorType
	AlbumRelease(album AlbumHandle) ErrorType
	AlbumIsLoaded(album AlbumHandle) bool
	AlbumIsAvailable(album AlbumHandle) bool
	AlbumArtist(album AlbumHandle) ArtistHandle
	// AlbumCover returns nil when the album has no cover.
	AlbumCover(album AlbumHandle, size ImageSize) []byte
	AlbumName(album AlbumHandle) string
	AlbumYear(album AlbumHandle) int
	AlbumType(album AlbumHandle) AlbumType

	TrackAddRef(track TrackHandle) ErrorType
	TrackRelease(track TrackHandle) ErrorType
	TrackIsLoaded(track TrackHandle) bool
	TrackError(track TrackHandle) ErrorType
	TrackName(track TrackHandle) string
	TrackDuration(track TrackHandle) int
	TrackPopularity(track TrackHandle) int
	TrackAlbum(track TrackHandle) AlbumHandle
	TrackNumArtists(track TrackHandle) int
	TrackArtist(track TrackHandle, index int) ArtistHandle

	SearchCreate(session SessionHandle, req SearchRequest, cb SearchCompleteFunc, userdata uintptr) SearchHandle
	SearchAddRef(search SearchHandle) ErrorType
	SearchRelease(search SearchHandle) ErrorType
	SearchIsLoaded(search SearchHandle) bool
	SearchError(search SearchHandle) ErrorType
	SearchQuery(search SearchHandle) string
	SearchDidYouMean(search SearchHandle) string
	SearchNumTracks(search SearchHandle) int
	SearchTrack(search SearchHandle, index int) TrackHandle
	SearchNumAlbums(search SearchHandle) int
	SearchAlbum(search SearchHandle, index int) AlbumHandle
	SearchNumArtists(search SearchHandle) int
	SearchArtist(search SearchHandle, index int) ArtistHandle
	SearchNumPlaylists(search SearchHandle) int
	SearchPlaylistName(search SearchHandle, index int) string
	SearchPlaylistURI(search SearchHandle, index int) string
	SearchPlaylistImageURI(search SearchHandle, index int) string
	SearchTotalTracks(search SearchHandle) int
	SearchTotalAlbums(search SearchHandle) int
	SearchTotalArtists(search SearchHandle) int
	SearchTotalPlaylists(search SearchHandle) int

	ImageCreate(session SessionHandle, imageID []byte) ImageHandle
	ImageAddRef(image ImageHandle) ErrorType
	ImageRelease(image ImageHandle) ErrorType
	ImageIsLoaded(image ImageHandle) bool
	ImageError(image ImageHandle) ErrorType
	ImageFormat(image ImageHandle) ImageFormat
	ImageData(image ImageHandle) []byte
	ImageID(image ImageHandle) []byte

	LinkCreateFromArtist(artist ArtistHandle) LinkHandle
	LinkCreateFromAlbum(album AlbumHandle) LinkHandle
	LinkCreateFromTrack(track TrackHandle, offsetMs int) LinkHandle
	LinkCreateFromSearch(search SearchHandle) LinkHandle
	LinkAddRef(link LinkHandle) ErrorType
	LinkRelease(link LinkHandle) ErrorType
	LinkAsString(link LinkHandle) string
	LinkType(link LinkHandle) LinkType
}
