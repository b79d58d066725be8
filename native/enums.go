package native

// ErrorType is the status code returned by native calls.
type ErrorType int

const (
	ErrorOK                     ErrorType = 0
	ErrorBadAPIVersion          ErrorType = 1
	ErrorAPIInitializationFail  ErrorType = 2
	ErrorTrackNotPlayable       ErrorType = 3
	ErrorBadApplicationKey      ErrorType = 5
	ErrorBadUsernameOrPassword  ErrorType = 6
	ErrorUserBanned             ErrorType = 7
	ErrorUnableToContactServer  ErrorType = 8
	ErrorClientTooOld           ErrorType = 9
	ErrorOtherPermanent         ErrorType = 10
	ErrorBadUserAgent           ErrorType = 11
	ErrorMissingCallback        ErrorType = 12
	ErrorInvalidIndata          ErrorType = 13
	ErrorIndexOutOfRange        ErrorType = 14
	ErrorUserNeedsPremium       ErrorType = 15
	ErrorOtherTransient         ErrorType = 16
	ErrorIsLoading              ErrorType = 17
	ErrorNoStreamAvailable      ErrorType = 18
	ErrorPermissionDenied       ErrorType = 19
	ErrorInboxIsFull            ErrorType = 20
	ErrorNoCache                ErrorType = 21
	ErrorNoSuchUser             ErrorType = 22
	ErrorNoCredentials          ErrorType = 23
	ErrorNetworkDisabled        ErrorType = 24
	ErrorInvalidDeviceID        ErrorType = 25
	ErrorCantOpenTraceFile      ErrorType = 26
	ErrorApplicationBanned      ErrorType = 27
	ErrorOfflineTooManyTracks   ErrorType = 31
	ErrorOfflineDiskCache       ErrorType = 32
	ErrorOfflineExpired         ErrorType = 33
	ErrorOfflineNotAllowed      ErrorType = 34
	ErrorOfflineLicenseLost     ErrorType = 35
	ErrorOfflineLicenseError    ErrorType = 36
	ErrorLastfmAuthError        ErrorType = 39
	ErrorInvalidArgument        ErrorType = 40
	ErrorSystemFailure          ErrorType = 41
)

var errorNames = map[ErrorType]string{
	ErrorOK:                    "OK",
	ErrorBadAPIVersion:         "BAD_API_VERSION",
	ErrorAPIInitializationFail: "API_INITIALIZATION_FAILED",
	ErrorTrackNotPlayable:      "TRACK_NOT_PLAYABLE",
	ErrorBadApplicationKey:     "BAD_APPLICATION_KEY",
	ErrorBadUsernameOrPassword: "BAD_USERNAME_OR_PASSWORD",
	ErrorUserBanned:            "USER_BANNED",
	ErrorUnableToContactServer: "UNABLE_TO_CONTACT_SERVER",
	ErrorClientTooOld:          "CLIENT_TOO_OLD",
	ErrorOtherPermanent:        "OTHER_PERMANENT",
	ErrorBadUserAgent:          "BAD_USER_AGENT",
	ErrorMissingCallback:       "MISSING_CALLBACK",
	ErrorInvalidIndata:         "INVALID_INDATA",
	ErrorIndexOutOfRange:       "INDEX_OUT_OF_RANGE",
	ErrorUserNeedsPremium:      "USER_NEEDS_PREMIUM",
	ErrorOtherTransient:        "OTHER_TRANSIENT",
	ErrorIsLoading:             "IS_LOADING",
	ErrorNoStreamAvailable:     "NO_STREAM_AVAILABLE",
	ErrorPermissionDenied:      "PERMISSION_DENIED",
	ErrorInboxIsFull:           "INBOX_IS_FULL",
	ErrorNoCache:               "NO_CACHE",
	ErrorNoSuchUser:            "NO_SUCH_USER",
	ErrorNoCredentials:         "NO_CREDENTIALS",
	ErrorNetworkDisabled:       "NETWORK_DISABLED",
	ErrorInvalidDeviceID:       "INVALID_DEVICE_ID",
	ErrorCantOpenTraceFile:     "CANT_OPEN_TRACE_FILE",
	ErrorApplicationBanned:     "APPLICATION_BANNED",
	ErrorOfflineTooManyTracks:  "OFFLINE_TOO_MANY_TRACKS",
	ErrorOfflineDiskCache:      "OFFLINE_DISK_CACHE",
	ErrorOfflineExpired:        "OFFLINE_EXPIRED",
	ErrorOfflineNotAllowed:     "OFFLINE_NOT_ALLOWED",
	ErrorOfflineLicenseLost:    "OFFLINE_LICENSE_LOST",
	ErrorOfflineLicenseError:   "OFFLINE_LICENSE_ERROR",
	ErrorLastfmAuthError:       "LASTFM_AUTH_ERROR",
	ErrorInvalidArgument:       "INVALID_ARGUMENT",
	ErrorSystemFailure:         "SYSTEM_FAILURE",
}

var errorMessages = map[ErrorType]string{
	ErrorOK:                    "no error",
	ErrorBadAPIVersion:         "the library version targeted does not match the one you claim you support",
	ErrorAPIInitializationFail: "initialization of library failed",
	ErrorTrackNotPlayable:      "the track specified for playing cannot be played",
	ErrorBadApplicationKey:     "the application key is invalid",
	ErrorBadUsernameOrPassword: "login failed because of bad username and/or password",
	ErrorUserBanned:            "the specified username is banned",
	ErrorUnableToContactServer: "cannot connect to the service backend system",
	ErrorClientTooOld:          "client is too old, library will need to be updated",
	ErrorOtherPermanent:        "some other error occurred, and it is permanent",
	ErrorBadUserAgent:          "the user agent string is invalid or too long",
	ErrorMissingCallback:       "no valid callback registered to handle events",
	ErrorInvalidIndata:         "input data was either missing or invalid",
	ErrorIndexOutOfRange:       "index out of range",
	ErrorUserNeedsPremium:      "the specified user needs a premium account",
	ErrorOtherTransient:        "a transient error occurred",
	ErrorIsLoading:             "the resource is currently loading",
	ErrorNoStreamAvailable:     "could not find any suitable stream to play",
	ErrorPermissionDenied:      "requested operation is not allowed",
	ErrorInboxIsFull:           "target inbox is full",
	ErrorNoCache:               "cache is not enabled",
	ErrorNoSuchUser:            "requested user does not exist",
	ErrorNoCredentials:         "no credentials are stored",
	ErrorNetworkDisabled:       "network disabled",
	ErrorInvalidDeviceID:       "invalid device ID",
	ErrorCantOpenTraceFile:     "unable to open trace file",
	ErrorApplicationBanned:     "this application is no longer allowed to use the service",
	ErrorOfflineTooManyTracks:  "reached the device limit for number of tracks to download",
	ErrorOfflineDiskCache:      "disk cache is full so no more tracks can be downloaded to offline mode",
	ErrorOfflineExpired:        "offline key has expired, the user needs to go online again",
	ErrorOfflineNotAllowed:     "this user is not allowed to use offline mode",
	ErrorOfflineLicenseLost:    "the license for this device has been lost",
	ErrorOfflineLicenseError:   "the offline license server returned an error",
	ErrorLastfmAuthError:       "the Last.fm scrobbler authentication failed",
	ErrorInvalidArgument:       "an invalid argument was specified",
	ErrorSystemFailure:         "an operating system error occurred",
}

// String returns the symbolic name, e.g. "IS_LOADING".
func (e ErrorType) String() string {
	if name, ok := errorNames[e]; ok {
		return name
	}
	return "UNKNOWN_ERROR"
}

// Message returns the human readable description of the code.
func (e ErrorType) Message() string {
	if msg, ok := errorMessages[e]; ok {
		return msg
	}
	return "unknown error"
}

// ImageSize selects one of the image variants the service keeps.
type ImageSize int

const (
	ImageSizeNormal ImageSize = 0
	ImageSizeSmall  ImageSize = 1
	ImageSizeLarge  ImageSize = 2
)

func (s ImageSize) String() string {
	switch s {
	case ImageSizeNormal:
		return "NORMAL"
	case ImageSizeSmall:
		return "SMALL"
	case ImageSizeLarge:
		return "LARGE"
	}
	return "UNKNOWN"
}

// SearchType values are part of the native ABI and must not change.
type SearchType int

const (
	SearchTypeStandard SearchType = 0
	SearchTypeSuggest  SearchType = 1
)

func (t SearchType) String() string {
	switch t {
	case SearchTypeStandard:
		return "STANDARD"
	case SearchTypeSuggest:
		return "SUGGEST"
	}
	return "UNKNOWN"
}

type AlbumType int

const (
	AlbumTypeAlbum       AlbumType = 0
	AlbumTypeSingle      AlbumType = 1
	AlbumTypeCompilation AlbumType = 2
	AlbumTypeUnknown     AlbumType = 3
)

func (t AlbumType) String() string {
	switch t {
	case AlbumTypeAlbum:
		return "ALBUM"
	case AlbumTypeSingle:
		return "SINGLE"
	case AlbumTypeCompilation:
		return "COMPILATION"
	}
	return "UNKNOWN"
}

type ImageFormat int

const (
	ImageFormatUnknown ImageFormat = -1
	ImageFormatJPEG    ImageFormat = 0
	// ImageFormatPNG is only produced by the emulator.
	ImageFormatPNG ImageFormat = 1
)

type LinkType int

const (
	LinkTypeInvalid  LinkType = 0
	LinkTypeTrack    LinkType = 1
	LinkTypeAlbum    LinkType = 2
	LinkTypeArtist   LinkType = 3
	LinkTypeSearch   LinkType = 4
	LinkTypePlaylist LinkType = 5
	LinkTypeImage    LinkType = 9
)
