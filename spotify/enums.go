package spotify

import "github.com/yhkl-dev/gospotify/native"

type (
	ErrorType   = native.ErrorType
	ImageSize   = native.ImageSize
	SearchType  = native.SearchType
	AlbumType   = native.AlbumType
	ImageFormat = native.ImageFormat
	LinkType    = native.LinkType
)

const (
	ErrorOK               = native.ErrorOK
	ErrorBadAPIVersion    = native.ErrorBadAPIVersion
	ErrorOtherPermanent   = native.ErrorOtherPermanent
	ErrorOtherTransient   = native.ErrorOtherTransient
	ErrorInvalidIndata    = native.ErrorInvalidIndata
	ErrorIsLoading        = native.ErrorIsLoading
	ErrorInvalidArgument  = native.ErrorInvalidArgument
	ErrorBadUserAgent     = native.ErrorBadUserAgent
	ErrorTrackNotPlayable = native.ErrorTrackNotPlayable
)

const (
	ImageSizeNormal = native.ImageSizeNormal
	ImageSizeSmall  = native.ImageSizeSmall
	ImageSizeLarge  = native.ImageSizeLarge
)

const (
	SearchTypeStandard = native.SearchTypeStandard
	SearchTypeSuggest  = native.SearchTypeSuggest
)

const (
	AlbumTypeAlbum       = native.AlbumTypeAlbum
	AlbumTypeSingle      = native.AlbumTypeSingle
	AlbumTypeCompilation = native.AlbumTypeCompilation
	AlbumTypeUnknown     = native.AlbumTypeUnknown
)

const (
	ImageFormatUnknown = native.ImageFormatUnknown
	ImageFormatJPEG    = native.ImageFormatJPEG
	ImageFormatPNG     = native.ImageFormatPNG
)

const (
	LinkTypeInvalid = native.LinkTypeInvalid
	LinkTypeTrack   = native.LinkTypeTrack
	LinkTypeAlbum   = native.LinkTypeAlbum
	LinkTypeArtist  = native.LinkTypeArtist
	LinkTypeSearch  = native.LinkTypeSearch
	LinkTypeImage   = native.LinkTypeImage
)
