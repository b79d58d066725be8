package library

import (
	"context"

	"github.com/yhkl-dev/gospotify/domain"
	"github.com/yhkl-dev/gospotify/spotify"
)

type Library interface {
	Search(ctx context.Context, query string, opts spotify.SearchOptions) (*domain.SearchPage, error)
	CoverArt(ctx context.Context, albumURI string) ([]byte, error)
	Ping() error
}
