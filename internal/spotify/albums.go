package spotify

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/zmb3/spotify/v2"
	"go.uber.org/zap"
)

// DefaultAlbumTracksLimit is the page size used when the caller does not
// set one.
const DefaultAlbumTracksLimit = 20

// albumURIPattern matches URIs of the form spotify:album:<id>.
var albumURIPattern = regexp.MustCompile(`^spotify:album:[0-9a-zA-Z]+$`)

// AlbumTracks lists the tracks of the album identified by its Spotify URI.
// A zero limit means DefaultAlbumTracksLimit.
func (g *Gateway) AlbumTracks(ctx context.Context, albumURI string, limit, offset int) (*spotify.SimpleTrackPage, error) {
	if !albumURIPattern.MatchString(albumURI) {
		return nil, fmt.Errorf("%w Got: %q.", ErrBadAlbumURI, albumURI)
	}
	if limit == 0 {
		limit = DefaultAlbumTracksLimit
	}
	if limit < MinLimit || limit > MaxLimit {
		return nil, ErrBadLimit
	}

	id := spotify.ID(albumURI[strings.LastIndex(albumURI, ":")+1:])

	opts := []spotify.RequestOption{spotify.Limit(limit)}
	if offset > 0 {
		opts = append(opts, spotify.Offset(offset))
	}

	g.logger.Debug("Fetching album tracks",
		zap.String("album_id", string(id)),
		zap.Int("limit", limit),
		zap.Int("offset", offset))

	page, err := g.api.GetAlbumTracks(ctx, id, opts...)
	if err != nil {
		g.logger.Error("Album tracks request failed",
			zap.String("album_id", string(id)),
			zap.Error(err))
		return nil, fmt.Errorf("fetching album tracks: %w", err)
	}

	return page, nil
}
