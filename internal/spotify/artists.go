package spotify

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/zmb3/spotify/v2"
	"go.uber.org/zap"
)

// DefaultArtistAlbumsLimit is the page size used when the caller does not
// set one.
const DefaultArtistAlbumsLimit = 10

// artistURIPattern matches URIs of the form spotify:artist:<id>.
var artistURIPattern = regexp.MustCompile(`^spotify:artist:[0-9a-zA-Z]+$`)

// albumGroups maps the include group names onto the API's album types.
var albumGroups = map[string]spotify.AlbumType{
	"album":       spotify.AlbumTypeAlbum,
	"single":      spotify.AlbumTypeSingle,
	"appears_on":  spotify.AlbumTypeAppearsOn,
	"compilation": spotify.AlbumTypeCompilation,
}

// ParseAlbumGroups converts a comma-separated include list such as
// "album,single" into API album types. An empty string means no filter.
func ParseAlbumGroups(s string) ([]spotify.AlbumType, error) {
	if s == "" {
		return nil, nil
	}
	var groups []spotify.AlbumType
	for _, name := range strings.Split(s, ",") {
		at, ok := albumGroups[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("%w Got: %q.", ErrBadAlbumGroup, name)
		}
		groups = append(groups, at)
	}
	return groups, nil
}

// ArtistAlbums lists the albums of the artist identified by its Spotify
// URI, optionally filtered to the given album groups. A zero limit means
// DefaultArtistAlbumsLimit.
func (g *Gateway) ArtistAlbums(ctx context.Context, artistURI string, groups []spotify.AlbumType, limit, offset int) (*spotify.SimpleAlbumPage, error) {
	if !artistURIPattern.MatchString(artistURI) {
		return nil, fmt.Errorf("%w Got: %q.", ErrBadArtistURI, artistURI)
	}
	if limit == 0 {
		limit = DefaultArtistAlbumsLimit
	}
	if limit < MinLimit || limit > MaxLimit {
		return nil, ErrBadLimit
	}

	id := spotify.ID(artistURI[strings.LastIndex(artistURI, ":")+1:])

	opts := []spotify.RequestOption{spotify.Limit(limit)}
	if offset > 0 {
		opts = append(opts, spotify.Offset(offset))
	}

	g.logger.Debug("Fetching artist albums",
		zap.String("artist_id", string(id)),
		zap.Int("groups", len(groups)),
		zap.Int("limit", limit),
		zap.Int("offset", offset))

	page, err := g.api.GetArtistAlbums(ctx, id, groups, opts...)
	if err != nil {
		g.logger.Error("Artist albums request failed",
			zap.String("artist_id", string(id)),
			zap.Error(err))
		return nil, fmt.Errorf("fetching artist albums: %w", err)
	}

	return page, nil
}
