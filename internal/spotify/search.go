package spotify

import (
	"context"
	"fmt"
	"strings"

	"github.com/zmb3/spotify/v2"
	"go.uber.org/zap"
)

// DefaultSearchLimit is the page size used when the caller does not set one.
const DefaultSearchLimit = 10

// searchTypes maps the user-facing names onto the API's search type bits.
var searchTypes = map[string]spotify.SearchType{
	"artist":   spotify.SearchTypeArtist,
	"track":    spotify.SearchTypeTrack,
	"album":    spotify.SearchTypeAlbum,
	"playlist": spotify.SearchTypePlaylist,
}

// ParseSearchTypes converts a comma-separated list such as "artist,track"
// into the API's search type mask.
func ParseSearchTypes(s string) (spotify.SearchType, error) {
	var mask spotify.SearchType
	for _, name := range strings.Split(s, ",") {
		st, ok := searchTypes[strings.TrimSpace(name)]
		if !ok {
			return 0, fmt.Errorf("%w Got: %q.", ErrBadSearchType, name)
		}
		mask |= st
	}
	return mask, nil
}

// Search performs a catalog search. A zero limit means DefaultSearchLimit;
// anything outside [MinLimit, MaxLimit] is rejected. An empty market leaves
// the API default in place.
func (g *Gateway) Search(ctx context.Context, query string, types spotify.SearchType, limit, offset int, market string) (*spotify.SearchResult, error) {
	if query == "" {
		return nil, ErrNoQuery
	}
	if limit == 0 {
		limit = DefaultSearchLimit
	}
	if limit < MinLimit || limit > MaxLimit {
		return nil, ErrBadLimit
	}

	opts := []spotify.RequestOption{spotify.Limit(limit)}
	if offset > 0 {
		opts = append(opts, spotify.Offset(offset))
	}
	if market != "" {
		opts = append(opts, spotify.Market(market))
	}

	g.logger.Debug("Searching the catalog",
		zap.String("query", query),
		zap.Int("limit", limit),
		zap.Int("offset", offset),
		zap.String("market", market))

	results, err := g.api.Search(ctx, query, types, opts...)
	if err != nil {
		g.logger.Error("Spotify search request failed",
			zap.String("query", query),
			zap.Error(err))
		return nil, fmt.Errorf("searching catalog: %w", err)
	}

	return results, nil
}
