package spotify

import (
	"context"
	"fmt"
	"strings"

	"github.com/zmb3/spotify/v2"
	"go.uber.org/zap"
)

// trackURIPrefix is the only accepted shape for track URIs.
const trackURIPrefix = "spotify:track:"

// featuresBatchSize is the API's cap on audio feature lookups per request.
const featuresBatchSize = 100

// TrackFeatures fetches audio features for the given track URIs, batching
// requests featuresBatchSize tracks at a time. Every URI is validated
// before the first request is made. The result keeps the input order and
// may contain nil entries for IDs the API does not know.
func (g *Gateway) TrackFeatures(ctx context.Context, trackURIs []string) ([]*spotify.AudioFeatures, error) {
	if len(trackURIs) == 0 {
		return nil, ErrNoTracks
	}

	ids := make([]spotify.ID, 0, len(trackURIs))
	for _, uri := range trackURIs {
		if !strings.HasPrefix(uri, trackURIPrefix) {
			return nil, fmt.Errorf("%w Got: %q.", ErrBadTrackURIs, uri)
		}
		ids = append(ids, spotify.ID(strings.TrimPrefix(uri, trackURIPrefix)))
	}

	g.logger.Debug("Fetching audio features",
		zap.Int("tracks", len(ids)),
		zap.Int("batch_size", featuresBatchSize))

	features := make([]*spotify.AudioFeatures, 0, len(ids))
	for start := 0; start < len(ids); start += featuresBatchSize {
		end := start + featuresBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		batch, err := g.api.GetAudioFeatures(ctx, ids[start:end]...)
		if err != nil {
			g.logger.Error("Audio features request failed",
				zap.Int("offset", start),
				zap.Error(err))
			return nil, fmt.Errorf("fetching audio features at offset %d: %w", start, err)
		}
		features = append(features, batch...)
	}

	return features, nil
}
