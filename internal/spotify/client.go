// Package spotify implements the gateway to the Spotify Web API.
package spotify

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/tunalyze/tunalyze/internal/config"
)

// Page size bounds accepted by the API.
const (
	MinLimit = 1
	MaxLimit = 50
)

// Gateway wraps the Spotify Web API client used by the tunalyze commands.
type Gateway struct {
	api    *spotify.Client
	logger *zap.Logger
}

// New creates a Gateway authenticated with the client credentials flow.
// The configured timeout bounds token acquisition and every API call.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingCredentials, err)
	}

	api := spotify.New(apiClient(ctx, cfg, spotifyauth.TokenURL),
		spotify.WithRetry(true),
		spotify.WithAcceptLanguage(cfg.Language),
	)

	log.Info("Spotify client created successfully with client credentials flow")

	return &Gateway{api: api, logger: log}, nil
}

// apiClient builds the HTTP client performing API calls, fetching tokens
// from tokenURL with the client credentials flow. oauth2 copies only the
// transport from the base client it is handed, never the timeout, so the
// timeout is set on the token client and on the returned client
// separately.
func apiClient(ctx context.Context, cfg *config.Config, tokenURL string) *http.Client {
	auth := &clientcredentials.Config{
		ClientID:     cfg.SpotifyClientID,
		ClientSecret: cfg.SpotifyClientSecret,
		TokenURL:     tokenURL,
	}

	base := &http.Client{Timeout: cfg.Timeout}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)

	client := auth.Client(ctx)
	client.Timeout = cfg.Timeout
	return client
}
