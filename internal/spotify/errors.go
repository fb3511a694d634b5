package spotify

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"
)

// Validation errors carry the exact messages shown to users, so they pass
// through Friendly unchanged.
var (
	// ErrMissingCredentials reports that no API credentials are configured.
	ErrMissingCredentials = errors.New("spotify client ID and secret are required")

	// ErrBadLimit reports a page size outside the API's accepted range.
	ErrBadLimit = errors.New("Limit must be between 1 and 50, inclusive.")

	// ErrBadAlbumURI reports an album URI that is not of the form
	// spotify:album:<id>.
	ErrBadAlbumURI = errors.New("Invalid album URI format. Expected format: 'spotify:album:<Spotify ID>'.")

	// ErrBadArtistURI reports an artist URI that is not of the form
	// spotify:artist:<id>.
	ErrBadArtistURI = errors.New("Invalid artist URI format. Expected format: 'spotify:artist:<Spotify ID>'.")

	// ErrBadTrackURIs reports a track URI list containing entries that do
	// not start with the spotify:track: prefix.
	ErrBadTrackURIs = errors.New("Invalid track URIs provided. Each URI must be a string starting with 'spotify:track:'.")

	// ErrNoTracks reports an empty track URI list.
	ErrNoTracks = errors.New("No track URIs provided.")

	// ErrNoQuery reports an empty search query.
	ErrNoQuery = errors.New("No search query provided.")

	// ErrBadSearchType reports an unrecognized search type name.
	ErrBadSearchType = errors.New("Invalid search type. Expected a comma-separated subset of 'artist,track,album,playlist'.")

	// ErrBadAlbumGroup reports an unrecognized album group name.
	ErrBadAlbumGroup = errors.New("Invalid include group. Expected a comma-separated subset of 'album,single,appears_on,compilation'.")
)

// validationErrs are reported verbatim by Friendly.
var validationErrs = []error{
	ErrMissingCredentials,
	ErrBadLimit,
	ErrBadAlbumURI,
	ErrBadArtistURI,
	ErrBadTrackURIs,
	ErrNoTracks,
	ErrNoQuery,
	ErrBadSearchType,
	ErrBadAlbumGroup,
}

// Friendly converts a gateway error into the message shown to users.
// Authentication and rate limit failures get fixed texts, other API and
// OAuth failures keep their detail, and validation errors pass through
// unchanged.
func Friendly(err error) string {
	for _, verr := range validationErrs {
		if errors.Is(err, verr) {
			return verr.Error()
		}
	}

	var apiErr spotify.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusUnauthorized:
			return "Authentication failed: Check your Spotify credentials."
		case http.StatusTooManyRequests:
			return "Rate limit exceeded: Try again later."
		}
		return fmt.Sprintf("Spotify API error: %v", apiErr)
	}

	var oauthErr *oauth2.RetrieveError
	if errors.As(err, &oauthErr) {
		return fmt.Sprintf("OAuth error: %v", oauthErr)
	}

	return fmt.Sprintf("An unexpected error occurred: %v", err)
}
