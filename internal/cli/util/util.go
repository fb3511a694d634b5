// Package util provides output helpers for the Tunalyze CLI.
package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/zmb3/spotify/v2"
)

// PrintSearchResult pretty-prints catalog matches grouped by kind, one
// match per line with its URI first so results can feed other commands.
func PrintSearchResult(w io.Writer, result *spotify.SearchResult) error {
	if result.Artists != nil {
		if _, err := fmt.Fprintf(w, "Artists (%d total):\n", int(result.Artists.Total)); err != nil {
			return err
		}
		for _, a := range result.Artists.Artists {
			if _, err := fmt.Fprintf(w, "  %s  %s\n", a.URI, a.Name); err != nil {
				return err
			}
		}
	}
	if result.Albums != nil {
		if _, err := fmt.Fprintf(w, "Albums (%d total):\n", int(result.Albums.Total)); err != nil {
			return err
		}
		for _, a := range result.Albums.Albums {
			if _, err := fmt.Fprintf(w, "  %s  %s - %s\n", a.URI, a.Name, JoinArtists(a.Artists)); err != nil {
				return err
			}
		}
	}
	if result.Tracks != nil {
		if _, err := fmt.Fprintf(w, "Tracks (%d total):\n", int(result.Tracks.Total)); err != nil {
			return err
		}
		for _, t := range result.Tracks.Tracks {
			if _, err := fmt.Fprintf(w, "  %s  %s - %s\n", t.URI, t.Name, JoinArtists(t.Artists)); err != nil {
				return err
			}
		}
	}
	if result.Playlists != nil {
		if _, err := fmt.Fprintf(w, "Playlists (%d total):\n", int(result.Playlists.Total)); err != nil {
			return err
		}
		for _, p := range result.Playlists.Playlists {
			if _, err := fmt.Fprintf(w, "  %s  %s (by %s)\n", p.URI, p.Name, p.Owner.DisplayName); err != nil {
				return err
			}
		}
	}
	return nil
}

// PrintAlbumTracks pretty-prints an album's track listing in track order.
func PrintAlbumTracks(w io.Writer, page *spotify.SimpleTrackPage) error {
	for _, t := range page.Tracks {
		if _, err := fmt.Fprintf(w, "%2d. %s  %s\n", t.TrackNumber, t.Name, t.URI); err != nil {
			return err
		}
	}
	return nil
}

// PrintArtistAlbums pretty-prints an artist's releases.
func PrintArtistAlbums(w io.Writer, page *spotify.SimpleAlbumPage) error {
	for _, a := range page.Albums {
		if _, err := fmt.Fprintf(w, "%s  %s (%s, %s)\n", a.URI, a.Name, a.AlbumType, a.ReleaseDate); err != nil {
			return err
		}
	}
	return nil
}

// PrintFeatures writes headline audio metrics, one track per line.
// Entries the API did not recognize are skipped.
func PrintFeatures(w io.Writer, features []*spotify.AudioFeatures) error {
	for _, f := range features {
		if f == nil {
			continue
		}
		_, err := fmt.Fprintf(w, "%s  dance=%.3f energy=%.3f tempo=%.1f valence=%.3f\n",
			f.ID, f.Danceability, f.Energy, f.Tempo, f.Valence)
		if err != nil {
			return err
		}
	}
	return nil
}

// JoinArtists renders an artist list as a comma-separated string.
func JoinArtists(artists []spotify.SimpleArtist) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}
