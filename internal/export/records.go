package export

import (
	"strconv"
	"strings"

	"github.com/zmb3/spotify/v2"
)

// featureType is the object type reported by the audio features endpoint.
const featureType = "audio_features"

// FeatureColumns lists the exported audio feature columns in output order.
func FeatureColumns() []string {
	return []string{
		"acousticness",
		"analysis_url",
		"danceability",
		"duration_ms",
		"energy",
		"id",
		"instrumentalness",
		"key",
		"liveness",
		"loudness",
		"mode",
		"speechiness",
		"tempo",
		"time_signature",
		"track_href",
		"type",
		"uri",
		"valence",
	}
}

// FeatureRows converts audio features into rows following FeatureColumns.
// Nil entries, which the API returns for unknown track IDs, are skipped.
func FeatureRows(features []*spotify.AudioFeatures) [][]string {
	rows := make([][]string, 0, len(features))
	for _, f := range features {
		if f == nil {
			continue
		}
		rows = append(rows, []string{
			formatFloat(f.Acousticness),
			f.AnalysisURL,
			formatFloat(f.Danceability),
			strconv.Itoa(int(f.Duration)),
			formatFloat(f.Energy),
			string(f.ID),
			formatFloat(f.Instrumentalness),
			strconv.Itoa(int(f.Key)),
			formatFloat(f.Liveness),
			formatFloat(f.Loudness),
			strconv.Itoa(int(f.Mode)),
			formatFloat(f.Speechiness),
			formatFloat(f.Tempo),
			strconv.Itoa(int(f.TimeSignature)),
			f.TrackURL,
			featureType,
			string(f.URI),
			formatFloat(f.Valence),
		})
	}
	return rows
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// SearchColumns lists the exported search match columns in output order.
func SearchColumns() []string {
	return []string{"type", "id", "name", "artists", "uri"}
}

// SearchRows flattens catalog matches into rows following SearchColumns.
// The artists column holds the owner for playlists and is empty for
// artists themselves.
func SearchRows(result *spotify.SearchResult) [][]string {
	var rows [][]string
	if result.Artists != nil {
		for _, a := range result.Artists.Artists {
			rows = append(rows, []string{"artist", string(a.ID), a.Name, "", string(a.URI)})
		}
	}
	if result.Albums != nil {
		for _, a := range result.Albums.Albums {
			rows = append(rows, []string{"album", string(a.ID), a.Name, joinArtistNames(a.Artists), string(a.URI)})
		}
	}
	if result.Tracks != nil {
		for _, t := range result.Tracks.Tracks {
			rows = append(rows, []string{"track", string(t.ID), t.Name, joinArtistNames(t.Artists), string(t.URI)})
		}
	}
	if result.Playlists != nil {
		for _, p := range result.Playlists.Playlists {
			rows = append(rows, []string{"playlist", string(p.ID), p.Name, p.Owner.DisplayName, string(p.URI)})
		}
	}
	return rows
}

func joinArtistNames(artists []spotify.SimpleArtist) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}
