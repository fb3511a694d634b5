package util

import (
	"bytes"
	"errors"
	"testing"

	"github.com/zmb3/spotify/v2"
)

var errFullDisk = errors.New("write: no space left on device")

type fullDisk struct{}

func (d *fullDisk) Write(_ []byte) (int, error) {
	return 0, errFullDisk
}

func TestPrintSearchResult(t *testing.T) {
	artists := &spotify.FullArtistPage{
		Artists: []spotify.FullArtist{
			{SimpleArtist: spotify.SimpleArtist{Name: "Radiohead", URI: "spotify:artist:ar1"}},
		},
	}
	artists.Total = 120
	tracks := &spotify.FullTrackPage{
		Tracks: []spotify.FullTrack{
			{SimpleTrack: spotify.SimpleTrack{
				Name: "Karma Police",
				URI:  "spotify:track:t1",
				Artists: []spotify.SimpleArtist{
					{Name: "Radiohead"},
				},
			}},
		},
	}
	tracks.Total = 3054

	buf := &bytes.Buffer{}
	err := PrintSearchResult(buf, &spotify.SearchResult{Artists: artists, Tracks: tracks})
	if err != nil {
		t.Fatal(err)
	}

	want := "Artists (120 total):\n" +
		"  spotify:artist:ar1  Radiohead\n" +
		"Tracks (3054 total):\n" +
		"  spotify:track:t1  Karma Police - Radiohead\n"
	if got := buf.String(); got != want {
		t.Errorf("got: %q; want: %q", got, want)
	}
}

func TestPrintAlbumTracks(t *testing.T) {
	page := &spotify.SimpleTrackPage{
		Tracks: []spotify.SimpleTrack{
			{TrackNumber: 1, Name: "Speed of Sound", URI: "spotify:track:t1"},
			{TrackNumber: 2, Name: "Fix You", URI: "spotify:track:t2"},
		},
	}

	buf := &bytes.Buffer{}
	if err := PrintAlbumTracks(buf, page); err != nil {
		t.Fatal(err)
	}

	want := " 1. Speed of Sound  spotify:track:t1\n" +
		" 2. Fix You  spotify:track:t2\n"
	if got := buf.String(); got != want {
		t.Errorf("got: %q; want: %q", got, want)
	}
}

func TestPrintArtistAlbums(t *testing.T) {
	page := &spotify.SimpleAlbumPage{
		Albums: []spotify.SimpleAlbum{
			{Name: "In Rainbows", URI: "spotify:album:a1", AlbumType: "album", ReleaseDate: "2007-10-10"},
		},
	}

	buf := &bytes.Buffer{}
	if err := PrintArtistAlbums(buf, page); err != nil {
		t.Fatal(err)
	}

	want := "spotify:album:a1  In Rainbows (album, 2007-10-10)\n"
	if got := buf.String(); got != want {
		t.Errorf("got: %q; want: %q", got, want)
	}
}

func TestPrintFeatures(t *testing.T) {
	features := []*spotify.AudioFeatures{
		{ID: "t1", Danceability: 0.52, Energy: 0.8, Tempo: 120, Valence: 0.3},
		nil,
		{ID: "t2", Danceability: 0.1, Energy: 0.25, Tempo: 77.5, Valence: 1},
	}

	buf := &bytes.Buffer{}
	if err := PrintFeatures(buf, features); err != nil {
		t.Fatal(err)
	}

	want := "t1  dance=0.520 energy=0.800 tempo=120.0 valence=0.300\n" +
		"t2  dance=0.100 energy=0.250 tempo=77.5 valence=1.000\n"
	if got := buf.String(); got != want {
		t.Errorf("got: %q; want: %q", got, want)
	}
}

func TestPrintToFullDisk(t *testing.T) {
	disk := &fullDisk{}
	page := &spotify.SimpleTrackPage{
		Tracks: []spotify.SimpleTrack{{TrackNumber: 1, Name: "test"}},
	}
	if got := PrintAlbumTracks(disk, page); !errors.Is(got, errFullDisk) {
		t.Errorf("got: %v; want: %v", got, errFullDisk)
	}

	features := []*spotify.AudioFeatures{{ID: "t1"}}
	if got := PrintFeatures(disk, features); !errors.Is(got, errFullDisk) {
		t.Errorf("got: %v; want: %v", got, errFullDisk)
	}
}
