// Package artistalbums implements the 'artist-albums' command of the
// Tunalyze CLI.
//
// The 'artist-albums' command lists the releases of an artist identified
// by their spotify:artist: URI, optionally filtered by release group.
package artistalbums

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/tunalyze/tunalyze/internal/cli/util"
	"github.com/tunalyze/tunalyze/internal/config"
	"github.com/tunalyze/tunalyze/internal/spotify"
)

// Executor is used for executing the 'artist-albums' command.
type Executor struct {
	// Config supplies the Spotify credentials and request defaults.
	Config *config.Config
	// Logger receives the command's structured logs.
	Logger *zap.Logger
	// ArtistURI is the spotify:artist: URI of the artist to list.
	ArtistURI string
	// Groups is the comma-separated list of release groups to include.
	Groups string
	// Limit is the page size.
	Limit int
	// Offset is the index of the first release to return.
	Offset int
}

// NewExecutor creates an executor for the specified 'artist-albums'
// command.
func NewExecutor(cmd *cli.Command, conf *config.Config, log *zap.Logger) (*Executor, error) {
	return &Executor{
		Config:    conf,
		Logger:    log,
		ArtistURI: cmd.StringArg("artist-uri"),
		Groups:    cmd.String("groups"),
		Limit:     int(cmd.Int("limit")),
		Offset:    int(cmd.Int("offset")),
	}, nil
}

// Execute executes the 'artist-albums' command.
func (e *Executor) Execute(ctx context.Context) error {
	groups, err := spotify.ParseAlbumGroups(e.Groups)
	if err != nil {
		return err
	}

	g, err := spotify.New(ctx, e.Config, e.Logger)
	if err != nil {
		return err
	}

	page, err := g.ArtistAlbums(ctx, e.ArtistURI, groups, e.Limit, e.Offset)
	if err != nil {
		return err
	}

	return util.PrintArtistAlbums(os.Stdout, page)
}

// NewCommand creates a new 'artist-albums' command with the specified
// configuration.
func NewCommand(conf *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "artist-albums",
		Usage: "List the releases of an artist",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "artist-uri"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "groups",
				Usage: "comma-separated release groups: album, single, appears_on, compilation",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "releases per page, between 1 and 50",
				Value: spotify.DefaultArtistAlbumsLimit,
			},
			&cli.IntFlag{
				Name:  "offset",
				Usage: "index of the first release",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := NewExecutor(cmd, conf, log)
			if err != nil {
				return err
			}
			return e.Execute(ctx)
		},
	}
}
