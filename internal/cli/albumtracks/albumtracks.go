// Package albumtracks implements the 'album-tracks' command of the
// Tunalyze CLI.
//
// The 'album-tracks' command lists the tracks of an album identified by
// its spotify:album: URI.
package albumtracks

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/tunalyze/tunalyze/internal/cli/util"
	"github.com/tunalyze/tunalyze/internal/config"
	"github.com/tunalyze/tunalyze/internal/spotify"
)

// Executor is used for executing the 'album-tracks' command.
type Executor struct {
	// Config supplies the Spotify credentials and request defaults.
	Config *config.Config
	// Logger receives the command's structured logs.
	Logger *zap.Logger
	// AlbumURI is the spotify:album: URI of the album to list.
	AlbumURI string
	// Limit is the page size.
	Limit int
	// Offset is the index of the first track to return.
	Offset int
}

// NewExecutor creates an executor for the specified 'album-tracks' command.
func NewExecutor(cmd *cli.Command, conf *config.Config, log *zap.Logger) (*Executor, error) {
	return &Executor{
		Config:   conf,
		Logger:   log,
		AlbumURI: cmd.StringArg("album-uri"),
		Limit:    int(cmd.Int("limit")),
		Offset:   int(cmd.Int("offset")),
	}, nil
}

// Execute executes the 'album-tracks' command.
func (e *Executor) Execute(ctx context.Context) error {
	g, err := spotify.New(ctx, e.Config, e.Logger)
	if err != nil {
		return err
	}

	page, err := g.AlbumTracks(ctx, e.AlbumURI, e.Limit, e.Offset)
	if err != nil {
		return err
	}

	return util.PrintAlbumTracks(os.Stdout, page)
}

// NewCommand creates a new 'album-tracks' command with the specified
// configuration.
func NewCommand(conf *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "album-tracks",
		Usage: "List the tracks of an album",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "album-uri"},
		},
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "tracks per page, between 1 and 50",
				Value: spotify.DefaultAlbumTracksLimit,
			},
			&cli.IntFlag{
				Name:  "offset",
				Usage: "index of the first track",
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
