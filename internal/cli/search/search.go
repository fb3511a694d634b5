// Package search implements the 'search' command of the Tunalyze CLI.
//
// The 'search' command queries the Spotify catalog for artists, tracks,
// albums, and playlists matching the given text, and prints or exports
// the matches.
package search

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/tunalyze/tunalyze/internal/cli/util"
	"github.com/tunalyze/tunalyze/internal/config"
	"github.com/tunalyze/tunalyze/internal/export"
	"github.com/tunalyze/tunalyze/internal/spotify"
)

// Executor is used for executing the 'search' command.
type Executor struct {
	// Config supplies the Spotify credentials and request defaults.
	Config *config.Config
	// Logger receives the command's structured logs.
	Logger *zap.Logger
	// Query is the text matched against the catalog.
	Query string
	// Types is the comma-separated list of result kinds to search for.
	Types string
	// Limit is the page size per result kind.
	Limit int
	// Offset is the index of the first result per kind.
	Offset int
	// Market restricts matches to a country code when non-empty.
	Market string
	// CSV switches the output from a listing to a CSV export.
	CSV bool
	// Out is the export filename; empty generates a timestamped one.
	Out string
}

// NewExecutor creates an executor for the specified 'search' command.
func NewExecutor(cmd *cli.Command, conf *config.Config, log *zap.Logger) (*Executor, error) {
	return &Executor{
		Config: conf,
		Logger: log,
		Query:  cmd.StringArg("query"),
		Types:  cmd.String("type"),
		Limit:  int(cmd.Int("limit")),
		Offset: int(cmd.Int("offset")),
		Market: cmd.String("market"),
		CSV:    cmd.Bool("csv"),
		Out:    cmd.String("out"),
	}, nil
}

// Execute executes the 'search' command.
func (e *Executor) Execute(ctx context.Context) error {
	types, err := spotify.ParseSearchTypes(e.Types)
	if err != nil {
		return err
	}

	g, err := spotify.New(ctx, e.Config, e.Logger)
	if err != nil {
		return err
	}

	result, err := g.Search(ctx, e.Query, types, e.Limit, e.Offset, e.Market)
	if err != nil {
		return err
	}

	if e.CSV {
		w, err := export.NewWriter("", e.Config.Timezone)
		if err != nil {
			return err
		}
		filename := e.Out
		if filename == "" {
			filename = w.Filename("_search")
		}
		rows := export.SearchRows(result)
		written, err := w.Export(filename, export.SearchColumns(), rows)
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d rows to %s.\n", len(rows), written)
		return nil
	}

	return util.PrintSearchResult(os.Stdout, result)
}

// NewCommand creates a new 'search' command with the specified
// configuration.
func NewCommand(conf *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the Spotify catalog",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "type",
				Usage: "comma-separated result kinds: artist, track, album, playlist",
				Value: "artist,track,album,playlist",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "results per kind, between 1 and 50",
				Value: spotify.DefaultSearchLimit,
			},
			&cli.IntFlag{
				Name:  "offset",
				Usage: "index of the first result",
			},
			&cli.StringFlag{
				Name:  "market",
				Usage: "two-letter country code restricting the matches",
				Value: conf.Market,
			},
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "export the matches to a CSV file",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "export filename, timestamped when omitted",
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
