// Package features implements the 'features' command of the Tunalyze CLI.
//
// The 'features' command fetches the audio features of one or more tracks
// and prints them or exports them as a CSV dataset.
package features

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

// Executor is used for executing the 'features' command.
type Executor struct {
	// Config supplies the Spotify credentials and request defaults.
	Config *config.Config
	// Logger receives the command's structured logs.
	Logger *zap.Logger
	// TrackURIs are the spotify:track: URIs to fetch features for.
	TrackURIs []string
	// CSV switches the output from a listing to a CSV export.
	CSV bool
	// Out is the export filename; empty generates a timestamped one.
	Out string
}

// NewExecutor creates an executor for the specified 'features' command.
func NewExecutor(cmd *cli.Command, conf *config.Config, log *zap.Logger) (*Executor, error) {
	return &Executor{
		Config:    conf,
		Logger:    log,
		TrackURIs: cmd.Args().Slice(),
		CSV:       cmd.Bool("csv"),
		Out:       cmd.String("out"),
	}, nil
}

// Execute executes the 'features' command.
func (e *Executor) Execute(ctx context.Context) error {
	g, err := spotify.New(ctx, e.Config, e.Logger)
	if err != nil {
		return err
	}

	features, err := g.TrackFeatures(ctx, e.TrackURIs)
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
			filename = w.Filename("_features")
		}
		rows := export.FeatureRows(features)
		written, err := w.Export(filename, export.FeatureColumns(), rows)
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d rows to %s.\n", len(rows), written)
		return nil
	}

	return util.PrintFeatures(os.Stdout, features)
}

// NewCommand creates a new 'features' command with the specified
// configuration.
func NewCommand(conf *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "features",
		Usage:     "Fetch audio features for one or more tracks",
		ArgsUsage: "<track-uri>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "export the features to a CSV file",
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
