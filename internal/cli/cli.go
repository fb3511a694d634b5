// Package cli implements the command-line interface of Tunalyze.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/tunalyze/tunalyze/internal/cli/albumtracks"
	"github.com/tunalyze/tunalyze/internal/cli/artistalbums"
	"github.com/tunalyze/tunalyze/internal/cli/features"
	"github.com/tunalyze/tunalyze/internal/cli/search"
	"github.com/tunalyze/tunalyze/internal/config"
	"github.com/tunalyze/tunalyze/internal/version"
)

// NewTunalyzeCommand creates the root command of the Tunalyze CLI with the
// specified configuration.
func NewTunalyzeCommand(conf *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:    "tunalyze",
		Version: version.Semantic(),
		Usage:   "Explore the Spotify catalog and export audio feature datasets",
		Commands: []*cli.Command{
			search.NewCommand(conf, log),
			features.NewCommand(conf, log),
			albumtracks.NewCommand(conf, log),
			artistalbums.NewCommand(conf, log),
		},
		CommandNotFound: func(_ context.Context, _ *cli.Command, name string) {
			fmt.Fprintf(os.Stderr, "tunalyze: invalid command: '%s'\n", name)
		},
	}
}
