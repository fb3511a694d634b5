// Package main implements a CLI tool to bump the version in a project
// manifest such as pyproject.toml.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tunalyze/tunalyze/internal/version"
	bump "github.com/tunalyze/tunalyze/pkg"
)

func usage() {
	msg := `Usage:
  update-version [options] <version-bump>

Bumps the version in a project manifest (default: ./pyproject.toml), rewriting the single
version line in place and leaving every other byte of the file unchanged.

Examples:
  update-version patch
  update-version 1.2.3
  update-version -manifest services/api/pyproject.toml minor
  update-version -dry major

Positional arguments:
  <version-bump>     One of: major, minor, patch, or an explicit version like 1.2.3

Options:
`
	fmt.Fprint(os.Stderr, msg)
	flag.PrintDefaults()
}

func main() {
	// Define flags.
	manifest := flag.String("manifest", "./pyproject.toml", "Path to the manifest containing the version declaration")
	dryRun := flag.Bool("dry", false, "Perform a dry run without modifying the manifest")
	showVersion := flag.Bool("version", false, "Show CLI version and exit")
	help := flag.Bool("help", false, "Show help message and exit")

	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Println("update-version CLI version", version.Semantic())
		os.Exit(0)
	}

	// Guard against misplaced flags after positional args.
	for _, arg := range flag.Args() {
		if strings.HasPrefix(arg, "-") {
			fmt.Println("Error: Flags must be specified before the command. Please reorder your arguments.")
			usage()
			os.Exit(1)
		}
	}

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Error: <version-bump> positional argument is required")
		usage()
		os.Exit(1)
	}
	versionArg := args[0]

	var meta bump.VersionMeta
	var err error

	if *dryRun {
		meta, err = bump.DryRun(*manifest, versionArg)
	} else {
		meta, err = bump.Run(*manifest, versionArg)
	}
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	if *dryRun {
		fmt.Printf("Version would be updated to %s.\n", meta.NewVersion)
	} else {
		fmt.Printf("Version updated to %s.\n", meta.NewVersion)
	}
}
