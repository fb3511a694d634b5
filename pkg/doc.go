// Package bump provides a library for managing version bumps in a package
// manifest such as pyproject.toml.
//
// It provides functionalities for:
//   - Parsing and formatting strict major.minor.patch version triples.
//   - Locating the version declaration in a TOML manifest, validating the
//     document and skipping dependency tables so only the project version
//     is ever touched.
//   - Bumping versions using the keywords major, minor, and patch, or
//     setting an explicit version verbatim.
//   - Rewriting the single version line in place while preserving every
//     other byte of the manifest, including comments and formatting.
//
// This library is designed to be used both as a standalone command-line
// tool via the provided CLI (in cmd/update-version) and as a programmatic
// API to integrate version bumping into other Go programs.
//
// Usage Example:
//
//	import (
//	    "log"
//
//	    bump "github.com/tunalyze/tunalyze/pkg"
//	)
//
//	func main() {
//	    // Bump the version by "patch".
//	    meta, err := bump.Run("pyproject.toml", "patch")
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    log.Printf("bumped %s to %s", meta.OldVersion, meta.NewVersion)
//	}
//
// Concurrent invocations against the same manifest are serialized with an
// advisory lock file next to the manifest; a second invocation fails fast
// rather than waiting.
package bump
