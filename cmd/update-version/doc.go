// Package main implements the update-version CLI tool.
//
// The update-version tool is a command-line interface that automates version
// bumping for projects described by a TOML manifest. It reads the version
// from a manifest (default "./pyproject.toml"), bumps it according to a
// given directive (e.g. "patch", "minor", "major", or an explicit version
// string), and rewrites the single version line in place, preserving every
// other byte of the file.
//
// Command Usage:
//
//	update-version [flags] <version-bump>
//
// Flags:
//
//	-manifest: Specifies the path to the manifest containing the version declaration.
//	           (Defaults to "./pyproject.toml")
//	-dry:      Computes and prints the version transition without modifying the manifest.
//	-version:  Displays the version of the update-version CLI tool and exits.
//
// Examples:
//
//	# Bump the patch version (e.g. 0.1.20 → 0.1.21)
//	update-version patch
//
//	# Bump the minor version (e.g. 0.1.20 → 0.2.0)
//	update-version minor
//
//	# Bump the major version (e.g. 0.1.21 → 1.0.0)
//	update-version major
//
//	# Set an explicit version directly
//	update-version 2.1.0
//
//	# Bump the version of a manifest outside the working directory
//	update-version -manifest services/api/pyproject.toml patch
//
//	# Preview a bump without writing anything
//	update-version -dry major
//
// On success the tool prints a single confirmation line:
//
//	Version updated to <version>.
//
// On failure it prints a single error line to standard output and exits
// with status 1. The manifest is never modified on failure, and a missing
// manifest is never created.
//
// For more detailed API documentation, please see the documentation in the
// "pkg" package.
package main
