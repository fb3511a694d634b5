package bump

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/gofrs/flock"
)

// Errors reported by the bump operations. Callers discriminate with
// errors.Is; the wrapped message carries the detail.
var (
	// ErrManifestNotFound reports that the manifest file does not exist at
	// the given path. Nothing is created or written in that case.
	ErrManifestNotFound = errors.New("manifest file not found")

	// ErrInvalidDirective reports a bump directive that is neither a known
	// keyword nor a literal major.minor.patch version.
	ErrInvalidDirective = errors.New("invalid bump directive")

	// ErrUnparsableManifest reports a manifest whose version cannot be
	// located: the file is not valid TOML, no version line was found, or a
	// keyword directive was applied to a version that is not an integer
	// triple.
	ErrUnparsableManifest = errors.New("unparsable manifest")

	// ErrManifestLocked reports that a concurrent invocation holds the
	// manifest lock.
	ErrManifestLocked = errors.New("manifest locked by another process")
)

// VersionMeta holds metadata about the version bump operation.
type VersionMeta struct {
	OldVersion   string // The version before bumping.
	NewVersion   string // The new version after bumping.
	BumpType     string // How the version was bumped ("major", "minor", "patch", or "explicit").
	ManifestPath string // The manifest that was (or would be) rewritten.
}

// Version is a strict major.minor.patch triple. It deliberately covers less
// than full semver: no "v" prefix, no prerelease, no build metadata. That is
// the only shape a manifest version field may hold.
type Version struct {
	Major int
	Minor int
	Patch int
}

// versionPattern matches a bare integer triple and nothing else.
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// ParseVersion extracts the numerical components from a version string.
// Anything other than a bare major.minor.patch triple is rejected.
func ParseVersion(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("version %q is not of the form major.minor.patch", s)
	}
	var v Version
	var err error
	if v.Major, err = strconv.Atoi(m[1]); err != nil {
		return Version{}, err
	}
	if v.Minor, err = strconv.Atoi(m[2]); err != nil {
		return Version{}, err
	}
	if v.Patch, err = strconv.Atoi(m[3]); err != nil {
		return Version{}, err
	}
	return v, nil
}

// IsVersion reports whether s is a bare major.minor.patch triple.
func IsVersion(s string) bool {
	return versionPattern.MatchString(s)
}

// String formats the triple as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Bump applies a keyword directive to produce the next version.
// Supported directives are "major", "minor", and "patch".
func (v Version) Bump(directive string) (Version, error) {
	switch directive {
	case "major":
		return Version{Major: v.Major + 1}, nil
	case "minor":
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case "patch":
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	default:
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidDirective, directive)
	}
}

// Run applies a bump directive to the manifest at manifestPath.
// Supported directive values are:
//
//	[major | minor | patch | <explicit version like 1.2.3>]
//
// The manifest must already exist; Run never creates one. On success the
// single version line has been rewritten in place and the returned metadata
// describes the transition. Every failure leaves the manifest byte-for-byte
// unchanged.
func Run(manifestPath, directive string) (VersionMeta, error) {
	meta := VersionMeta{ManifestPath: manifestPath}

	// 1. The manifest must exist before anything is computed.
	if err := statManifest(manifestPath); err != nil {
		return meta, err
	}

	// 2. Guard against concurrent invocations on the same manifest.
	unlock, err := lockManifest(manifestPath)
	if err != nil {
		return meta, err
	}
	defer unlock()

	// 3. Locate the current version line.
	loc, err := FindManifestVersion(manifestPath)
	if err != nil {
		return meta, err
	}
	meta.OldVersion = loc.Value

	// 4. Determine the new version.
	newVersion, bumpType, err := resolveDirective(loc.Value, directive)
	if err != nil {
		return meta, err
	}
	meta.NewVersion = newVersion
	meta.BumpType = bumpType

	// 5. Rewrite the version line, leaving the rest of the file untouched.
	if err := ReplaceManifestVersion(manifestPath, loc, newVersion); err != nil {
		return meta, err
	}

	return meta, nil
}

// DryRun computes the same metadata as Run without taking the lock or
// writing any changes to disk.
func DryRun(manifestPath, directive string) (VersionMeta, error) {
	meta := VersionMeta{ManifestPath: manifestPath}

	// 1. The manifest must exist.
	if err := statManifest(manifestPath); err != nil {
		return meta, err
	}

	// 2. Locate the current version line.
	loc, err := FindManifestVersion(manifestPath)
	if err != nil {
		return meta, err
	}
	meta.OldVersion = loc.Value

	// 3. Determine the new version (same logic as Run).
	newVersion, bumpType, err := resolveDirective(loc.Value, directive)
	if err != nil {
		return meta, err
	}
	meta.NewVersion = newVersion
	meta.BumpType = bumpType

	return meta, nil
}

// resolveDirective maps a directive and the current version to the new
// version string. Keyword directives require the current version to be a
// strict triple; an explicit directive is used verbatim and never consults
// the current version.
func resolveDirective(current, directive string) (newVersion, bumpType string, err error) {
	switch directive {
	case "major", "minor", "patch":
		cur, err := ParseVersion(current)
		if err != nil {
			return "", "", fmt.Errorf("%w: current %v", ErrUnparsableManifest, err)
		}
		next, err := cur.Bump(directive)
		if err != nil {
			return "", "", err
		}
		return next.String(), directive, nil
	default:
		if !IsVersion(directive) {
			return "", "", fmt.Errorf("%w: %q", ErrInvalidDirective, directive)
		}
		return directive, "explicit", nil
	}
}

// statManifest verifies the manifest exists without opening it.
func statManifest(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return fmt.Errorf("stat manifest %s: %w", path, err)
	}
	return nil
}

// lockManifest takes an advisory lock next to the manifest so two
// invocations cannot interleave their read-compute-write sequences. The
// lock is non-blocking: a held lock fails the whole operation.
func lockManifest(path string) (func(), error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("cannot acquire manifest lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrManifestLocked, lock.Path())
	}
	return func() { _ = lock.Unlock() }, nil
}
