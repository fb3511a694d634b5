package bump

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// versionLinePattern captures the three parts of a manifest version line:
// everything up to and including the opening quote, the quoted value, and
// the remainder of the line. Only double-quoted values are recognized.
var versionLinePattern = regexp.MustCompile(`^(\s*version\s*=\s*")([^"]*)(".*)$`)

// tablePattern matches a TOML table header such as [project] or
// [[tool.poetry.source]].
var tablePattern = regexp.MustCompile(`^\s*\[\[?([^\]]+)\]\]?\s*(?:#.*)?$`)

// versionTables are the TOML tables whose "version" key names the project
// version. A version line inside any other table (dependency groups, build
// system settings, and the like) is never selected.
var versionTables = map[string]bool{
	"":            true,
	"project":     true,
	"tool.poetry": true,
}

// VersionLine describes the one manifest line holding the project version.
// Prefix and Suffix preserve the exact bytes around the quoted value so a
// rewrite can substitute the version without disturbing anything else on
// the line.
type VersionLine struct {
	Line   int    // 1-based line number within the manifest
	Prefix string // bytes up to and including the opening quote
	Value  string // the quoted version string
	Suffix string // bytes from the closing quote to the end of the line
}

// FindManifestVersion locates the project version line in the manifest at
// path. The manifest must be valid TOML, and the located line must agree
// with the version the document actually declares; any divergence is
// reported as ErrUnparsableManifest.
func FindManifestVersion(path string) (*VersionLine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	declared, err := declaredVersion(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnparsableManifest, path, err)
	}

	loc := locateVersionLine(string(data))
	if loc == nil {
		return nil, fmt.Errorf("%w: no version line found in %s", ErrUnparsableManifest, path)
	}
	if declared != "" && declared != loc.Value {
		return nil, fmt.Errorf("%w: version line %q disagrees with declared version %q",
			ErrUnparsableManifest, loc.Value, declared)
	}
	return loc, nil
}

// declaredVersion parses the manifest as TOML and returns the version the
// document declares, checking [project] first, then [tool.poetry], then a
// bare top-level key. An empty string means no version is declared in any
// of those tables.
func declaredVersion(data []byte) (string, error) {
	var doc struct {
		Version string `toml:"version"`
		Project struct {
			Version string `toml:"version"`
		} `toml:"project"`
		Tool struct {
			Poetry struct {
				Version string `toml:"version"`
			} `toml:"poetry"`
		} `toml:"tool"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return "", err
	}
	if doc.Project.Version != "" {
		return doc.Project.Version, nil
	}
	if doc.Tool.Poetry.Version != "" {
		return doc.Tool.Poetry.Version, nil
	}
	return doc.Version, nil
}

// locateVersionLine scans content line by line, tracking the enclosing TOML
// table, and returns the first version line inside a recognized table.
func locateVersionLine(content string) *VersionLine {
	table := ""
	for i, line := range strings.Split(content, "\n") {
		if m := tablePattern.FindStringSubmatch(line); m != nil {
			table = strings.TrimSpace(m[1])
			continue
		}
		if !versionTables[table] {
			continue
		}
		if m := versionLinePattern.FindStringSubmatch(line); m != nil {
			return &VersionLine{
				Line:   i + 1,
				Prefix: m[1],
				Value:  m[2],
				Suffix: m[3],
			}
		}
	}
	return nil
}

// ReplaceManifestVersion rewrites the located version line with newVersion,
// leaving every other byte of the manifest untouched. The line is verified
// against the location before writing so a manifest modified after
// FindManifestVersion is never clobbered.
func ReplaceManifestVersion(path string, loc *VersionLine, newVersion string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manifest %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	if loc.Line < 1 || loc.Line > len(lines) {
		return fmt.Errorf("%w: version line %d out of range", ErrUnparsableManifest, loc.Line)
	}
	if lines[loc.Line-1] != loc.Prefix+loc.Value+loc.Suffix {
		return fmt.Errorf("%w: version line %d changed since it was located", ErrUnparsableManifest, loc.Line)
	}

	lines[loc.Line-1] = loc.Prefix + newVersion + loc.Suffix
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
