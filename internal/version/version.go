// Package version provides the version of the tunalyze tools.
package version

import "fmt"

var (
	// Major is the major version of the tunalyze tools.
	Major = 0
	// Minor is the minor version of the tunalyze tools.
	Minor = 1
	// Patch is the patch version of the tunalyze tools.
	Patch = 20
)

// Semantic returns the semantic version of the tunalyze tools.
func Semantic() string {
	return fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
}
