// Package buildinfo carries the version metadata injected at link time.
package buildinfo

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Info describes the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Normalized returns the version in canonical semver form ("v" stripped,
// missing minor/patch filled in). Non-semver versions such as "dev" are
// returned unchanged.
func (i Info) Normalized() string {
	v, err := parseSemver(i.Version)
	if err != nil {
		return i.Version
	}
	return v.String()
}

// IsRelease reports whether the version is a semver release without a
// prerelease suffix.
func (i Info) IsRelease() bool {
	v, err := parseSemver(i.Version)
	return err == nil && v.Prerelease() == ""
}

// String formats the info for "clarinet version".
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", i.Normalized(), i.Commit, i.Date)
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
