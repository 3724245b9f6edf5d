// Package version exposes the build version of wxlookup.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// fallbackVersion is reported when the build version is unset or not semver.
const fallbackVersion = "0.0.0-dev"

// version is set at build time with
// -ldflags "-X github.com/rshade/wxlookup/pkg/version.version=1.2.3".
//
//nolint:gochecknoglobals // Set via ldflags.
var version = ""

// GetVersion returns the normalized build version, or "0.0.0-dev".
func GetVersion() string {
	return normalize(version)
}

func normalize(raw string) string {
	if raw == "" {
		return fallbackVersion
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return fallbackVersion
	}
	return v.String()
}
