// Package version reports the licensedesk build version.
package version

import "runtime/debug"

// version is set at build time:
//
//	go build -ldflags "-X github.com/rshade/licensedesk/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Set via ldflags.
var version = ""

const devVersion = "dev"

// GetVersion returns the ldflags version, then the module version from build
// info, then "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return devVersion
}
