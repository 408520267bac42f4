// Package version reports the build version of git-fuzzy.
package version

import (
	"runtime/debug"
	"strings"
)

// Version is set at build time with
// -ldflags "-X github.com/bral/git-fuzzy-go/internal/version.Version=v1.2.3".
var Version = ""

const develVersion = "(devel)"

// readBuildInfo is swapped out in tests.
var readBuildInfo = debug.ReadBuildInfo

// String returns the version to display: the linker-provided Version, else
// the module version recorded by `go install`, else "dev".
func String() string {
	if Version != "" {
		return normalize(Version)
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != develVersion {
		return normalize(info.Main.Version)
	}
	return "dev"
}

func normalize(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && v[0] >= '0' && v[0] <= '9' {
		return "v" + v
	}
	return v
}
