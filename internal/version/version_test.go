package version

import (
	"runtime/debug"
	"testing"
)

func TestString(t *testing.T) {
	originalVersion, originalRead := Version, readBuildInfo
	defer func() { Version, readBuildInfo = originalVersion, originalRead }()

	testCases := []struct {
		name      string
		version   string
		buildInfo *debug.BuildInfo
		expected  string
	}{
		{name: "Linker version", version: "v0.3.0", expected: "v0.3.0"},
		{name: "Linker version without prefix", version: "0.3.0", expected: "v0.3.0"},
		{
			name:      "Module version",
			buildInfo: &debug.BuildInfo{Main: debug.Module{Version: "v0.2.1"}},
			expected:  "v0.2.1",
		},
		{
			name:      "Development build",
			buildInfo: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			expected:  "dev",
		},
		{name: "No build info", expected: "dev"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			Version = tc.version
			readBuildInfo = func() (*debug.BuildInfo, bool) {
				return tc.buildInfo, tc.buildInfo != nil
			}
			if got := String(); got != tc.expected {
				t.Errorf("String() = %q, want %q", got, tc.expected)
			}
		})
	}
}
