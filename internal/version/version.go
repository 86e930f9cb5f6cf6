package version

import (
	"fmt"
	"strings"
)

// Version is set via ldflags at build time:
// -ldflags "-X github.com/tachibk-converter/tachibk/internal/version.Version=x.y.z"
var Version = ""

// Get returns the build version, or "0.0.1-dev" for development builds.
func Get() (string, error) {
	if Version == "" {
		return "0.0.1-dev", nil
	}
	v := strings.TrimPrefix(Version, "v")
	if base := strings.SplitN(v, "-", 2)[0]; !strings.Contains(base, ".") {
		return "", fmt.Errorf("invalid version format: %s (expected x.y.z)", Version)
	}
	return v, nil
}

// String is Get without the error, for help output.
func String() string {
	v, err := Get()
	if err != nil {
		return Version
	}
	return v
}
