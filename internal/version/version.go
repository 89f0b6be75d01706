// Package version exposes build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/jmylchreest/tincture/internal/version.Version=1.2.0 \
//	  -X github.com/jmylchreest/tincture/internal/version.Commit=$(git rev-parse HEAD) \
//	  -X github.com/jmylchreest/tincture/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import (
	"fmt"
	"runtime"
)

const unknown = "unknown"

// Build metadata, overridden at link time.
var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// Info is the build metadata of the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo collects the build metadata.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line description for `tincture version`.
func String() string {
	info := GetInfo()
	if info.Commit == unknown || info.Date == unknown {
		return fmt.Sprintf("tincture version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("tincture version %s (commit: %s, built: %s, %s, %s)",
		info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
}

// Short returns just the version, for --version.
func Short() string {
	return Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
