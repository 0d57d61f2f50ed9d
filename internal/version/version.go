// Package version provides build information for the snesgo SNES emulator.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

var (
	// These are set at build time via -ldflags.
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// BuildInfo is the subset of build metadata snesgo's CLI actually surfaces;
// unlike a general-purpose build-info reporter this drops anything the CLI
// has no surface for (a build user, a CGO flag) rather than carrying fields
// nothing ever reads.
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
	Arch      string
}

// GetBuildInfo returns detailed build information, falling back to the Go
// toolchain's embedded VCS stamp when no -ldflags were supplied.
func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS,
		Arch:      runtime.GOARCH,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "unknown" {
					info.GitCommit = setting.Value
				}
			case "vcs.time":
				if info.BuildTime == "unknown" {
					info.BuildTime = setting.Value
				}
			}
		}
	}

	return info
}

// GetVersion returns a short version string, falling back to a commit-based
// dev label when no release version was baked in.
func GetVersion() string {
	if Version == "dev" {
		info := GetBuildInfo()
		if info.GitCommit != "unknown" && len(info.GitCommit) >= 7 {
			return fmt.Sprintf("dev-%s", info.GitCommit[:7])
		}
	}
	return Version
}

// GetDetailedVersion returns a one-line human-readable build summary, the
// way the CLI's "snesgo version" subcommand presents it.
func GetDetailedVersion() string {
	info := GetBuildInfo()

	s := fmt.Sprintf("snesgo version %s", info.Version)
	if info.GitCommit != "unknown" {
		if len(info.GitCommit) >= 7 {
			s += fmt.Sprintf(" (commit %s)", info.GitCommit[:7])
		} else {
			s += fmt.Sprintf(" (commit %s)", info.GitCommit)
		}
	}
	if info.BuildTime != "unknown" {
		if parsed, err := time.Parse(time.RFC3339, info.BuildTime); err == nil {
			s += fmt.Sprintf(" built on %s", parsed.Format("2006-01-02 15:04:05"))
		} else {
			s += fmt.Sprintf(" built on %s", info.BuildTime)
		}
	}
	s += fmt.Sprintf(" with %s for %s/%s", info.GoVersion, info.Platform, info.Arch)
	return s
}
