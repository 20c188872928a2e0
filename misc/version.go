// Package misc provides information about program build.
package misc

import (
	"runtime/debug"
)

var (
	appName = "yttc"
	version = "development"
	gitHash = "unknown"
)

// GetAppName returns base name of the program.
func GetAppName() string {
	return appName
}

// GetVersion returns program version set during the build.
func GetVersion() string {
	if version == "development" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			return bi.Main.Version
		}
	}
	return version
}

// GetGitHash returns hash of the git commit the program was built from.
func GetGitHash() string {
	if gitHash == "unknown" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					return s.Value
				}
			}
		}
	}
	return gitHash
}
