// Package misc exposes build identity helpers.
package misc

import (
	"runtime/debug"
)

const appName = "cssb"

// GetAppName returns the program name used for logging and temp files.
func GetAppName() string {
	return appName
}

// GetVersion returns the module version recorded in build info.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) != 0 {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns the VCS revision recorded in build info.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
