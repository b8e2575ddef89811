// Package misc holds small helpers shared by every other package: program
// identity and build information.
package misc

import "runtime/debug"

const appName = "scribe"

// set by the linker on release builds
var (
	version = "development"
	gitHash = ""
)

// GetAppName returns short program name used for logs, temporary files and reports.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns VCS revision recorded in the build, falling back to build
// info when the linker did not set it.
func GetGitHash() string {
	if len(gitHash) != 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
