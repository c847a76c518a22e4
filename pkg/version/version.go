package version

import (
	"runtime/debug"
	"strings"
)

const placeholderSuffix = "_PLACEHOLDER"

var (
	// These values are injected during build - DO NOT MODIFY
	Version   = "VERSION_PLACEHOLDER"
	CommitSHA = "COMMIT_PLACEHOLDER"
)

// Resolve returns the injected version and commit. Values left as
// placeholders are taken from the module build info when `go install`
// recorded it.
func Resolve() (version, commit string) {
	version, commit = Version, CommitSHA

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit
	}
	return resolveFrom(version, commit, info)
}

func resolveFrom(version, commit string, info *debug.BuildInfo) (string, string) {
	if strings.HasSuffix(version, placeholderSuffix) && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	if strings.HasSuffix(commit, placeholderSuffix) {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				commit = s.Value
			}
		}
	}
	return version, commit
}

func GetVersionInfo() string {
	version, _ := Resolve()
	return "pdfstat " + version
}

func GetDetailedVersionInfo() string {
	version, commit := Resolve()
	return "pdfstat\n" +
		"Version:  " + version + "\n" +
		"Commit:   " + commit + "\n"
}
