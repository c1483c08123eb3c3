package buildinfo

import "runtime/debug"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title and log line.
//
// Without -ldflags it falls back to the VCS revision the Go toolchain stamps
// into the binary.
func Short() string {
	return short(Version, Commit, vcsRevision())
}

func short(version, commit, revision string) string {
	if version != "" && version != "dev" {
		return version
	}
	if commit != "" && commit != "unknown" {
		return commit
	}
	if revision != "" {
		if len(revision) > 12 {
			revision = revision[:12]
		}
		return revision
	}
	return "dev"
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
