package main

var (
	// Version is set at build time with -ldflags.
	Version string
	// GitCommit is set at build time with -ldflags.
	GitCommit string
)

// BuildVersion returns the release version, or "dev" for local builds.
func BuildVersion() string {
	if len(Version) == 0 {
		return "dev"
	}
	return Version
}
