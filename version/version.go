package version

var (
	// Version is the release version (set via -ldflags).
	Version = "2.0"
	// Commit is the git commit hash (set via -ldflags).
	Commit = ""
	// BuildTime is the build timestamp (set via -ldflags).
	BuildTime = ""
)

// String describes the build for --version output.
func String() string {
	s := Version
	if Commit != "" {
		s += " (" + shortCommit(Commit) + ")"
	}
	if BuildTime != "" {
		s += ", built at " + BuildTime
	}
	return s
}

func shortCommit(commit string) string {
	if len(commit) <= 12 {
		return commit
	}
	return commit[:12]
}
