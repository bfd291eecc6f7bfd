package version

import "runtime/debug"

var (
	// Version is the release version.
	Version = "0.0.0-dev"

	// Revision is the source revision the binary was built from.
	Revision = ""
)

func init() {
	if Revision != "" {
		return
	}

	Revision = "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Revision = s.Value
		}
	}
}

// String returns the version and revision as one string.
func String() string {
	return Version + "+" + Revision
}
