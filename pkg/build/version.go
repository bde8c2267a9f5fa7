// Package build carries version information stamped in at link time with
// -ldflags "-X github.com/storacha/daclient/pkg/build.Version=...".
package build

var (
	Version = "v0.0.0-dev"
	Commit  = "unknown"
	Date    = "unknown"
	BuiltBy = "unknown"
)

// UserAgent identifies this build in outgoing HTTP requests.
func UserAgent() string {
	return "daclient/" + Version
}
