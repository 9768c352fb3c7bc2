package app

import "fmt"

// Build metadata, stamped with
// -ldflags "-X github.com/heartmarshall/yelpcamp/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version line logged at startup.
func BuildVersion() string {
	return fmt.Sprintf("yelpcamp %s (%s, %s)", Version, Commit, BuildTime)
}
