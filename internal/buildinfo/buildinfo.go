package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/f4ah6o/meowmi-server/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("%s (commit=%s, date=%s)", Version, Commit, Date)
}
