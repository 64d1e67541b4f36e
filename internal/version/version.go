package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/artus40/djangoapp-ynh/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/artus40/djangoapp-ynh/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/artus40/djangoapp-ynh/internal/version.Date={{.Date}}
)

// String formats the build information for --version
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
