package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/consolecss/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/consolecss/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/consolecss/internal/version.Date={{.Date}}
)

// String formats the build information for the version command.
func String(app string) string {
	return fmt.Sprintf("%s version %s\n  commit: %s\n  built:  %s\n", app, Version, Commit, Date)
}
