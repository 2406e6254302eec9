// Package buildinfo carries version identifiers injected with -ldflags:
//
//	go build -ldflags "-X chromaspiral/internal/buildinfo.Version=v1.2.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for window titles and the HUD.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	default:
		return "dev"
	}
}

// Long returns the version line printed by the CLI.
func Long() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
