package app

import "fmt"

// Set with -ldflags at build time, e.g.
//
//	go build -ldflags "-X github.com/kadong/kadong-backend/internal/app.Version=1.4.0 -X github.com/kadong/kadong-backend/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version line printed at startup and by kadongctl --version.
// /health reports the bare Version.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime)
}
