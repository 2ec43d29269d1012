package app

import "fmt"

// Version, Commit and BuildTime are set via ldflags:
//
//	go build -ldflags "-X github.com/heartmarshall/yuhuh-backend/internal/app.Version=1.0.0 \
//	  -X github.com/heartmarshall/yuhuh-backend/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version reported in startup logs and by /health.
// Local builds without ldflags report just the version.
func BuildVersion() string {
	if Commit == "unknown" && BuildTime == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
