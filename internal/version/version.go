// Package version holds the build version, overridable at link time:
//
//	go build -ldflags "-X strobemers/internal/version.Version=v1.2.3" ./cmd/strobemers
package version

// Version is the release string reported by --version.
var Version = "dev"
