// Package build exposes version information set at link time.
package build

// Version is the fareroute release, set with
// -ldflags "-X github.com/katalvlaran/fareroute/internal/build.Version=v1.2.3".
var Version = "dev"
