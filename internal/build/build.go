// Package build holds build-time information.
package build

// Version is the deplist version, set with -ldflags "-X go.trai.ch/deplist/internal/build.Version=...".
var Version = "dev"
