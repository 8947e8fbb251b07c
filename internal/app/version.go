package app

// Version is the cliform release version. Overridden at build time via
// -ldflags "-X github.com/cliform-tools/cli/internal/app.Version=...".
var Version = "0.3.0-dev"
