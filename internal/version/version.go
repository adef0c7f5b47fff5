package version

// Version is set at build time via -ldflags "-X .../version.Version=...".
var Version = "dev"
