package version

// Version is overridden at build time with -ldflags "-X warnmap/internal/version.Version=...".
var Version = "dev"
