package version

// Version is overridden at build time with -ldflags "-X seqcheck/internal/version.Version=...".
var Version = "dev"
