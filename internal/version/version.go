package version

// Version is the tool version, overridable at build time via
// -ldflags "-X seqscan/internal/version.Version=...".
var Version = "0.1.0"
