// internal/version/version.go
package version

// Version is the toolkit release string, overridable at build time via
// -ldflags "-X fqgen/internal/version.Version=...".
var Version = "0.3.0"
