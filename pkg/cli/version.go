package cli

// Package-level version information
var (
	version = "dev"
)

// SetVersionInfo sets the version reported by --version
func SetVersionInfo(v string) {
	version = v
}

// GetVersion returns the current version
func GetVersion() string {
	return version
}
