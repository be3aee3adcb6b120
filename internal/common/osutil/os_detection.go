package osutil

import (
	"os"
	"runtime"
)

// IsMacOS reports whether the host is macOS, where attribute names are used
// unprefixed and per-user data lives under ~/Library
func IsMacOS() bool {
	return runtime.GOOS == "darwin"
}

// IsDevEnvironment checks if the application is running in a development environment
// based on environment variables
func IsDevEnvironment() bool {
	return os.Getenv("GO_XATTR_ENV") == "development" ||
		os.Getenv("GO_XATTR_DEV") == "true" ||
		os.Getenv("DEV") == "true"
}
