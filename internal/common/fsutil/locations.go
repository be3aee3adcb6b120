package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/deploymenttheory/go-xattr/internal/common/osutil"
)

// GetConfigDir returns the directory searched for the application config file.
// macOS uses ~/Library/Application Support, other systems $XDG_CONFIG_HOME.
func GetConfigDir(appName string) (string, error) {
	return appDir(appName, "config", "XDG_CONFIG_HOME", ".config")
}

// GetDataDir returns the directory holding application state such as the
// sidecar attribute store.
func GetDataDir(appName string) (string, error) {
	return appDir(appName, "data", "XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func appDir(appName, devDir, xdgEnv, xdgFallback string) (string, error) {
	// In development mode everything stays in the working directory
	if osutil.IsDevEnvironment() {
		return devDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}

	if osutil.IsMacOS() {
		return filepath.Join(home, "Library", "Application Support", appName), nil
	}

	base := os.Getenv(xdgEnv)
	if base == "" {
		base = filepath.Join(home, xdgFallback)
	}
	return filepath.Join(base, appName), nil
}
