package main

import (
	"fmt"
	"os"

	"github.com/deploymenttheory/go-xattr/cmd"
	"github.com/deploymenttheory/go-xattr/internal/config"
	"github.com/deploymenttheory/go-xattr/internal/logger"
)

func main() {
	// Get app configuration file from environment if specified
	configFile := os.Getenv("GO_XATTR_CONFIG")

	if err := config.Initialize(configFile); err != nil {
		// Without configuration there is no backend to work with
		fmt.Fprintf(os.Stderr, "Error initializing configuration: %v\n", err)
		os.Exit(1)
	}

	err := cmd.Execute()

	// Ensure logs are flushed before exit
	logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}
