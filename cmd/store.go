package cmd

import (
	"github.com/deploymenttheory/go-xattr/internal/common/fsutil"
	"github.com/deploymenttheory/go-xattr/internal/common/plistutil"
	"github.com/deploymenttheory/go-xattr/internal/config"
	"github.com/deploymenttheory/go-xattr/internal/logger"
	"github.com/deploymenttheory/go-xattr/pkg/extattr"
	"github.com/deploymenttheory/go-xattr/pkg/metadata"
)

// openStore builds an attribute store for a command line target using the
// configured backend
func openStore(target string) (*extattr.Store, error) {
	path, err := fsutil.ResolveTarget(target)
	if err != nil {
		return nil, err
	}

	backend, err := config.NewBackend()
	if err != nil {
		return nil, err
	}
	if mem, ok := backend.(*extattr.MemoryBackend); ok {
		mem.Touch(path)
	}

	logger.LogDebug("Opened attribute store", logger.Fields{
		"path":    path,
		"backend": config.Instance.Backend.Kind,
	})
	return extattr.NewStore(path, extattr.WithBackend(backend)), nil
}

func openMetadataStore(target string) (*metadata.Store, error) {
	attrs, err := openStore(target)
	if err != nil {
		return nil, err
	}
	return metadata.FromAttributes(attrs), nil
}

func outputFormat() plistutil.Format {
	return plistutil.StringToFormat(config.Instance.Output.Format)
}
