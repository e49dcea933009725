package main

import (
	"errors"

	"github.com/matsen/mixology/internal/catalog"
	"github.com/matsen/mixology/internal/config"
	"github.com/matsen/mixology/internal/graph"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (no library, invalid config)
	ExitDataError   = 3 // Data error (malformed dataset, empty catalog)
	ExitNotFound    = 4 // Cocktail not found
	ExitNoPath      = 5 // Cocktails are not connected
)

// exitCodeFor maps an error to its exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, graph.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, graph.ErrNoPath):
		return ExitNoPath
	case errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, config.ErrNotLibrary),
		errors.Is(err, graph.ErrInvalidThreshold),
		errors.Is(err, graph.ErrInvalidCutoff):
		return ExitConfigError
	case errors.Is(err, graph.ErrEmptyCatalog),
		errors.Is(err, graph.ErrDuplicateName),
		errors.Is(err, catalog.ErrEmptyDataset),
		errors.Is(err, catalog.ErrMissingHeader),
		errors.Is(err, catalog.ErrMalformedRow):
		return ExitDataError
	default:
		return ExitError
	}
}
