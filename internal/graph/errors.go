package graph

import (
	"errors"
	"fmt"
)

// Errors returned by graph construction and queries.
var (
	ErrNotFound         = errors.New("cocktail not found")
	ErrNoPath           = errors.New("no path between cocktails")
	ErrDuplicateName    = errors.New("duplicate cocktail name")
	ErrEmptyCatalog     = errors.New("catalog has no cocktails")
	ErrInvalidThreshold = errors.New("threshold must be at least 1")
	ErrInvalidCutoff    = errors.New("fuzzy cutoff must be in (0, 1]")
)

// NotFoundError names the cocktail that was not in the graph.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cocktail not found: %q", e.Name)
}

// Unwrap lets errors.Is match ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NoPathError reports two known cocktails with no connecting chain.
type NoPathError struct {
	From, To string
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("no path between %q and %q", e.From, e.To)
}

// Unwrap lets errors.Is match ErrNoPath.
func (e *NoPathError) Unwrap() error {
	return ErrNoPath
}
