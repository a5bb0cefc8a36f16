// Package domain holds sentinel errors shared across layers.
package domain

import "errors"

var (
	// ErrEmptyCatalog signals a catalog source with no entries.
	ErrEmptyCatalog = errors.New("catalog is empty")
	// ErrCatalogUnavailable signals an unreachable external catalog store.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
