// Package storage provides the persisted cache behind the panel's data
// store. The cache is exactly that, a cache: the in-memory store is the
// source of truth for the running session, and every entry here degrades to
// a default when missing or corrupt.
package storage

import (
	"context"
	"errors"
)

// Keys for the persisted entries. The five data entries hold serialized
// JSON; the three settings entries are plain strings.
const (
	KeyToken    = "sigridToken"
	KeyCustomer = "sigridCustomer"
	KeySystem   = "sigridSystem"

	KeySecurityFindings      = "sigridSecurityFindings"
	KeyOshDependencies       = "sigridOshDependencies"
	KeyOshMetadata           = "sigridOshMetadata"
	KeyRefactoringCandidates = "sigridRefactoringCandidates"
	KeyAnalysisDate          = "sigridAnalysisDate"
)

// Common errors returned by cache operations.
var (
	// ErrNotFound is returned when a key has no stored value.
	ErrNotFound = errors.New("storage: key not found")

	// ErrInvalidKey is returned when a key is empty.
	ErrInvalidKey = errors.New("storage: invalid key")

	// ErrStorageFailed is returned when the underlying backend fails.
	ErrStorageFailed = errors.New("storage: operation failed")
)

// Store is a flat string-valued key-value cache. Two backends exist: a JSON
// file next to the extension (the default) and Redis for installations
// sharing one cache across workstations.
type Store interface {
	// Get retrieves the value for a key. Returns ErrNotFound when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value under a key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
