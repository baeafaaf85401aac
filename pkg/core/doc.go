// Package core defines the shared language of the wildlog service.
//
// This package contains:
//   - Domain entities (Sighting, SightingInput)
//   - The error taxonomy surfaced to clients (FormatError, ValidationError,
//     NotFoundError, StorageError)
//   - The Store interface implemented by the persistence layer
//   - Connection configuration (AdapterConfig) and dialect data
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
