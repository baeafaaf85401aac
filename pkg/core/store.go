package core

import "context"

// Store defines the persistence operations over the sightings table.
// Every method issues a single statement; implementations report driver
// failures as *StorageError.
type Store interface {
	// Insert adds a row and returns the store-assigned id.
	Insert(ctx context.Context, in SightingInput) (int64, error)

	// All returns every row in store-native order.
	All(ctx context.Context) ([]*Sighting, error)

	// FindBySpecies returns rows whose species matches case-insensitively.
	FindBySpecies(ctx context.Context, species string) ([]*Sighting, error)

	// Exists reports whether a row with the given id is present.
	Exists(ctx context.Context, id int64) (bool, error)

	// Update overwrites every caller-supplied field of the row.
	Update(ctx context.Context, id int64, in SightingInput) error

	// Delete removes the row.
	Delete(ctx context.Context, id int64) error

	// Ping checks connectivity to the store.
	Ping(ctx context.Context) error
}
