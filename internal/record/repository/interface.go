package repository

import (
	"context"

	"hypermedia-record-api/internal/record"
)

// Store is the collection-scoped CRUD contract every backend implements.
// Backends persist and read by (collection, id) and apply a simple
// containment filter — nothing more.
type Store interface {
	// CreateCollection prepares the storage medium for a collection.
	// Creating an existing collection is best-effort, not an error.
	CreateCollection(ctx context.Context, collection string) error

	// List returns every record in the collection in storage-native order.
	// An unknown or unreadable collection yields an empty slice, not an error.
	List(ctx context.Context, opt ListOptions) ([]record.Record, error)

	// Filter lists then keeps records matching every active filter key
	// (case-insensitive substring containment, AND across keys).
	Filter(ctx context.Context, opt FilterOptions) ([]record.Record, error)

	// Get reads exactly one record by id. Missing records surface as a
	// not-found *record.Problem.
	Get(ctx context.Context, opt GetOptions) (record.Record, error)

	// Add assigns id and timestamps, rejects on id conflict, persists,
	// and returns the freshly read-back record.
	Add(ctx context.Context, opt AddOptions) (record.Record, error)

	// Update replaces the record wholesale (no field merge), refreshes
	// dateUpdated, and returns the read-back record.
	Update(ctx context.Context, opt UpdateOptions) (record.Record, error)

	// Remove deletes the record and returns the refreshed collection list
	// whether or not the deletion succeeded.
	Remove(ctx context.Context, opt RemoveOptions) ([]record.Record, error)
}
