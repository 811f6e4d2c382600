package repository

import "hypermedia-record-api/internal/record"

// ListOptions holds parameters for listing a collection.
type ListOptions struct {
	Collection string
	Fields     []string
}

// FilterOptions holds parameters for a filtered list. A filter key with an
// empty value is inactive; unknown keys exclude gracefully, never error.
type FilterOptions struct {
	Collection string
	Filter     map[string]string
	Fields     []string
}

// GetOptions holds parameters for fetching a single record.
type GetOptions struct {
	Collection string
	ID         string
	Fields     []string
}

// AddOptions holds parameters for inserting a record. Empty ID means the
// store generates one.
type AddOptions struct {
	Collection string
	Item       record.Record
	ID         string
}

// UpdateOptions holds parameters for a wholesale record overwrite.
type UpdateOptions struct {
	Collection string
	Item       record.Record
	ID         string
}

// RemoveOptions holds parameters for deleting a record.
type RemoveOptions struct {
	Collection string
	ID         string
}
