package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hypermedia-record-api/internal/record"
	repo "hypermedia-record-api/internal/record/repository"
)

func (s *implStore) collectionDir(collection string) string {
	return filepath.Join(s.dir, collection)
}

func (s *implStore) recordPath(collection, id string) string {
	return filepath.Join(s.dir, collection, id)
}

func (s *implStore) title(collection string) string {
	return fmt.Sprintf("RecordStore: [%s]", collection)
}

// CreateCollection makes the collection directory. An existing directory is
// fine; anything else (permissions, medium) is a storage fault.
func (s *implStore) CreateCollection(ctx context.Context, collection string) error {
	if err := os.MkdirAll(s.collectionDir(collection), 0o755); err != nil {
		return record.StorageFault(s.title(collection), "error creating collection", err.Error())
	}
	return nil
}

// List returns every record in storage-native (directory) order. An
// unreadable or missing collection reads as empty, never as an error.
func (s *implStore) List(ctx context.Context, opt repo.ListOptions) ([]record.Record, error) {
	entries, err := os.ReadDir(s.collectionDir(opt.Collection))
	if err != nil {
		return []record.Record{}, nil
	}

	coll := []record.Record{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		item, err := s.readRecord(opt.Collection, entry.Name())
		if err != nil {
			s.l.Warnf(ctx, "file store: skipping unreadable record %s/%s: %v", opt.Collection, entry.Name(), err)
			continue
		}
		coll = append(coll, item.Project(opt.Fields))
	}
	return coll, nil
}

// Filter lists and keeps records passing the containment test for every
// active filter key.
func (s *implStore) Filter(ctx context.Context, opt repo.FilterOptions) ([]record.Record, error) {
	all, err := s.List(ctx, repo.ListOptions{Collection: opt.Collection})
	if err != nil {
		return nil, err
	}
	coll := []record.Record{}
	for _, item := range all {
		if repo.MatchesFilter(item, opt.Filter) {
			coll = append(coll, item.Project(opt.Fields))
		}
	}
	return coll, nil
}

// Get reads exactly one record by id.
func (s *implStore) Get(ctx context.Context, opt repo.GetOptions) (record.Record, error) {
	item, err := s.readRecord(opt.Collection, opt.ID)
	if err != nil {
		p := record.NotFound(s.title(opt.Collection), fmt.Sprintf("Not Found [%s]", opt.ID))
		p.Debug = err.Error()
		return nil, p
	}
	return item.Project(opt.Fields), nil
}

// Add assigns id and timestamps, rejects on conflict, persists, and returns
// the read-back record.
func (s *implStore) Add(ctx context.Context, opt repo.AddOptions) (record.Record, error) {
	mu := s.lock(opt.Collection)
	mu.Lock()
	defer mu.Unlock()

	item := opt.Item.Clone()
	if opt.ID != "" {
		item[record.FieldID] = opt.ID
	} else {
		item[record.FieldID] = repo.MakeID()
	}
	now := repo.Timestamp()
	item[record.FieldDateCreated] = now
	item[record.FieldDateUpdated] = now

	path := s.recordPath(opt.Collection, item[record.FieldID])
	if _, err := os.Stat(path); err == nil {
		return nil, record.Conflict(s.title(opt.Collection), "Record already exists")
	}

	if err := s.writeRecord(path, item); err != nil {
		return nil, record.StorageFault(s.title(opt.Collection), "Unable to add record", err.Error())
	}
	return s.Get(ctx, repo.GetOptions{Collection: opt.Collection, ID: item[record.FieldID]})
}

// Update replaces the record wholesale with the supplied item (no field
// merge), refreshing dateUpdated. dateCreated is system-managed and carried
// forward from the stored record when the item omits it.
func (s *implStore) Update(ctx context.Context, opt repo.UpdateOptions) (record.Record, error) {
	mu := s.lock(opt.Collection)
	mu.Lock()
	defer mu.Unlock()

	current, err := s.Get(ctx, repo.GetOptions{Collection: opt.Collection, ID: opt.ID})
	if err != nil {
		return nil, err
	}

	item := opt.Item.Clone()
	item[record.FieldID] = opt.ID
	if item[record.FieldDateCreated] == "" {
		item[record.FieldDateCreated] = current[record.FieldDateCreated]
	}
	item[record.FieldDateUpdated] = repo.Timestamp()

	if err := s.writeRecord(s.recordPath(opt.Collection, opt.ID), item); err != nil {
		return nil, record.StorageFault(s.title(opt.Collection), "Unable to update record", err.Error())
	}
	return s.Get(ctx, repo.GetOptions{Collection: opt.Collection, ID: opt.ID})
}

// Remove deletes the record and returns the refreshed list either way.
// Deletion failure is logged, not surfaced.
func (s *implStore) Remove(ctx context.Context, opt repo.RemoveOptions) ([]record.Record, error) {
	mu := s.lock(opt.Collection)
	mu.Lock()
	if err := os.Remove(s.recordPath(opt.Collection, opt.ID)); err != nil {
		s.l.Warnf(ctx, "file store: remove %s/%s: %v", opt.Collection, opt.ID, err)
	}
	mu.Unlock()

	return s.List(ctx, repo.ListOptions{Collection: opt.Collection})
}

func (s *implStore) readRecord(collection, id string) (record.Record, error) {
	data, err := os.ReadFile(s.recordPath(collection, id))
	if err != nil {
		return nil, err
	}
	var item record.Record
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *implStore) writeRecord(path string, item record.Record) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
