package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/go-redis/redis/v8"

	"hypermedia-record-api/internal/record"
	repo "hypermedia-record-api/internal/record/repository"
)

func recordKey(collection, id string) string {
	return fmt.Sprintf("record:%s:%s", collection, id)
}

func indexKey(collection string) string {
	return fmt.Sprintf("records:%s", collection)
}

func title(collection string) string {
	return fmt.Sprintf("RecordStore: [%s]", collection)
}

// CreateCollection is a no-op for Redis beyond a connectivity check:
// the index set springs into being on first Add.
func (s *implStore) CreateCollection(ctx context.Context, collection string) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return record.StorageFault(title(collection), "error creating collection", err.Error())
	}
	return nil
}

// List returns every record in the collection via the index set. A missing
// collection reads as empty.
func (s *implStore) List(ctx context.Context, opt repo.ListOptions) ([]record.Record, error) {
	ids, err := s.client.SMembers(ctx, indexKey(opt.Collection)).Result()
	if err != nil {
		s.l.Warnf(ctx, "redis store: list %s: %v", opt.Collection, err)
		return []record.Record{}, nil
	}
	if len(ids) == 0 {
		return []record.Record{}, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*goredis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, recordKey(opt.Collection, id))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != goredis.Nil {
		s.l.Warnf(ctx, "redis store: list %s: %v", opt.Collection, err)
		return []record.Record{}, nil
	}

	coll := make([]record.Record, 0, len(ids))
	for _, cmd := range cmds {
		data, err := cmd.Result()
		if err != nil {
			continue
		}
		var item record.Record
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			continue
		}
		coll = append(coll, item.Project(opt.Fields))
	}
	return coll, nil
}

// Filter lists and applies the containment test.
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
	data, err := s.client.Get(ctx, recordKey(opt.Collection, opt.ID)).Result()
	if err != nil {
		p := record.NotFound(title(opt.Collection), fmt.Sprintf("Not Found [%s]", opt.ID))
		p.Debug = err.Error()
		return nil, p
	}
	var item record.Record
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		return nil, record.StorageFault(title(opt.Collection), "corrupt record", err.Error())
	}
	return item.Project(opt.Fields), nil
}

// Add assigns id and timestamps, rejects on conflict, persists record and
// index entry in one pipeline, and returns the read-back record.
func (s *implStore) Add(ctx context.Context, opt repo.AddOptions) (record.Record, error) {
	item := opt.Item.Clone()
	if opt.ID != "" {
		item[record.FieldID] = opt.ID
	} else {
		item[record.FieldID] = repo.MakeID()
	}
	now := repo.Timestamp()
	item[record.FieldDateCreated] = now
	item[record.FieldDateUpdated] = now

	data, err := json.Marshal(item)
	if err != nil {
		return nil, record.StorageFault(title(opt.Collection), "Unable to add record", err.Error())
	}

	key := recordKey(opt.Collection, item[record.FieldID])
	ok, err := s.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, record.StorageFault(title(opt.Collection), "Unable to add record", err.Error())
	}
	if !ok {
		return nil, record.Conflict(title(opt.Collection), "Record already exists")
	}
	if err := s.client.SAdd(ctx, indexKey(opt.Collection), item[record.FieldID]).Err(); err != nil {
		return nil, record.StorageFault(title(opt.Collection), "Unable to add record", err.Error())
	}

	return s.Get(ctx, repo.GetOptions{Collection: opt.Collection, ID: item[record.FieldID]})
}

// Update replaces the record wholesale, carrying dateCreated forward and
// refreshing dateUpdated.
func (s *implStore) Update(ctx context.Context, opt repo.UpdateOptions) (record.Record, error) {
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

	data, err := json.Marshal(item)
	if err != nil {
		return nil, record.StorageFault(title(opt.Collection), "Unable to update record", err.Error())
	}
	if err := s.client.Set(ctx, recordKey(opt.Collection, opt.ID), data, 0).Err(); err != nil {
		return nil, record.StorageFault(title(opt.Collection), "Unable to update record", err.Error())
	}

	return s.Get(ctx, repo.GetOptions{Collection: opt.Collection, ID: opt.ID})
}

// Remove deletes record and index entry, then returns the refreshed list
// whether or not the deletion succeeded.
func (s *implStore) Remove(ctx context.Context, opt repo.RemoveOptions) ([]record.Record, error) {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, recordKey(opt.Collection, opt.ID))
	pipe.SRem(ctx, indexKey(opt.Collection), opt.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		s.l.Warnf(ctx, "redis store: remove %s/%s: %v", opt.Collection, opt.ID, err)
	}

	return s.List(ctx, repo.ListOptions{Collection: opt.Collection})
}
