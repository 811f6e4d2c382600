package cached

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"hypermedia-record-api/internal/record"
	repo "hypermedia-record-api/internal/record/repository"
	"hypermedia-record-api/pkg/log"
)

type implStore struct {
	inner repo.Store
	cache *lru.Cache[string, record.Record]
	l     log.Logger
}

// New wraps a Store with an LRU read-through cache over single-record Gets.
// Mutations invalidate the touched id; list and filter always pass through
// so projections and freshly added records stay correct.
func New(inner repo.Store, size int, l log.Logger) repo.Store {
	if inner == nil {
		panic("record/repository/cached: inner store is required")
	}
	cache, err := lru.New[string, record.Record](size)
	if err != nil {
		panic("record/repository/cached: " + err.Error())
	}
	return &implStore{inner: inner, cache: cache, l: l}
}

func cacheKey(collection, id string) string {
	return collection + "/" + id
}

func (s *implStore) CreateCollection(ctx context.Context, collection string) error {
	return s.inner.CreateCollection(ctx, collection)
}

func (s *implStore) List(ctx context.Context, opt repo.ListOptions) ([]record.Record, error) {
	return s.inner.List(ctx, opt)
}

func (s *implStore) Filter(ctx context.Context, opt repo.FilterOptions) ([]record.Record, error) {
	return s.inner.Filter(ctx, opt)
}

// Get serves full records from cache; projected reads narrow the cached copy.
func (s *implStore) Get(ctx context.Context, opt repo.GetOptions) (record.Record, error) {
	key := cacheKey(opt.Collection, opt.ID)
	if item, ok := s.cache.Get(key); ok {
		return item.Project(opt.Fields), nil
	}

	item, err := s.inner.Get(ctx, repo.GetOptions{Collection: opt.Collection, ID: opt.ID})
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, item)
	return item.Project(opt.Fields), nil
}

func (s *implStore) Add(ctx context.Context, opt repo.AddOptions) (record.Record, error) {
	item, err := s.inner.Add(ctx, opt)
	if err != nil {
		return nil, err
	}
	s.cache.Add(cacheKey(opt.Collection, item[record.FieldID]), item)
	return item, nil
}

func (s *implStore) Update(ctx context.Context, opt repo.UpdateOptions) (record.Record, error) {
	s.cache.Remove(cacheKey(opt.Collection, opt.ID))
	item, err := s.inner.Update(ctx, opt)
	if err != nil {
		return nil, err
	}
	s.cache.Add(cacheKey(opt.Collection, opt.ID), item)
	return item, nil
}

func (s *implStore) Remove(ctx context.Context, opt repo.RemoveOptions) ([]record.Record, error) {
	s.cache.Remove(cacheKey(opt.Collection, opt.ID))
	return s.inner.Remove(ctx, opt)
}
