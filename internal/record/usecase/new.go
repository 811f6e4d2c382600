package usecase

import (
	"hypermedia-record-api/internal/record"
	"hypermedia-record-api/internal/record/repository"
	"hypermedia-record-api/pkg/log"
)

// implUseCase is the private implementation of record.UseCase.
type implUseCase struct {
	store      repository.Store
	schema     record.Schema
	collection string
	l          log.Logger
}

// New creates the action dispatcher for one configured collection.
func New(store repository.Store, schema record.Schema, collection string, l log.Logger) *implUseCase {
	if store == nil {
		panic("record/usecase: store is required")
	}
	if collection == "" {
		panic("record/usecase: collection is required")
	}
	return &implUseCase{
		store:      store,
		schema:     schema,
		collection: collection,
		l:          l,
	}
}
