package usecase

import (
	"context"

	"hypermedia-record-api/internal/record"
	"hypermedia-record-api/internal/record/repository"
)

// List has no preconditions.
func (uc *implUseCase) List(ctx context.Context) ([]record.Record, error) {
	return repository.Execute(ctx, uc.store, record.ActionRequest{
		Collection: uc.collection,
		Action:     record.ActionList,
	})
}

// Filter requires a non-empty query and passes it through raw: the store
// owns the containment semantics.
func (uc *implUseCase) Filter(ctx context.Context, query map[string]string) ([]record.Record, error) {
	if len(query) == 0 {
		return nil, record.BadRequest("Invalid request", record.ErrInvalidQuery.Error())
	}

	return repository.Execute(ctx, uc.store, record.ActionRequest{
		Collection: uc.collection,
		Action:     record.ActionFilter,
		Filter:     query,
	})
}
