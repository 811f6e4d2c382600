package usecase

import (
	"context"

	"hypermedia-record-api/internal/record"
	"hypermedia-record-api/internal/record/repository"
)

// Create validates the body against the schema and issues an add action.
// An absent body fails fast without touching the store.
func (uc *implUseCase) Create(ctx context.Context, body record.Record) ([]record.Record, error) {
	if len(body) == 0 {
		return nil, record.BadRequest("Invalid request", record.ErrInvalidBody.Error())
	}

	item, err := uc.validate(body)
	if err != nil {
		uc.l.Debugf(ctx, "uc.Create validate: %v", err)
		return nil, err
	}

	return repository.Execute(ctx, uc.store, record.ActionRequest{
		Collection: uc.collection,
		Action:     record.ActionAdd,
		Item:       item,
	})
}
