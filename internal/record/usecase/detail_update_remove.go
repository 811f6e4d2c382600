package usecase

import (
	"context"

	"hypermedia-record-api/internal/record"
	"hypermedia-record-api/internal/record/repository"
)

// Read requires a path id and issues an item action.
func (uc *implUseCase) Read(ctx context.Context, id string) ([]record.Record, error) {
	if id == "" {
		return nil, record.BadRequest("Invalid request", record.ErrMissingID.Error())
	}

	return repository.Execute(ctx, uc.store, record.ActionRequest{
		Collection: uc.collection,
		Action:     record.ActionItem,
		ID:         id,
	})
}

// Update requires both id and body, validates the complete desired record
// (this is a wholesale overwrite, not a patch), and issues an update action.
func (uc *implUseCase) Update(ctx context.Context, id string, body record.Record) ([]record.Record, error) {
	if id == "" || len(body) == 0 {
		return nil, record.BadRequest("Invalid request", "missing id and/or body")
	}

	item, err := uc.validate(body)
	if err != nil {
		uc.l.Debugf(ctx, "uc.Update validate: %v", err)
		return nil, err
	}

	return repository.Execute(ctx, uc.store, record.ActionRequest{
		Collection: uc.collection,
		Action:     record.ActionUpdate,
		ID:         id,
		Item:       item,
	})
}

// Status is the partial status change intent. Its policy is its own: the
// body must carry a legal enumerated status, which is merged into the
// freshly read record before the update action.
func (uc *implUseCase) Status(ctx context.Context, id string, body record.Record) ([]record.Record, error) {
	if id == "" || len(body) == 0 {
		return nil, record.BadRequest("Invalid request", "missing id and/or body")
	}

	status := body[record.FieldStatus]
	if status == "" {
		return nil, record.BadRequest("Invalid record", "missing required field [status]")
	}
	if err := uc.checkEnums(record.Record{record.FieldStatus: status}); err != nil {
		return nil, err
	}

	current, err := repository.Execute(ctx, uc.store, record.ActionRequest{
		Collection: uc.collection,
		Action:     record.ActionItem,
		ID:         id,
	})
	if err != nil {
		return nil, err
	}

	item := uc.setProps(current[0])
	item[record.FieldStatus] = status

	return repository.Execute(ctx, uc.store, record.ActionRequest{
		Collection: uc.collection,
		Action:     record.ActionUpdate,
		ID:         id,
		Item:       item,
	})
}

// Remove requires a path id. The store answers with the refreshed list.
func (uc *implUseCase) Remove(ctx context.Context, id string) ([]record.Record, error) {
	if id == "" {
		return nil, record.BadRequest("Invalid request", record.ErrMissingID.Error())
	}

	return repository.Execute(ctx, uc.store, record.ActionRequest{
		Collection: uc.collection,
		Action:     record.ActionRemove,
		ID:         id,
	})
}
