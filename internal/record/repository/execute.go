package repository

import (
	"context"

	"hypermedia-record-api/internal/record"
)

// Execute runs a single ActionRequest against a store. It is the only
// entry point the dispatcher uses: single-record actions come back as a
// one-element slice so every action settles into the same shape.
func Execute(ctx context.Context, s Store, req record.ActionRequest) ([]record.Record, error) {
	if req.Collection == "" {
		return nil, ErrMissingCollection
	}

	switch req.Action {
	case record.ActionCreateCollection:
		return nil, s.CreateCollection(ctx, req.Collection)

	case record.ActionList:
		return s.List(ctx, ListOptions{Collection: req.Collection, Fields: req.Fields})

	case record.ActionFilter:
		return s.Filter(ctx, FilterOptions{
			Collection: req.Collection,
			Filter:     req.Filter,
			Fields:     req.Fields,
		})

	case record.ActionItem:
		item, err := s.Get(ctx, GetOptions{
			Collection: req.Collection,
			ID:         req.ID,
			Fields:     req.Fields,
		})
		if err != nil {
			return nil, err
		}
		return []record.Record{item}, nil

	case record.ActionAdd:
		item, err := s.Add(ctx, AddOptions{
			Collection: req.Collection,
			Item:       req.Item,
			ID:         req.ID,
		})
		if err != nil {
			return nil, err
		}
		return []record.Record{item}, nil

	case record.ActionUpdate:
		item, err := s.Update(ctx, UpdateOptions{
			Collection: req.Collection,
			Item:       req.Item,
			ID:         req.ID,
		})
		if err != nil {
			return nil, err
		}
		return []record.Record{item}, nil

	case record.ActionRemove:
		return s.Remove(ctx, RemoveOptions{Collection: req.Collection, ID: req.ID})

	default:
		return nil, ErrUnknownAction
	}
}
