package record

import "context"

// UseCase is the action dispatcher: it validates each intent's minimal
// preconditions, builds an ActionRequest, and runs it against the store.
// Every method settles exactly once — a record slice on success, an error
// (usually a *Problem) on failure.
type UseCase interface {
	Home(ctx context.Context, accept string) ([]Record, error)
	Create(ctx context.Context, body Record) ([]Record, error)
	List(ctx context.Context) ([]Record, error)
	Filter(ctx context.Context, query map[string]string) ([]Record, error)
	Read(ctx context.Context, id string) ([]Record, error)
	Update(ctx context.Context, id string, body Record) ([]Record, error)
	Status(ctx context.Context, id string, body Record) ([]Record, error)
	Remove(ctx context.Context, id string) ([]Record, error)
}
