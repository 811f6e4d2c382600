package http

import (
	"hypermedia-record-api/internal/record"
	"hypermedia-record-api/internal/representation"
	"hypermedia-record-api/pkg/log"
)

// Handler is the public surface of the record HTTP delivery layer.
type handler struct {
	l          log.Logger
	uc         record.UseCase
	rep        *representation.Engine
	collection string
}

// New creates the HTTP handler for the record domain. collection names the
// payload key used for data responses.
func New(l log.Logger, uc record.UseCase, rep *representation.Engine, collection string) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		rep:        rep,
		collection: collection,
	}
}
