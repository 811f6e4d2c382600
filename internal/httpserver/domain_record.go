package httpserver

import (
	"context"

	"hypermedia-record-api/internal/record"
	recordHTTP "hypermedia-record-api/internal/record/delivery/http"
	recordUC "hypermedia-record-api/internal/record/usecase"
	"hypermedia-record-api/internal/representation"
)

// setupRecordDomain initializes the record domain and registers its routes
// at the server root.
//
// Wiring order: store (injected) → usecase → representation engine →
// HTTP handler → routes.
func (srv *HTTPServer) setupRecordDomain(ctx context.Context) error {
	schema := record.DefaultSchema()
	collection := srv.cfg.Service.Collection

	uc := recordUC.New(srv.store, schema, collection, srv.l)

	engine := representation.New(
		representation.Templates(),
		representation.DefaultTransitions(schema),
		representation.DefaultMetadata(srv.cfg.Service.Title, srv.cfg.Service.Author, srv.cfg.Service.Release),
		srv.l,
	)

	h := recordHTTP.New(srv.l, uc, engine, collection)
	recordHTTP.RegisterRoutes(srv.gin, h)

	srv.l.Infof(ctx, "Record domain registered for collection %q", collection)
	return nil
}
