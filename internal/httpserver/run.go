package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Run maps handlers and serves until the context is cancelled, then shuts
// down gracefully.
func (srv *HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	errc := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on :%d (%s)", srv.port, srv.mode)
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
