package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hypermedia-record-api/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.cfg)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestLog())
	srv.gin.Use(mw.RateLimit())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires the record domain.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if err := srv.setupRecordDomain(ctx); err != nil {
		return err
	}

	return nil
}
