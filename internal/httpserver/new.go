package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hypermedia-record-api/config"
	"hypermedia-record-api/internal/record/repository"
	"hypermedia-record-api/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	cfg   *config.Config
	store repository.Store
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AppConfig *config.Config
	Store     repository.Store
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		store:       cfg.Store,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.store == nil {
		return errors.New("store is required")
	}
	return nil
}
