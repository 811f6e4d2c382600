package middleware

import (
	"hypermedia-record-api/config"
	"hypermedia-record-api/pkg/log"
)

type Middleware struct {
	l   log.Logger
	cfg *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
