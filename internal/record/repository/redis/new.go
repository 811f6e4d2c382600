package redis

import (
	goredis "github.com/go-redis/redis/v8"

	"hypermedia-record-api/internal/record/repository"
	"hypermedia-record-api/pkg/log"
)

type implStore struct {
	client *goredis.Client
	l      log.Logger
}

// New creates a Redis-backed Store. Records live at record:<collection>:<id>
// with a records:<collection> index set per collection.
func New(client *goredis.Client, l log.Logger) repository.Store {
	if client == nil {
		panic("record/repository/redis: client is required")
	}
	return &implStore{client: client, l: l}
}
