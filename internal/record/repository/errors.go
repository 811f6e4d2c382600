package repository

import "errors"

var (
	ErrUnknownAction     = errors.New("unknown store action")
	ErrMissingCollection = errors.New("collection name is required")
)
