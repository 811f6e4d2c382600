package record

import "errors"

var (
	ErrInvalidBody  = errors.New("invalid body")
	ErrInvalidQuery = errors.New("invalid query string")
	ErrMissingID    = errors.New("missing id")
)
