package usecase

import (
	"context"
	"strings"

	"hypermedia-record-api/internal/record"
)

// homeTypes are the non-hypermedia media types that get a bootstrap link
// from the root. Hypermedia clients discover links from the representors.
var homeTypes = []string{"application/json", "text/csv", "*/*"}

// Home returns a single link record pointing at the list endpoint for
// plain-JSON/CSV callers, and deterministically nothing for everyone else.
func (uc *implUseCase) Home(ctx context.Context, accept string) ([]record.Record, error) {
	accept = strings.TrimSpace(accept)
	serve := accept == ""
	for _, t := range homeTypes {
		if accept == t {
			serve = true
			break
		}
	}
	if !serve {
		return []record.Record{}, nil
	}

	return []record.Record{{
		record.FieldID: "list",
		"name":         uc.collection,
		"rel":          "collection " + uc.collection,
		"href":         "{fullhost}/list/",
	}}, nil
}
