package representation

import (
	"encoding/json"

	"hypermedia-record-api/internal/record"
)

// renderAppJSON is the plain JSON representor: the records keyed by
// response type, every value expanded, nothing else.
//
//	{ "<type>": [ { "field": "value", ... } ] }
func renderAppJSON(ctx Context) ([]byte, error) {
	items := make([]record.Record, 0, len(ctx.Records))
	for _, r := range ctx.Records {
		items = append(items, expandRecord(r, ctx.Request))
	}
	return json.MarshalIndent(map[string]any{ctx.Type: items}, "", "  ")
}
