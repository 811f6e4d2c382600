package representation

import (
	"encoding/json"

	"hypermedia-record-api/internal/record"
)

// renderPragJSON is the "pragmatic" JSON representor: metadata flattened to
// an object, a self link, and the records keyed by response type.
func renderPragJSON(ctx Context) ([]byte, error) {
	meta := map[string]string{}
	for _, m := range expandMetadata(ctx.Metadata, ctx.Request) {
		meta[m.Name] = m.Value
	}

	items := make([]record.Record, 0, len(ctx.Records))
	for _, r := range ctx.Records {
		items = append(items, expandRecord(r, ctx.Request))
	}

	doc := map[string]any{
		"metadata": meta,
		"links": map[string]string{
			"self": ctx.Request.FullHost + ctx.Request.URL,
			"list": ctx.Request.FullHost + "/list/",
		},
		ctx.Type: items,
	}
	return json.MarshalIndent(doc, "", "  ")
}
