package representation

import (
	"encoding/json"

	"hypermedia-record-api/internal/record"
)

// formsDoc is the form-augmented JSON representation: metadata, page-level
// links, and each item carrying its own expanded forms.
type formsDoc struct {
	Metadata []Metadata  `json:"metadata"`
	Links    []Form      `json:"links"`
	Items    []formsItem `json:"items"`
}

type formsItem struct {
	Rel   string        `json:"rel"`
	Href  string        `json:"href"`
	Data  record.Record `json:"data"`
	Forms []Form        `json:"forms,omitempty"`
}

func renderFormsJSON(ctx Context) ([]byte, error) {
	doc := formsDoc{
		Metadata: expandMetadata(ctx.Metadata, ctx.Request),
		Links:    expandForms(ctx.PageForms, nil, ctx.Request),
		Items:    []formsItem{},
	}
	for _, r := range ctx.Records {
		doc.Items = append(doc.Items, formsItem{
			Rel:   "item",
			Href:  Expand("{fullhost}/{id}", r, ctx.Request),
			Data:  expandRecord(r, ctx.Request),
			Forms: expandForms(ctx.ItemForms, r, ctx.Request),
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}
