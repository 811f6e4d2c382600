package representation

import (
	"encoding/json"

	"hypermedia-record-api/internal/record"
)

// linksDoc is the link-only JSON representation: metadata, page-level
// links, and items reduced to their identity plus navigation links.
type linksDoc struct {
	Metadata []Metadata  `json:"metadata"`
	Links    []Form      `json:"links"`
	Items    []linksItem `json:"items"`
}

type linksItem struct {
	ID    string        `json:"id"`
	Href  string        `json:"href"`
	Data  record.Record `json:"data"`
	Links []linksRef    `json:"links"`
}

type linksRef struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method"`
}

func renderLinksJSON(ctx Context) ([]byte, error) {
	doc := linksDoc{
		Metadata: expandMetadata(ctx.Metadata, ctx.Request),
		Links:    expandForms(ctx.PageForms, nil, ctx.Request),
		Items:    []linksItem{},
	}
	for _, r := range ctx.Records {
		item := linksItem{
			ID:    r[record.FieldID],
			Href:  Expand("{fullhost}/{id}", r, ctx.Request),
			Data:  expandRecord(r, ctx.Request),
			Links: []linksRef{},
		}
		for _, f := range ctx.ItemForms {
			ef := expandForm(f, r, ctx.Request)
			item.Links = append(item.Links, linksRef{Rel: ef.Rel, Href: ef.Href, Method: ef.Method})
		}
		doc.Items = append(doc.Items, item)
	}
	return json.MarshalIndent(doc, "", "  ")
}
