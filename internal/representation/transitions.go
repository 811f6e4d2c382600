package representation

import "hypermedia-record-api/internal/record"

// DefaultTransitions builds the page- and item-level forms for a record
// collection. Form inputs come from the schema's client-writable props;
// hrefs keep their {fullhost}/{id} placeholders until render time.
func DefaultTransitions(schema record.Schema) Forms {
	var inputs []FormProperty
	for _, p := range schema.Props {
		switch p {
		case record.FieldID, record.FieldDateCreated, record.FieldDateUpdated:
			continue
		}
		inputs = append(inputs, FormProperty{Name: p, Value: "{" + p + "}"})
	}

	page := []Form{
		{ID: "home", Name: "home", Href: "{fullhost}/", Rel: "collection", Method: "GET"},
		{ID: "list", Name: "list", Href: "{fullhost}/list/", Rel: "collection", Method: "GET"},
		{ID: "filter", Name: "filter", Href: "{fullhost}/filter/", Rel: "search", Tags: "list",
			Method: "GET", Properties: inputs},
		{ID: "create", Name: "create", Href: "{fullhost}/", Rel: "create-form", Tags: "list",
			Method: "POST", Properties: inputs},
	}

	item := []Form{
		{ID: "read", Name: "read", Href: "{fullhost}/{id}", Rel: "item", Method: "GET"},
		{ID: "update", Name: "update", Href: "{fullhost}/{id}", Rel: "edit-form", Tags: "item",
			Method: "PUT", Properties: inputs},
		{ID: "status", Name: "status", Href: "{fullhost}/status/{id}", Rel: "edit-form", Tags: "item",
			Method: "PATCH", Properties: []FormProperty{{Name: record.FieldStatus, Value: "{status}"}}},
		{ID: "remove", Name: "remove", Href: "{fullhost}/{id}", Rel: "delete", Tags: "item", Method: "DELETE"},
	}

	return Forms{Page: page, Item: item}
}

// DefaultMetadata assembles the shared metadata block from the service
// identity config plus the generated/url placeholders.
func DefaultMetadata(title, author, release string) []Metadata {
	return []Metadata{
		{Name: "title", Value: title},
		{Name: "author", Value: author},
		{Name: "release", Value: release},
		{Name: "generated", Value: "{date}"},
		{Name: "url", Value: "{fullhost}"},
	}
}
