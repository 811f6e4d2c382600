package representation

import (
	"strings"
	"time"

	"hypermedia-record-api/internal/record"
)

// Expand resolves the placeholder tokens used by forms, metadata, and
// rendered field values: {fullhost}, {date}, and any {field} present on the
// record (including {id}). Unknown tokens pass through untouched.
func Expand(value string, item record.Record, req RequestInfo) string {
	if !strings.Contains(value, "{") {
		return value
	}
	value = strings.ReplaceAll(value, "{fullhost}", req.FullHost)
	if strings.Contains(value, "{date}") {
		value = strings.ReplaceAll(value, "{date}", time.Now().UTC().Format(time.RFC3339))
	}
	for k, v := range item {
		value = strings.ReplaceAll(value, "{"+k+"}", v)
	}
	return value
}

// expandForm returns a copy of the form with href and property values
// resolved against the record and request.
func expandForm(f Form, item record.Record, req RequestInfo) Form {
	out := f
	out.Href = Expand(f.Href, item, req)
	if len(f.Properties) > 0 {
		out.Properties = make([]FormProperty, len(f.Properties))
		for i, p := range f.Properties {
			out.Properties[i] = FormProperty{Name: p.Name, Value: Expand(p.Value, item, req)}
		}
	}
	return out
}

func expandForms(forms []Form, item record.Record, req RequestInfo) []Form {
	out := make([]Form, len(forms))
	for i, f := range forms {
		out[i] = expandForm(f, item, req)
	}
	return out
}

func expandMetadata(entries []Metadata, req RequestInfo) []Metadata {
	out := make([]Metadata, len(entries))
	for i, m := range entries {
		out[i] = Metadata{Name: m.Name, Value: Expand(m.Value, nil, req), Tags: m.Tags}
	}
	return out
}

func expandRecord(item record.Record, req RequestInfo) record.Record {
	out := make(record.Record, len(item))
	for k, v := range item {
		out[k] = Expand(v, item, req)
	}
	return out
}
