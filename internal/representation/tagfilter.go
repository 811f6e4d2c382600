package representation

import "strings"

// filterTagged keeps entries whose tags are empty or contain the requested
// tag; an empty requested tag keeps everything. Ordering is preserved.
func filterTagged[T any](entries []T, tags func(T) string, tag string) []T {
	if tag == "" {
		return entries
	}
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		t := tags(e)
		if t == "" || strings.Contains(t, tag) {
			out = append(out, e)
		}
	}
	return out
}

// FilterForms narrows forms to those tagged for the given response kind.
func FilterForms(forms []Form, tag string) []Form {
	return filterTagged(forms, func(f Form) string { return f.Tags }, tag)
}

// FilterMetadata narrows metadata the same way.
func FilterMetadata(entries []Metadata, tag string) []Metadata {
	return filterTagged(entries, func(m Metadata) string { return m.Tags }, tag)
}
