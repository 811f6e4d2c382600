package representation

import "testing"

func TestResolveAccepts(t *testing.T) {
	templates := Templates()

	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"empty header takes the first template", "", FormatAppJSON},
		{"exact match", "application/forms+json", FormatFormsJSON},
		{"csv over json when only csv is named", "text/csv", FormatTextCSV},
		{"wildcard subtype", "text/*", FormatTextCSV},
		{"full wildcard takes the first template", "*/*", FormatAppJSON},
		{"first listed template wins regardless of header order", "application/prag+json, application/links+json", FormatLinksJSON},
		{"whitespace and params tolerated", " application/prag+json ; charset=utf-8 ", FormatPragJSON},
		{"unknown type falls back to plain json", "application/hal+json", FormatAppJSON},
		{"garbage falls back to plain json", "not-a-media-type", FormatAppJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAccepts(tt.accept, templates)
			if got.Format != tt.want {
				t.Errorf("ResolveAccepts(%q) = %q, want %q", tt.accept, got.Format, tt.want)
			}
		})
	}

	t.Run("q=0 excludes a type", func(t *testing.T) {
		got := ResolveAccepts("text/csv;q=0", templates)
		if got.Format != FormatAppJSON {
			t.Errorf("q=0 range should not select csv, got %q", got.Format)
		}
	})

	t.Run("fallback renderer is canonical", func(t *testing.T) {
		got := ResolveAccepts("application/xml", templates)
		if got.Render != nil {
			t.Error("no-match fallback must carry a nil renderer")
		}
	})
}
