package representation

// Media types served by the engine.
const (
	FormatAppJSON   = "application/json"
	FormatFormsJSON = "application/forms+json"
	FormatLinksJSON = "application/links+json"
	FormatPragJSON  = "application/prag+json"
	FormatTextCSV   = "text/csv"
	FormatProblem   = "application/problem+json"
)

// Templates returns the ordered representation registry. Negotiation walks
// it front to back, so plain JSON wins ties for permissive Accept headers.
func Templates() []Template {
	return []Template{
		{Format: FormatAppJSON, Render: renderAppJSON},
		{Format: FormatFormsJSON, Render: renderFormsJSON},
		{Format: FormatTextCSV, Render: renderTextCSV},
		{Format: FormatLinksJSON, Render: renderLinksJSON},
		{Format: FormatPragJSON, Render: renderPragJSON},
	}
}

// ResponseTypes lists the media types request bodies may arrive as, used to
// configure body parsing.
func ResponseTypes() []string {
	types := []string{}
	for _, t := range Templates() {
		types = append(types, t.Format)
	}
	return types
}
