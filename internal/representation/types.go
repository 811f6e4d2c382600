package representation

import "hypermedia-record-api/internal/record"

// Form is a page- or item-level affordance merged into responses. Tags
// scope it to response kinds ("list", "item", "home"); empty tags mean
// "always included".
type Form struct {
	ID         string         `json:"id"`
	Name       string         `json:"name,omitempty"`
	Href       string         `json:"href"`
	Rel        string         `json:"rel,omitempty"`
	Tags       string         `json:"tags,omitempty"`
	Method     string         `json:"method"`
	Properties []FormProperty `json:"properties,omitempty"`
}

// FormProperty is one input of a form.
type FormProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Metadata is a shared name/value entry accompanying responses, scoped by
// tags the same way forms are.
type Metadata struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Tags  string `json:"tags,omitempty"`
}

// Forms bundles the page-level and item-level affordances registered for
// a resource.
type Forms struct {
	Page []Form
	Item []Form
}

// RequestInfo is the reduced view of the incoming request available to
// representors and placeholder expansion.
type RequestInfo struct {
	Method   string `json:"method"`
	URL      string `json:"url"`
	FullHost string `json:"fullhost"`
}

// Context is the render context handed to a representor.
type Context struct {
	Records   []record.Record `json:"records"`
	Type      string          `json:"type"`
	PageForms []Form          `json:"pageForms"`
	ItemForms []Form          `json:"itemForms"`
	Metadata  []Metadata      `json:"metadata"`
	Request   RequestInfo     `json:"request"`
}

// RenderFunc turns a render context into a response body.
type RenderFunc func(ctx Context) ([]byte, error)

// Template is one registered representation: a media type plus its
// renderer. A nil Render means "emit the canonical structured form".
type Template struct {
	Format string
	Render RenderFunc
}
