package representation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"hypermedia-record-api/internal/record"
	"hypermedia-record-api/pkg/log"
)

// ActionFunc is the dispatcher call a route hands to the engine. It settles
// exactly once: records on success, an error (usually a *record.Problem)
// on failure.
type ActionFunc func(ctx context.Context) ([]record.Record, error)

// Engine renders dispatcher results into the negotiated wire format, or an
// RFC7807 problem document when the action fails.
type Engine struct {
	templates []Template
	forms     Forms
	metadata  []Metadata
	l         log.Logger
}

// New creates a render engine over an ordered template registry.
func New(templates []Template, forms Forms, metadata []Metadata, l log.Logger) *Engine {
	return &Engine{
		templates: templates,
		forms:     forms,
		metadata:  metadata,
		l:         l,
	}
}

var blankLines = regexp.MustCompile(`(?m)^\s*$[\r\n]+`)

// Respond negotiates a template, runs the action, and writes the response.
// resourceType names the payload key ("api", "home"); tag scopes which
// forms and metadata accompany the response.
func (e *Engine) Respond(c *gin.Context, action ActionFunc, resourceType, tag string) {
	ctx := c.Request.Context()

	template := ResolveAccepts(c.GetHeader("Accept"), e.templates)

	pageForms := FilterForms(e.forms.Page, tag)
	itemForms := FilterForms(e.forms.Item, tag)
	metadata := FilterMetadata(e.metadata, tag)

	records, err := action(ctx)
	if err != nil {
		e.problem(c, err)
		return
	}
	if records == nil {
		records = []record.Record{}
	}

	rc := Context{
		Records:   records,
		Type:      resourceType,
		PageForms: pageForms,
		ItemForms: itemForms,
		Metadata:  metadata,
		Request:   requestInfo(c),
	}

	if template.Render != nil {
		body, rerr := template.Render(rc)
		if rerr != nil {
			e.l.Errorf(ctx, "representation: render %s: %v", template.Format, rerr)
			e.problem(c, record.NewProblem(http.StatusInternalServerError, "Server error", rerr.Error()))
			return
		}
		body = blankLines.ReplaceAll(body, nil)
		c.Data(http.StatusOK, template.Format, body)
		return
	}

	// No markup renderer: emit the canonical render context.
	body, merr := json.MarshalIndent(rc, "", "  ")
	if merr != nil {
		e.problem(c, record.NewProblem(http.StatusInternalServerError, "Server error", merr.Error()))
		return
	}
	c.Data(http.StatusOK, template.Format, body)
}

// problem collapses any failure into exactly one problem document. Problems
// keep their own status (defaulting 400 when unset); anything else is an
// unexpected server error.
func (e *Engine) problem(c *gin.Context, err error) {
	var p *record.Problem
	if !errors.As(err, &p) {
		e.l.Errorf(c.Request.Context(), "representation: unexpected failure: %v", err)
		p = record.NewProblem(http.StatusInternalServerError, "Server error", err.Error())
	}

	doc := *p
	doc.Status = p.StatusOrDefault()
	if doc.Instance == "" {
		info := requestInfo(c)
		doc.Instance = info.FullHost + info.URL
	}

	c.Header("Content-Type", FormatProblem)
	body, _ := json.MarshalIndent(gin.H{"error": []record.Problem{doc}}, "", "  ")
	c.Data(doc.Status, FormatProblem, body)
}

func requestInfo(c *gin.Context) RequestInfo {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return RequestInfo{
		Method:   c.Request.Method,
		URL:      c.Request.URL.RequestURI(),
		FullHost: scheme + "://" + c.Request.Host,
	}
}
