package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"hypermedia-record-api/internal/record"
)

// Every handler hands the representation engine an action closure plus the
// (response type, form tag) pair for the route. The engine owns negotiation
// and error shaping; handlers own nothing but intent wiring.

// Home serves the API root: a bootstrap link for non-hypermedia callers.
func (h *handler) Home(c *gin.Context) {
	accept := c.GetHeader("Accept")
	h.rep.Respond(c, func(ctx context.Context) ([]record.Record, error) {
		return h.uc.Home(ctx, accept)
	}, "home", "home")
}

// Create adds a record from the request body.
func (h *handler) Create(c *gin.Context) {
	body, err := processBody(c)
	h.rep.Respond(c, func(ctx context.Context) ([]record.Record, error) {
		if err != nil {
			h.l.Debugf(ctx, "create: bad body: %v", err)
			return nil, record.BadRequest("Invalid request", record.ErrInvalidBody.Error())
		}
		return h.uc.Create(ctx, body)
	}, h.collection, "list")
}

// List returns the whole collection.
func (h *handler) List(c *gin.Context) {
	h.rep.Respond(c, func(ctx context.Context) ([]record.Record, error) {
		return h.uc.List(ctx)
	}, h.collection, "list")
}

// Filter returns the records matching the query string.
func (h *handler) Filter(c *gin.Context) {
	query := processQuery(c)
	h.rep.Respond(c, func(ctx context.Context) ([]record.Record, error) {
		return h.uc.Filter(ctx, query)
	}, h.collection, "list")
}

// Read returns a single record by path id.
func (h *handler) Read(c *gin.Context) {
	id := c.Param("id")
	h.rep.Respond(c, func(ctx context.Context) ([]record.Record, error) {
		return h.uc.Read(ctx, id)
	}, h.collection, "item")
}

// Update replaces a record wholesale from the request body.
func (h *handler) Update(c *gin.Context) {
	id := c.Param("id")
	body, err := processBody(c)
	h.rep.Respond(c, func(ctx context.Context) ([]record.Record, error) {
		if err != nil {
			h.l.Debugf(ctx, "update: bad body: %v", err)
			return nil, record.BadRequest("Invalid request", record.ErrInvalidBody.Error())
		}
		return h.uc.Update(ctx, id, body)
	}, h.collection, "item")
}

// Status changes just the record's status.
func (h *handler) Status(c *gin.Context) {
	id := c.Param("id")
	body, err := processBody(c)
	h.rep.Respond(c, func(ctx context.Context) ([]record.Record, error) {
		if err != nil {
			h.l.Debugf(ctx, "status: bad body: %v", err)
			return nil, record.BadRequest("Invalid request", record.ErrInvalidBody.Error())
		}
		return h.uc.Status(ctx, id, body)
	}, h.collection, "item")
}

// Remove deletes a record; the response is the refreshed collection list.
func (h *handler) Remove(c *gin.Context) {
	id := c.Param("id")
	h.rep.Respond(c, func(ctx context.Context) ([]record.Record, error) {
		return h.uc.Remove(ctx, id)
	}, h.collection, "list")
}
