package http

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/url"

	"github.com/gin-gonic/gin"

	"hypermedia-record-api/internal/record"
)

const maxBodyBytes = 1 << 20

// processBody parses the request body into a flat Record regardless of how
// it arrived: JSON (the default), form-urlencoded, or a collection+json
// template. Scalar values are coerced to strings.
func processBody(c *gin.Context) (record.Record, error) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return record.Record{}, nil
	}

	ctype := c.ContentType()
	if mt, _, err := mime.ParseMediaType(ctype); err == nil {
		ctype = mt
	}

	switch ctype {
	case "application/x-www-form-urlencoded":
		return parseFormBody(string(data))
	case "application/vnd.collection+json":
		return parseCJBody(data)
	default:
		return parseJSONBody(data)
	}
}

func parseJSONBody(data []byte) (record.Record, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := record.Record{}
	for k, v := range raw {
		out[k] = coerce(v)
	}
	return out, nil
}

func parseFormBody(body string) (record.Record, error) {
	values, err := url.ParseQuery(body)
	if err != nil {
		return nil, err
	}
	out := record.Record{}
	for name, vals := range values {
		if len(vals) > 0 {
			out[name] = vals[0]
		}
	}
	return out, nil
}

// cjBody is the collection+json write shape: a template holding name/value
// pairs, or a bare data array.
type cjBody struct {
	Template *struct {
		Data []cjPair `json:"data"`
	} `json:"template"`
	Data []cjPair `json:"data"`
}

type cjPair struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

func parseCJBody(data []byte) (record.Record, error) {
	var body cjBody
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}

	pairs := body.Data
	if body.Template != nil && len(body.Template.Data) > 0 {
		pairs = body.Template.Data
	}

	out := record.Record{}
	for _, p := range pairs {
		out[p.Name] = coerce(p.Value)
	}
	return out, nil
}

// processQuery flattens the query string to a single-valued filter map.
func processQuery(c *gin.Context) map[string]string {
	out := map[string]string{}
	for name, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			out[name] = values[0]
		}
	}
	return out
}

func coerce(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
