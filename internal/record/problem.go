package record

import "net/http"

// Problem is the RFC7807-shaped error payload returned to callers. It
// implements error so it can travel the normal error path; the renderer
// recovers it with errors.As instead of sniffing payload shapes.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Status   int    `json:"status"`
	Instance string `json:"instance,omitempty"`
	Debug    string `json:"debug,omitempty"`
}

func (p *Problem) Error() string {
	return p.Title + ": " + p.Detail
}

// StatusOrDefault returns the problem status, defaulting to 400 when the
// source failure left it unset.
func (p *Problem) StatusOrDefault() int {
	if p.Status == 0 {
		return http.StatusBadRequest
	}
	return p.Status
}

// NewProblem builds a generic problem. Empty detail falls back to the title.
func NewProblem(status int, title, detail string) *Problem {
	if detail == "" {
		detail = title
	}
	return &Problem{
		Type:   "error",
		Title:  title,
		Detail: detail,
		Status: status,
	}
}

func BadRequest(title, detail string) *Problem {
	return NewProblem(http.StatusBadRequest, title, detail)
}

func NotFound(title, detail string) *Problem {
	return NewProblem(http.StatusNotFound, title, detail)
}

func Conflict(title, detail string) *Problem {
	return NewProblem(http.StatusConflict, title, detail)
}

func StorageFault(title, detail, debug string) *Problem {
	p := NewProblem(http.StatusInternalServerError, title, detail)
	p.Debug = debug
	return p
}
