package representation

import (
	"strconv"
	"strings"
)

// mediaRange is one parsed entry of an Accept header.
type mediaRange struct {
	kind string
	sub  string
	q    float64
}

func parseAccept(header string) []mediaRange {
	var out []mediaRange
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ";")
		mime := strings.TrimSpace(fields[0])
		kindSub := strings.SplitN(mime, "/", 2)
		if len(kindSub) != 2 {
			continue
		}
		r := mediaRange{kind: kindSub[0], sub: kindSub[1], q: 1.0}
		for _, param := range fields[1:] {
			param = strings.TrimSpace(param)
			if v, ok := strings.CutPrefix(param, "q="); ok {
				if q, err := strconv.ParseFloat(v, 64); err == nil {
					r.q = q
				}
			}
		}
		out = append(out, r)
	}
	return out
}

func (r mediaRange) matches(format string) bool {
	kindSub := strings.SplitN(format, "/", 2)
	if len(kindSub) != 2 {
		return false
	}
	if r.kind == "*" && r.sub == "*" {
		return true
	}
	if r.kind == kindSub[0] && r.sub == "*" {
		return true
	}
	return r.kind == kindSub[0] && r.sub == kindSub[1]
}

// accepts reports whether the parsed header admits the format with q > 0.
func accepts(ranges []mediaRange, format string) bool {
	for _, r := range ranges {
		if r.matches(format) {
			return r.q > 0
		}
	}
	return false
}

// ResolveAccepts picks the first registered template the caller's Accept
// header satisfies. An empty header accepts anything. No match falls back
// to plain JSON with the canonical renderer.
func ResolveAccepts(accept string, templates []Template) Template {
	fallback := Template{Format: "application/json", Render: nil}

	if strings.TrimSpace(accept) == "" {
		if len(templates) > 0 {
			return templates[0]
		}
		return fallback
	}

	ranges := parseAccept(accept)
	for _, t := range templates {
		if accepts(ranges, t.Format) {
			return t
		}
	}
	return fallback
}
