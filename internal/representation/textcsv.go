package representation

import (
	"bytes"
	"encoding/csv"
	"sort"
)

// renderTextCSV emits one header row (sorted union of fields across all
// records) and one row per record; fields a record lacks stay empty.
func renderTextCSV(ctx Context) ([]byte, error) {
	if len(ctx.Records) == 0 {
		return []byte{}, nil
	}

	seen := map[string]bool{}
	var header []string
	for _, r := range ctx.Records {
		for k := range r {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
	}
	sort.Strings(header)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range ctx.Records {
		expanded := expandRecord(r, ctx.Request)
		row := make([]string, len(header))
		for i, field := range header {
			row[i] = expanded[field]
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
