// Package section reshapes the export's columnar tables into keyed records.
package section

import "github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"

// Parse zips each row against the headers. Short rows carry nil for the
// missing keys, extra cells are dropped. A nil section yields an empty slice.
func Parse(raw *domain.RawSection) []domain.Record {
	if raw == nil {
		return []domain.Record{}
	}

	records := make([]domain.Record, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		rec := make(domain.Record, len(raw.Headers))
		for i, h := range raw.Headers {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = nil
			}
		}
		records = append(records, rec)
	}
	return records
}

// FromJSON converts a decoded JSON value into a RawSection. It returns nil when
// v is not an object. Mistyped Headers or Rows degrade to empty.
func FromJSON(v any) *domain.RawSection {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	raw := &domain.RawSection{Headers: []string{}, Rows: [][]any{}}

	if headers, ok := obj["Headers"].([]any); ok {
		for _, h := range headers {
			s, _ := h.(string)
			raw.Headers = append(raw.Headers, s)
		}
	}

	if rows, ok := obj["Rows"].([]any); ok {
		for _, r := range rows {
			cells, _ := r.([]any)
			raw.Rows = append(raw.Rows, cells)
		}
	}

	return raw
}

// ParseAll parses every named section out of a decoded "Sections" object.
// Absent sections map to empty record slices.
func ParseAll(sections map[string]any, names []string) map[string][]domain.Record {
	out := make(map[string][]domain.Record, len(names))
	for _, name := range names {
		out[name] = Parse(FromJSON(sections[name]))
	}
	return out
}
