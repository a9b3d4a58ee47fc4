package normalize

import "github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"

// rowReader reads typed fields from one record. The first failing required
// field is remembered; every read after that is a no-op.
type rowReader struct {
	section string
	index   int
	rec     domain.Record
	failed  *domain.DataError
}

func (r *rowReader) fail(field, reason string) {
	if r.failed != nil {
		return
	}
	r.failed = &domain.DataError{
		Level:    domain.DataErrorLevel,
		Section:  r.section,
		RowIndex: r.index,
		Field:    field,
		Reason:   reason,
	}
}

func (r *rowReader) requiredString(field string) string {
	if r.failed != nil {
		return ""
	}
	v := r.rec[field]
	s, ok := coerceString(v)
	if !ok {
		r.fail(field, invalidReason(v, "a non-empty string"))
	}
	return s
}

func (r *rowReader) requiredBool(field string) bool {
	if r.failed != nil {
		return false
	}
	v := r.rec[field]
	b, ok := coerceBool(v)
	if !ok {
		r.fail(field, invalidReason(v, `"true" or "false"`))
	}
	return b
}

func (r *rowReader) optionalString(field string) *string {
	s, ok := coerceString(r.rec[field])
	if !ok {
		return nil
	}
	return &s
}

func (r *rowReader) optionalBool(field string) *bool {
	b, ok := coerceBool(r.rec[field])
	if !ok {
		return nil
	}
	return &b
}

func (r *rowReader) optionalFloat(field string) *float64 {
	f, ok := coerceFloat(r.rec[field])
	if !ok {
		return nil
	}
	return &f
}

func (r *rowReader) optionalInt(field string) *int {
	n, ok := coerceInt(r.rec[field])
	if !ok {
		return nil
	}
	return &n
}

// checkedInt resolves the first present value among sources. An absent value
// is nil; a present value that is not a number fails the row under field.
func (r *rowReader) checkedInt(field string, sources ...string) *int {
	if r.failed != nil {
		return nil
	}
	for _, src := range sources {
		v := r.rec[src]
		if isAbsent(v) {
			continue
		}
		n, ok := coerceInt(v)
		if !ok {
			r.fail(field, invalidReason(v, "a number"))
			return nil
		}
		return &n
	}
	return nil
}
