package model

import (
	"encoding/json"

	apperrors "movie-rental/internal/shared/errors"
)

// FieldKind is the JSON kind a required field must carry.
type FieldKind int

const (
	KindString FieldKind = iota
	KindNumber
	KindBool
)

// FieldSpec names a required field and its expected kind. The order of a
// spec list is the order validation failures are reported in.
type FieldSpec struct {
	Name string
	Kind FieldKind
}

// ValidateRequired checks that every spec'd field is present, non-nil and of
// the expected kind, stopping at the first offender. Zero, false and other
// falsy-but-legitimate values pass; a missing or mistyped field fails with a
// validation error naming it. Empty strings count as missing.
func ValidateRequired(body map[string]interface{}, specs []FieldSpec) error {
	for _, spec := range specs {
		value, ok := body[spec.Name]
		if !ok || value == nil || !matchesKind(value, spec.Kind) {
			return apperrors.NewMissingFieldError(spec.Name)
		}
	}
	return nil
}

func matchesKind(value interface{}, kind FieldKind) bool {
	switch kind {
	case KindString:
		s, ok := value.(string)
		return ok && s != ""
	case KindNumber:
		switch value.(type) {
		case float64, float32, int, int32, int64, json.Number:
			return true
		}
		return false
	case KindBool:
		_, ok := value.(bool)
		return ok
	default:
		return false
	}
}
