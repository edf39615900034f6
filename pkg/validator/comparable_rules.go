package validator

import (
	"cmp"
	"fmt"
)

// LessOrEqual is a cross-field rule: value (named field) must not exceed
// other (named otherField).
func LessOrEqual[T cmp.Ordered](field string, value T, otherField string, other T) Rule {
	return Rule{
		Check: func() bool {
			return value <= other
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be less than or equal to %s", field, otherField),
			TranslationKey: "validation.cross_field.lte",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherField,
			},
		},
	}
}

// Equal is a cross-field rule requiring two values to be identical.
// The error is reported on otherField, the value being confirmed.
func Equal[T comparable](field string, value T, otherField string, other T) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:          otherField,
			Message:        fmt.Sprintf("%s and %s do not match", field, otherField),
			TranslationKey: "validation.cross_field.eq",
			TranslationValues: map[string]any{
				"field": otherField,
				"other": field,
			},
		},
	}
}
