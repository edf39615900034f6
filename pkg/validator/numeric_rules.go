package validator

import "fmt"

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

func Positive[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be greater than 0",
			TranslationKey: "validation.gt",
			TranslationValues: map[string]any{
				"field": field,
				"param": "0",
			},
		},
	}
}

// MultipleOf validates quantized values such as currency amounts (step 0.01).
func MultipleOf(field string, value, step float64) Rule {
	return Rule{
		Check: func() bool {
			return IsMultipleOf(value, step)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a multiple of %v", step),
			TranslationKey: "validation.multipleof",
			TranslationValues: map[string]any{
				"field": field,
				"param": step,
			},
		},
	}
}
