package validator

import (
	"fmt"
	"time"
)

// NotAfter is a cross-field rule requiring start to be before or equal to end.
func NotAfter(startField string, start time.Time, endField string, end time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !start.After(end)
		},
		Error: ValidationError{
			Field:          startField,
			Message:        fmt.Sprintf("%s must be before or equal to %s", startField, endField),
			TranslationKey: "validation.cross_field.date_order",
			TranslationValues: map[string]any{
				"field": startField,
				"other": endField,
			},
		},
	}
}

// StartsBefore requires a strictly positive span between two points in time.
func StartsBefore(startField, endField string, span time.Duration) Rule {
	return Rule{
		Check: func() bool {
			return span > 0
		},
		Error: ValidationError{
			Field:          startField,
			Message:        fmt.Sprintf("%s must be before %s", startField, endField),
			TranslationKey: "validation.cross_field.time_order",
			TranslationValues: map[string]any{
				"field": startField,
				"other": endField,
			},
		},
	}
}

// MaxSpan limits the length of a span; the bound itself is allowed.
func MaxSpan(field string, span, max time.Duration) Rule {
	return Rule{
		Check: func() bool {
			return span <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("duration cannot exceed %s", humanDuration(max)),
			TranslationKey: "validation.cross_field.max_duration",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max.String(),
			},
		},
	}
}

func humanDuration(d time.Duration) string {
	if d%time.Hour == 0 {
		h := int(d / time.Hour)
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	}
	if d%time.Minute == 0 {
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	}
	return d.String()
}
