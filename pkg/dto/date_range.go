package dto

import (
	"time"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	StartDate Date `json:"start_date"`
	EndDate   Date `json:"end_date"`
}

func NewDateRange(start, end Date) (DateRange, error) {
	return New(DateRange{StartDate: start, EndDate: end})
}

func (r DateRange) Validate() error {
	if err := validator.Apply(
		validDate("start_date", r.StartDate),
		validDate("end_date", r.EndDate),
	); err != nil {
		return err
	}

	return validator.ApplyFirst(
		validator.NotAfter("start_date", r.StartDate.In(time.UTC), "end_date", r.EndDate.In(time.UTC)),
	)
}

// Duration is the number of days in the range, counting both ends.
func (r DateRange) Duration() int {
	return r.EndDate.DaysSince(r.StartDate) + 1
}

// Contains reports whether d falls within the range.
func (r DateRange) Contains(d Date) bool {
	return d.DaysSince(r.StartDate) >= 0 && r.EndDate.DaysSince(d) >= 0
}

func (DateRange) requiredKeys() []string {
	return []string{"start_date", "end_date"}
}

func validDate(field string, d Date) validator.Rule {
	return validator.Rule{
		Check: d.IsValid,
		Error: validator.ValidationError{
			Field:             field,
			Message:           "must be a valid date",
			TranslationKey:    "validation.date",
			TranslationValues: map[string]any{"field": field},
		},
	}
}
