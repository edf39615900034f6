package dto

import (
	"time"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

// MaxSlotDuration is the longest allowed TimeSlot.
const MaxSlotDuration = 8 * time.Hour

// referenceDay anchors both ends of a slot so wall-clock times can be subtracted.
var referenceDay = NewDate(2000, time.January, 1)

// TimeSlot is a titled interval within a single day.
type TimeSlot struct {
	StartTime TimeOfDay `json:"start_time"`
	EndTime   TimeOfDay `json:"end_time"`
	Title     string    `json:"title" validate:"min=1,max=50"`
}

func NewTimeSlot(title string, start, end TimeOfDay) (TimeSlot, error) {
	return New(TimeSlot{StartTime: start, EndTime: end, Title: title})
}

func (s TimeSlot) Validate() error {
	errs := validator.ExtractValidationErrors(validator.Struct(s))
	if err := validator.Apply(
		validTimeOfDay("start_time", s.StartTime),
		validTimeOfDay("end_time", s.EndTime),
	); err != nil {
		errs = append(errs, validator.ExtractValidationErrors(err)...)
	}
	if !errs.IsEmpty() {
		return errs
	}

	span := s.span()
	return validator.ApplyFirst(
		validator.StartsBefore("start_time", "end_time", span),
		validator.MaxSpan("end_time", span, MaxSlotDuration),
	)
}

// DurationMinutes is the number of whole minutes from start to end.
func (s TimeSlot) DurationMinutes() int {
	return int(s.span() / time.Minute)
}

// Overlaps reports whether two slots share any time.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.StartTime < other.EndTime && other.StartTime < s.EndTime
}

func (s TimeSlot) span() time.Duration {
	return s.EndTime.On(referenceDay).Sub(s.StartTime.On(referenceDay))
}

func (TimeSlot) requiredKeys() []string {
	return []string{"start_time", "end_time", "title"}
}

func validTimeOfDay(field string, t TimeOfDay) validator.Rule {
	return validator.Rule{
		Check: t.IsValid,
		Error: validator.ValidationError{
			Field:             field,
			Message:           "must be a time of day between 00:00:00 and 23:59:59",
			TranslationKey:    "validation.time_of_day",
			TranslationValues: map[string]any{"field": field},
		},
	}
}
