package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ValidationErrors records each failed field of err as "field: message"
// pairs under the key "validation". Errors that carry no validation
// details are logged with Error instead.
func ValidationErrors(err error) slog.Attr {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return Error(err)
	}

	as := make([]slog.Attr, 0, len(verrs))
	for _, e := range verrs {
		key := e.Field
		if key == "" {
			key = "_"
		}
		as = append(as, slog.String(key, e.Message))
	}
	return slog.Attr{Key: "validation", Value: slog.GroupValue(as...)}
}

// Entity records a validated value under its type name, e.g. "user".
// Types implementing slog.LogValuer control their own output.
func Entity(kind string, v any) slog.Attr {
	return slog.Any(kind, v)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
