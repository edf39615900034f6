package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

// Entity is implemented by every validated record in this package.
// Validate checks field rules first and whole-entity rules second.
type Entity interface {
	Validate() error
}

// keyed is implemented by entities whose JSON form has required keys.
type keyed interface {
	requiredKeys() []string
}

// New validates v and returns it. On failure the zero value is returned.
func New[T Entity](v T) (T, error) {
	if err := v.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Parse decodes the canonical JSON encoding of T and validates the result.
func Parse[T Entity](data []byte) (T, error) {
	var zero T

	if json.Valid(data) {
		var structural validator.ValidationErrors
		checkStructure(data, reflect.TypeOf(zero), "", &structural)
		if !structural.IsEmpty() {
			return zero, structuralError(structural)
		}
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, decodeError(err)
	}

	return New(v)
}

// FromMap builds T from a raw structured mapping. Nested entities may be given
// either as constructed values or as nested maps.
func FromMap[T Entity](m map[string]any) (T, error) {
	data, err := json.Marshal(m)
	if err != nil {
		var zero T
		return zero, errors.Join(validator.ErrInvalidFormat, err)
	}
	return Parse[T](data)
}

// Marshal returns the canonical JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Dump converts v into plain maps, slices and primitives. Numbers decoded
// into float fields stay float64; other integral numbers become int.
func Dump(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return normalizeNumbers(out, reflect.TypeOf(v)).(map[string]any), nil
}

// Update applies fn to a copy of v and returns the copy if it is still valid.
// fn must replace slice fields rather than modify their elements in place,
// since the copy shares backing arrays with v.
func Update[T Entity](v T, fn func(*T)) (T, error) {
	next := v
	fn(&next)
	return New(next)
}

// normalizeNumbers walks v alongside the Go type t it was encoded from.
// t is nil where the encoding has no matching field.
func normalizeNumbers(v any, t reflect.Type) any {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = normalizeNumbers(item, memberType(t, k))
		}
		return val
	case []any:
		var elem reflect.Type
		if t != nil && (t.Kind() == reflect.Slice || t.Kind() == reflect.Array) {
			elem = t.Elem()
		}
		for i, item := range val {
			val[i] = normalizeNumbers(item, elem)
		}
		return val
	case json.Number:
		if t != nil && (t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64) {
			f, _ := val.Float64()
			return f
		}
		if i, err := strconv.Atoi(val.String()); err == nil {
			return i
		}
		f, _ := val.Float64()
		return f
	default:
		return v
	}
}

// memberType returns the type encoded under key in a value of type t.
func memberType(t reflect.Type, key string) reflect.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Map:
		return t.Elem()
	case reflect.Struct:
		if f, ok := fieldByJSONName(t, key); ok {
			return f.Type
		}
	}
	return nil
}

func fieldByJSONName(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := range t.NumField() {
		if f := t.Field(i); jsonName(f) == name {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

// checkStructure walks raw JSON alongside t and records, by full path,
// required keys that are absent or null and values that do not decode into
// their field type. Null is accepted for a required key only when its field
// is a pointer. raw must be valid JSON.
func checkStructure(raw []byte, t reflect.Type, path string, errs *validator.ValidationErrors) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || isNull(raw) {
		return
	}

	if _, ok := formatHints[t]; ok {
		checkValue(raw, t, path, errs)
		return
	}

	switch t.Kind() {
	case reflect.Struct:
		var obj map[string]json.RawMessage
		if json.Unmarshal(raw, &obj) != nil {
			checkValue(raw, t, path, errs)
			return
		}
		if k, ok := reflect.New(t).Elem().Interface().(keyed); ok {
			for _, key := range k.requiredKeys() {
				value, found := obj[key]
				switch {
				case !found:
					errs.Add(missingField(validator.JoinPath(path, key)))
				case isNull(value):
					if f, ok := fieldByJSONName(t, key); ok && f.Type.Kind() != reflect.Pointer {
						errs.Add(nullField(validator.JoinPath(path, key)))
					}
				}
			}
		}
		for i := range t.NumField() {
			f := t.Field(i)
			name := jsonName(f)
			if name == "" {
				continue
			}
			if value, ok := obj[name]; ok {
				checkStructure(value, f.Type, validator.JoinPath(path, name), errs)
			}
		}
	case reflect.Slice:
		var items []json.RawMessage
		if json.Unmarshal(raw, &items) != nil {
			checkValue(raw, t, path, errs)
			return
		}
		for i, item := range items {
			checkStructure(item, t.Elem(), validator.JoinPath(path, fmt.Sprintf("[%d]", i)), errs)
		}
	case reflect.Map, reflect.Interface:
	default:
		checkValue(raw, t, path, errs)
	}
}

func jsonName(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	default:
		return name
	}
}

func missingField(path string) validator.ValidationError {
	return validator.ValidationError{
		Field:             path,
		Message:           "field is required",
		TranslationKey:    "validation.required",
		TranslationValues: map[string]any{"field": path},
	}
}

// checkValue records a type error at path when raw does not decode into t.
func checkValue(raw []byte, t reflect.Type, path string, errs *validator.ValidationErrors) {
	if json.Unmarshal(raw, reflect.New(t).Interface()) != nil {
		errs.Add(typeMismatch(path, t))
	}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// typeMismatch describes a value that cannot be decoded into t.
func typeMismatch(path string, t reflect.Type) validator.ValidationError {
	msg := fmt.Sprintf("must be of type %s", t)
	if hint, ok := formatHints[t]; ok {
		msg = "must be " + hint
	}
	return validator.ValidationError{
		Field:          path,
		Message:        msg,
		TranslationKey: "validation.type",
		TranslationValues: map[string]any{
			"field": path,
			"type":  t.String(),
		},
	}
}

func nullField(path string) validator.ValidationError {
	return validator.ValidationError{
		Field:             path,
		Message:           "must not be null",
		TranslationKey:    "validation.not_null",
		TranslationValues: map[string]any{"field": path},
	}
}

// structuralError joins errs with ErrFieldRequired when a key is missing and
// with ErrInvalidFormat when a value is null or malformed.
func structuralError(errs validator.ValidationErrors) error {
	var sentinels []error
	for _, sentinel := range []struct {
		key string
		err error
	}{
		{"validation.required", validator.ErrFieldRequired},
		{"validation.not_null", validator.ErrInvalidFormat},
		{"validation.type", validator.ErrInvalidFormat},
	} {
		if slices.Contains(sentinels, sentinel.err) {
			continue
		}
		if slices.ContainsFunc(errs, func(e validator.ValidationError) bool { return e.TranslationKey == sentinel.key }) {
			sentinels = append(sentinels, sentinel.err)
		}
	}
	return errors.Join(append(sentinels, errs)...)
}

// formatHints describe the textual forms accepted by types that decode from
// JSON strings.
var formatHints = map[reflect.Type]string{
	reflect.TypeFor[Date]():      "a date in YYYY-MM-DD form",
	reflect.TypeFor[TimeOfDay](): "a time of day in HH:MM[:SS[.fraction]] form",
	reflect.TypeFor[time.Time](): "an RFC 3339 timestamp",
}

// decodeError converts encoding/json failures into structural validation errors.
func decodeError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	var verr validator.ValidationError
	switch {
	case errors.As(err, &syntaxErr):
		verr = validator.ValidationError{
			Message:        "invalid JSON: " + syntaxErr.Error(),
			TranslationKey: "validation.json",
		}
	case errors.As(err, &typeErr):
		verr = typeMismatch(typeErr.Field, typeErr.Type)
	default:
		if name, ok := unknownField(err); ok {
			return errors.Join(validator.ErrUnknownField, validator.ValidationErrors{{
				Field:             name,
				Message:           "extra inputs are not permitted",
				TranslationKey:    "validation.unknown_field",
				TranslationValues: map[string]any{"field": name},
			}})
		}
		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
			return err
		}
		verr = validator.ValidationError{
			Message:        err.Error(),
			TranslationKey: "validation.format",
		}
	}

	return errors.Join(validator.ErrInvalidFormat, validator.ValidationErrors{verr})
}

// unknownField extracts the key name from the error produced by
// json.Decoder.DisallowUnknownFields, which has no exported type.
func unknownField(err error) (string, bool) {
	rest, ok := strings.CutPrefix(err.Error(), `json: unknown field "`)
	if !ok {
		return "", false
	}
	return strings.TrimSuffix(rest, `"`), true
}
