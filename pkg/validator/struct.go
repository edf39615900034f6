package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

// V is the singleton go-playground engine used by Struct.
// It is configured once in init and is safe for concurrent use.
var V *playground.Validate

func init() {
	V = playground.New(playground.WithRequiredStructEnabled())
	V.RegisterTagNameFunc(jsonFieldName)
	registerCustomTags(V)
}

// Struct validates the tags of a struct (or pointer to struct) and returns
// ValidationErrors with JSON field paths relative to v.
func Struct(v any) error {
	err := V.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	root := rootName(v)
	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, toValidationError(fieldPath(root, fe.Namespace()), fe))
	}
	return errs
}

// Var validates a single value against a tag string, reporting failures under field.
func Var(field string, value any, tag string) error {
	err := V.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, toValidationError(field, fe))
	}
	return errs
}

func jsonFieldName(f reflect.StructField) string {
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

func rootName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}

// fieldPath strips the root struct name go-playground puts in front of every namespace.
func fieldPath(root, namespace string) string {
	if root != "" && strings.HasPrefix(namespace, root+".") {
		return namespace[len(root)+1:]
	}
	return namespace
}

func toValidationError(path string, fe playground.FieldError) ValidationError {
	tag := fe.Tag()
	key := "validation." + tag
	if strings.HasPrefix(tag, patternTagPrefix) {
		key = "validation.pattern"
	}

	values := map[string]any{"field": path}
	if fe.Param() != "" {
		values["param"] = fe.Param()
	}

	return ValidationError{
		Field:             path,
		Message:           message(fe),
		TranslationKey:    key,
		TranslationValues: values,
	}
}

// message returns a human-readable message for a go-playground field error.
func message(fe playground.FieldError) string {
	kind := fe.Kind()
	isString := kind == reflect.String
	isCollection := kind == reflect.Slice || kind == reflect.Array || kind == reflect.Map

	switch tag := fe.Tag(); tag {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "url", "http_url":
		return "must be a valid URL"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "min":
		switch {
		case isString:
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		case isCollection:
			return fmt.Sprintf("must have at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		switch {
		case isString:
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		case isCollection:
			return fmt.Sprintf("must have at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		if isString {
			return fmt.Sprintf("must be exactly %s characters long", fe.Param())
		}
		return fmt.Sprintf("must have exactly %s items", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "multipleof":
		return fmt.Sprintf("must be a multiple of %s", fe.Param())
	default:
		if name, ok := strings.CutPrefix(tag, patternTagPrefix); ok {
			if re, found := Patterns[name]; found {
				return fmt.Sprintf("must match pattern %s", re.String())
			}
		}
		return fmt.Sprintf("failed validation: %s", tag)
	}
}
