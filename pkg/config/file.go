package config

import (
	"errors"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

// LoadFile populates v from a dotenv-style settings file merged under the
// process environment. File keys are matched case-insensitively against the
// env tags of T, and a key that names no field fails with ErrUnknownKey.
// Process environment variables take precedence over file values.
// Unlike Load, the result is not cached.
func LoadFile[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}

	known := envKeys(reflect.TypeOf(*v), "")
	var unknown validator.ValidationErrors

	environment := environMap()
	for key, value := range values {
		name := strings.ToUpper(key)
		if !slices.Contains(known, name) {
			unknown.Add(unknownKey(strings.ToLower(key)))
			continue
		}
		if _, set := environment[name]; !set {
			environment[name] = value
		}
	}
	if !unknown.IsEmpty() {
		return errors.Join(ErrUnknownKey, unknown)
	}

	if err := env.ParseWithOptions(v, env.Options{Environment: environment}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return validate(v)
}

// LoadYAML decodes a YAML settings file onto v and validates the result.
// Fields absent from the file keep the values v already holds, so callers
// seed v with defaults first. Keys that name no field fail with ErrUnknownKey.
func LoadYAML[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if unknown := unknownYAMLKeys(err); !unknown.IsEmpty() {
			return errors.Join(ErrUnknownKey, unknown)
		}
		return errors.Join(ErrParsingConfig, err)
	}
	return validate(v)
}

// envKeys lists the variable names T reads, following nested structs and envPrefix.
func envKeys(t reflect.Type, prefix string) []string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	var keys []string
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if name, _, _ := strings.Cut(f.Tag.Get("env"), ","); name != "" {
			keys = append(keys, prefix+name)
			continue
		}
		if p, ok := f.Tag.Lookup("envPrefix"); ok {
			keys = append(keys, envKeys(f.Type, prefix+p)...)
		}
	}
	return keys
}

func environMap() map[string]string {
	m := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			m[key] = value
		}
	}
	return m
}

func unknownYAMLKeys(err error) validator.ValidationErrors {
	var typeErr *yaml.TypeError
	if !errors.As(err, &typeErr) {
		return nil
	}

	var unknown validator.ValidationErrors
	for _, msg := range typeErr.Errors {
		// yaml.v3 reports "line N: field X not found in type T"
		_, rest, ok := strings.Cut(msg, "field ")
		if !ok {
			continue
		}
		if name, _, found := strings.Cut(rest, " not found in type"); found {
			unknown.Add(unknownKey(name))
		}
	}
	return unknown
}

func unknownKey(name string) validator.ValidationError {
	return validator.ValidationError{
		Field:             name,
		Message:           "extra inputs are not permitted",
		TranslationKey:    "validation.unknown_field",
		TranslationValues: map[string]any{"field": name},
	}
}
