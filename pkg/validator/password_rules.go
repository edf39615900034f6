package validator

import (
	"strings"
	"unicode"
)

// DefaultSpecialChars is the set accepted by ContainsSpecialChar when none is given.
const DefaultSpecialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

func ContainsUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.IndexFunc(value, unicode.IsUpper) >= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must contain at least one uppercase letter",
			TranslationKey: "validation.password_uppercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ContainsLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.IndexFunc(value, unicode.IsLower) >= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must contain at least one lowercase letter",
			TranslationKey: "validation.password_lowercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ContainsDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.IndexFunc(value, unicode.IsDigit) >= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must contain at least one digit",
			TranslationKey: "validation.password_digit",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ContainsSpecialChar requires at least one rune from set.
// An empty set falls back to DefaultSpecialChars.
func ContainsSpecialChar(field, value, set string) Rule {
	if set == "" {
		set = DefaultSpecialChars
	}
	return Rule{
		Check: func() bool {
			return strings.ContainsAny(value, set)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must contain at least one special character",
			TranslationKey: "validation.password_special",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": set,
			},
		},
	}
}

// PasswordComposition bundles the four composition rules in their check order.
func PasswordComposition(field, value string) []Rule {
	return []Rule{
		ContainsUppercase(field, value),
		ContainsLowercase(field, value),
		ContainsDigit(field, value),
		ContainsSpecialChar(field, value, DefaultSpecialChars),
	}
}
