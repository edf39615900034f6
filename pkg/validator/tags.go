package validator

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"

	playground "github.com/go-playground/validator/v10"
)

const patternTagPrefix = "pattern_"

// Patterns holds the expressions behind the pattern_<name> struct tags.
// It is populated at init time and must not be modified afterwards.
var Patterns = map[string]*regexp.Regexp{
	"state":    regexp.MustCompile(`^[A-Z]{2}$`),
	"country":  regexp.MustCompile(`^[A-Z]{2}$`),
	"zip":      regexp.MustCompile(`^\d{5}(-\d{4})?$`),
	"word":     regexp.MustCompile(`^\w+$`),
	"phone":    regexp.MustCompile(`^(\d{3}-\d{3}-\d{4}|\(\d{3}\) \d{3}-\d{4})$`),
	"filename": regexp.MustCompile(`^.+\..+$`),
}

// multipleOfTolerance absorbs binary floating point error, e.g. 999.99/0.01.
const multipleOfTolerance = 1e-9

// registerCustomTags panics if a tag cannot be registered.
func registerCustomTags(v *playground.Validate) {
	mustRegister(v, "multipleof", validateMultipleOf)

	for name, re := range Patterns {
		mustRegister(v, patternTagPrefix+name, matchPattern(re))
	}
}

func mustRegister(v *playground.Validate, tag string, fn playground.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validator: register %q: %v", tag, err))
	}
}

func validateMultipleOf(fl playground.FieldLevel) bool {
	step, err := strconv.ParseFloat(fl.Param(), 64)
	if err != nil || step <= 0 {
		return false
	}

	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return IsMultipleOf(field.Float(), step)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IsMultipleOf(float64(field.Int()), step)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return IsMultipleOf(float64(field.Uint()), step)
	default:
		return false
	}
}

func matchPattern(re *regexp.Regexp) playground.Func {
	return func(fl playground.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return re.MatchString(fl.Field().String())
	}
}

// IsMultipleOf reports whether value is an integer multiple of step.
func IsMultipleOf(value, step float64) bool {
	if step <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	q := value / step
	return math.Abs(q-math.Round(q)) <= multipleOfTolerance*math.Max(1, math.Abs(q))
}
