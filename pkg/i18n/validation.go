package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewValidationTranslator returns a Translator loaded with the built-in
// validation message catalogs.
func NewValidationTranslator(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, &FSAdapter{FS: locales, Dir: "locales"}, options...)
}

// Errors returns a copy of errs with each Message translated into lang by its
// TranslationKey. Messages whose key is unknown, or whose template needs a
// value the error does not carry, are left as they are.
func (t *Translator) Errors(lang string, errs validator.ValidationErrors) validator.ValidationErrors {
	if errs == nil {
		return nil
	}

	out := make(validator.ValidationErrors, 0, len(errs))
	for _, e := range errs {
		if tmpl, ok := t.lookup(lang, e.TranslationKey); ok {
			if msg, complete := substitute(tmpl, params(e.TranslationValues)); complete {
				e.Message = msg
			}
		}
		out = append(out, e)
	}
	return out
}

// LocalizeError translates the validation errors carried by err into lang.
// Sentinel errors joined with them are preserved for errors.Is. Errors
// without validation details are returned unchanged.
func (t *Translator) LocalizeError(lang string, err error) error {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return err
	}

	localized := t.Errors(lang, verrs)
	var sentinels []error
	for _, s := range []error{
		validator.ErrValidationFailed,
		validator.ErrFieldRequired,
		validator.ErrUnknownField,
		validator.ErrInvalidFormat,
	} {
		if errors.Is(err, s) {
			sentinels = append(sentinels, s)
		}
	}
	if len(sentinels) == 0 {
		return localized
	}
	return errors.Join(append(sentinels, localized)...)
}

func params(values map[string]any) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		switch val := v.(type) {
		case string:
			out[k] = val
		case []string:
			out[k] = strings.Join(val, ", ")
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	return out
}
