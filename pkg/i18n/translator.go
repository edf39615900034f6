package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = "en"

// Translator resolves message keys loaded through a TranslationAdapter.
// It is safe for concurrent use.
type Translator struct {
	mu             sync.RWMutex
	translations   map[string]map[string]any
	adapter        TranslationAdapter
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads translations from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		adapter:       adapter,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload fetches translations from the adapter again and swaps them in.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	for lang, m := range translations {
		if lang == "" {
			return errors.New("empty language code found")
		}
		if m == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}

	t.mu.Lock()
	t.translations = translations
	t.mu.Unlock()

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return nil
}

// SupportedLanguages returns the sorted language codes that have translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// HasTranslation reports whether lang has a string template for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from
// key-value pairs in args. Missing keys fall back to the key itself unless
// WithFallbackToKey(false) is set, in which case "" is returned.
//
//	tr.T("en", "greeting", "name", "John") // "Hello, John!"
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	out, _ := substitute(tmpl, pairs(args))
	return out
}

// Td is T with an explicit default template used when key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		tmpl = defaultValue
	}
	out, _ := substitute(tmpl, pairs(args))
	return out
}

// Tc translates key in the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// lookup tries lang, then its base language ("es-MX" -> "es"), then the
// default language.
func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, l := range []string{lang, baseLanguage(lang), t.defaultLang} {
		if l == "" {
			continue
		}
		m, ok := t.translations[l]
		if !ok {
			continue
		}
		if s, ok := resolve(m, key); ok {
			return s, true
		}
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return "", false
}

// baseLanguage returns the ISO 639 base of a BCP 47 tag, or "" when lang
// does not parse.
func baseLanguage(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}

// resolve walks m along the dot-separated key.
func resolve(m map[string]any, key string) (string, bool) {
	var current any = m
	for part := range strings.SplitSeq(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		if current, ok = node[part]; !ok {
			return "", false
		}
	}
	s, ok := current.(string)
	return s, ok
}

func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute fills %{name} placeholders from params. Unknown placeholders
// are kept verbatim and reported by complete=false.
func substitute(tmpl string, params map[string]string) (out string, complete bool) {
	complete = true
	out = paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		complete = false
		return match
	})
	return out, complete
}
