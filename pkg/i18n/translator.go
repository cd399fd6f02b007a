package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// DefaultLanguage is used when no other language is configured.
const DefaultLanguage = "en"

// Translator renders messages from a catalog loaded once at construction.
// Lookups use dot-separated keys into nested maps and substitute %{name}
// placeholders. A Translator is read-only after NewTranslator and safe for
// concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one has no catalog.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T returns the key for missing messages
// instead of "". Default true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every missing message.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.missingLogMode = log
	}
}

// NewTranslator loads the catalog from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, messages := range translations {
		if lang == "" || messages == nil {
			return nil, errors.Join(ErrInvalidCatalog, fmt.Errorf("language %q has no messages", lang))
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", "languages", t.SupportedLanguages())
	return t, nil
}

// SupportedLanguages lists the catalog's language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation reports whether key exists for lang, without falling back.
func (t *Translator) HasTranslation(lang, key string) bool {
	messages, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(messages, key)
	return ok
}

// T translates key. Args are name/value pairs substituted into %{name}
// placeholders:
//
//	// "welcome": "Hello, %{name}!"
//	t.T("en", "welcome", "name", "John") // "Hello, John!"
//
// An unknown language falls back to the default one. Missing messages
// render the key itself, or "" when WithFallbackToKey(false) is set.
func (t *Translator) T(lang, key string, args ...string) string {
	if s, ok := t.message(lang, key); ok {
		return substitute(s, args)
	}
	t.missing(lang, key)
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Td is like T but renders defaultValue for missing messages.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if s, ok := t.message(lang, key); ok {
		return substitute(s, args)
	}
	t.missing(lang, key)
	return substitute(defaultValue, args)
}

// N translates a plural message. It tries key.zero (n == 0), key.one
// (n == 1) and key.other in that order of relevance, then key itself.
// A "count" argument is added when args do not carry one.
//
//	// "items": {"one": "%{count} item", "other": "%{count} items"}
//	t.N("en", "items", 5) // "5 items"
func (t *Translator) N(lang, key string, n int, args ...string) string {
	if !hasArg(args, "count") {
		args = append(args[:len(args):len(args)], "count", strconv.Itoa(n))
	}

	for _, form := range pluralForms(n) {
		if s, ok := t.message(lang, key+"."+form); ok {
			return substitute(s, args)
		}
	}
	return t.T(lang, key, args...)
}

// Tc is T with the language taken from ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(LangFromContext(ctx), key, args...)
}

// Nc is N with the language taken from ctx.
func (t *Translator) Nc(ctx context.Context, key string, n int, args ...string) string {
	return t.N(LangFromContext(ctx), key, n, args...)
}

// ExportJSON returns the catalog of lang as JSON.
func (t *Translator) ExportJSON(lang string) (string, error) {
	messages, ok := t.translations[lang]
	if !ok {
		return "", errors.Join(ErrLanguageNotSupported, fmt.Errorf("language %q", lang))
	}

	b, err := json.Marshal(messages)
	if err != nil {
		return "", errors.Join(ErrMarshalingJSON, err)
	}
	return string(b), nil
}

// resolve maps lang to a language present in the catalog, falling back to
// the default language.
func (t *Translator) resolve(lang string) string {
	if _, ok := t.translations[lang]; ok {
		return lang
	}
	return t.defaultLang
}

func (t *Translator) message(lang, key string) (string, bool) {
	messages, ok := t.translations[t.resolve(lang)]
	if !ok {
		return "", false
	}
	v, ok := lookup(messages, key)
	if !ok {
		return "", false
	}

	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	default:
		return "", false
	}
}

func (t *Translator) missing(lang, key string) {
	if t.missingLogMode {
		t.logger.Warn("translation not found", "lang", lang, "key", key)
	}
}

// lookup walks a dot-separated key through nested maps.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		v, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}

		switch next := v.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

func pluralForms(n int) []string {
	switch n {
	case 0:
		return []string{"zero", "other"}
	case 1:
		return []string{"one"}
	default:
		return []string{"other"}
	}
}

func hasArg(args []string, name string) bool {
	for i := 0; i < len(args)-1; i += 2 {
		if args[i] == name {
			return true
		}
	}
	return false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} with the value paired with name in args.
// Unknown placeholders are kept; an odd trailing arg is ignored.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}
