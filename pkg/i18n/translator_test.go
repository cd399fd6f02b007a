package i18n_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"hello":   "Hello",
			"welcome": "Welcome, %{name}!",
			"items": map[string]any{
				"zero":  "No items",
				"one":   "%{count} item",
				"other": "%{count} items",
			},
			"nested": map[string]any{
				"deep": map[string]any{"greeting": "Deep hello"},
			},
			"apples": "%{count} apples",
		},
		"de": {
			"hello": "Hallo",
		},
	}}

	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewTranslator(context.Background(), nil)
	assert.ErrorIs(t, err, i18n.ErrNilAdapter)

	_, err = i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"": {}}})
	assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)

	tr := newTestTranslator(t)
	assert.Equal(t, []string{"de", "en"}, tr.SupportedLanguages())
	assert.Equal(t, "en", tr.DefaultLanguage())
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.Equal(t, "Hello", tr.T("en", "hello"))
	assert.Equal(t, "Hallo", tr.T("de", "hello"))
	assert.Equal(t, "Welcome, John!", tr.T("en", "welcome", "name", "John"))
	assert.Equal(t, "Welcome, %{name}!", tr.T("en", "welcome"), "unknown placeholders are kept")
	assert.Equal(t, "Deep hello", tr.T("en", "nested.deep.greeting"))

	t.Run("unknown language uses default", func(t *testing.T) {
		assert.Equal(t, "Hello", tr.T("fr", "hello"))
	})

	t.Run("missing key renders key", func(t *testing.T) {
		assert.Equal(t, "missing.key", tr.T("en", "missing.key"))
		assert.Equal(t, "nested", tr.T("en", "nested"), "maps are not messages")
	})

	t.Run("missing key without fallback", func(t *testing.T) {
		strict := newTestTranslator(t, i18n.WithFallbackToKey(false))
		assert.Equal(t, "", strict.T("en", "missing.key"))
	})

	t.Run("German catalog has no welcome message", func(t *testing.T) {
		assert.Equal(t, "welcome", tr.T("de", "welcome"))
	})
}

func TestTranslator_Td(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.Equal(t, "Hello", tr.Td("en", "hello", "fallback"))
	assert.Equal(t, "Hi Ann", tr.Td("en", "missing", "Hi %{name}", "name", "Ann"))
}

func TestTranslator_N(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.Equal(t, "No items", tr.N("en", "items", 0))
	assert.Equal(t, "1 item", tr.N("en", "items", 1))
	assert.Equal(t, "5 items", tr.N("en", "items", 5))
	assert.Equal(t, "3 apples", tr.N("en", "apples", 3), "plain messages still get the count")
	assert.Equal(t, "many items", tr.N("en", "items", 7, "count", "many"), "explicit count wins")
}

func TestTranslator_HasTranslation(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.True(t, tr.HasTranslation("en", "welcome"))
	assert.True(t, tr.HasTranslation("en", "items"))
	assert.False(t, tr.HasTranslation("de", "welcome"))
	assert.False(t, tr.HasTranslation("fr", "hello"), "no fallback")
}

func TestTranslator_Context(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	ctx := i18n.WithLang(context.Background(), "de")
	assert.Equal(t, "Hallo", tr.Tc(ctx, "hello"))
	assert.Equal(t, "2 items", tr.Nc(context.Background(), "items", 2))
	assert.Equal(t, "en", i18n.LangFromContext(context.Background()))
}

func TestTranslator_ExportJSON(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	out, err := tr.ExportJSON("de")
	require.NoError(t, err)
	assert.JSONEq(t, `{"hello":"Hallo"}`, out)

	_, err = tr.ExportJSON("fr")
	assert.ErrorIs(t, err, i18n.ErrLanguageNotSupported)
}

func TestTranslator_MissingLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	tr := newTestTranslator(t, i18n.WithLogger(logger), i18n.WithMissingTranslationsLogging(true))

	tr.T("en", "nope")
	assert.Contains(t, buf.String(), "translation not found")
	assert.Contains(t, buf.String(), "key=nope")
}
