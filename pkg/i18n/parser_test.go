package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/i18n"
)

func TestParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, i18n.YAMLParser{}, i18n.ParserForFile("en.yaml"))
	assert.IsType(t, i18n.YAMLParser{}, i18n.ParserForFile("dir/en.YML"))
	assert.IsType(t, i18n.JSONParser{}, i18n.ParserForFile("en.json"))
	assert.Nil(t, i18n.ParserForFile("en.toml"))
	assert.Nil(t, i18n.ParserForFile("README"))
}

func TestParsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	catalog, err := i18n.YAMLParser{}.Parse(ctx, []byte("en:\n  a:\n    b: c\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"b": "c"}, catalog["en"]["a"])

	catalog, err = i18n.JSONParser{}.Parse(ctx, []byte(`{"de": {"a": "b"}}`))
	require.NoError(t, err)
	assert.Equal(t, "b", catalog["de"]["a"])

	_, err = i18n.JSONParser{}.Parse(ctx, []byte(`{`))
	assert.ErrorIs(t, err, i18n.ErrParsingFile)

	_, err = i18n.YAMLParser{}.Parse(ctx, []byte(""))
	assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)

	_, err = i18n.JSONParser{}.Parse(ctx, []byte(`{"en": "flat"}`))
	assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
}
