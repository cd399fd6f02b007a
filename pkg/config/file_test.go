package config_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/config"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		s := config.DefaultSettings()
		require.NoError(t, config.LoadFile(ctx, "testdata/settings.yaml", &s))

		assert.Equal(t, "de", s.Lang)
		assert.Equal(t, 4, s.Number.OverallDigitLimit)
		assert.Equal(t, 2, s.Number.DecimalDigitLimit)
		assert.Equal(t, "si", s.Number.Units)
		assert.True(t, s.Number.UseColors, "keys absent from the file keep their value")
		assert.Equal(t, []string{"example.com", "example.org"}, s.Email.Domains)
		assert.Equal(t, ",;", s.Tags.Separators)
		assert.NoError(t, s.Validate())
	})

	t.Run("toml", func(t *testing.T) {
		t.Parallel()
		s := config.DefaultSettings()
		require.NoError(t, config.LoadFile(ctx, "testdata/settings.toml", &s))

		assert.Equal(t, "debug", s.LogLevel)
		assert.Equal(t, 6, s.Number.OverallDigitLimit)
		assert.Equal(t, 100, s.Number.DecimalDigitLimit)
		assert.False(t, s.Number.UseColors)
		assert.Equal(t, "4-3-4-4", s.Phone.Format)
		assert.False(t, s.Phone.International)
		assert.NoError(t, s.Validate())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		s := config.DefaultSettings()
		require.NoError(t, config.LoadFile(ctx, "testdata/settings.json", &s))

		assert.True(t, s.URL.DomainOnly)
		assert.False(t, s.URL.PathIncluded)
		assert.Equal(t, 12, s.Password.MinLength)
		assert.Equal(t, 1, s.Password.MinUppercase)
		assert.Equal(t, "!?", s.Password.Symbols)
		assert.True(t, s.Positive.ZeroIncluded)
		assert.Equal(t, 14, s.Password.StrengthOptions()[1].MinLength)
	})
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var s config.Settings

	assert.ErrorIs(t, config.LoadFile(ctx, "testdata/settings.ini", &s), config.ErrUnsupportedFormat)
	assert.ErrorIs(t, config.LoadFile(ctx, "testdata/missing.yaml", &s), config.ErrReadingFile)
	assert.ErrorIs(t, config.LoadFile(ctx, "testdata/broken.yaml", &s), config.ErrDecodingFile)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, config.LoadFile(canceled, "testdata/settings.yaml", &s), context.Canceled)
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]config.Format{
		"a.yaml":     config.FormatYAML,
		"a.YML":      config.FormatYAML,
		"dir/a.toml": config.FormatTOML,
		"a.json":     config.FormatJSON,
	}
	for path, want := range tests {
		got, err := config.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := config.FormatFromPath("settings")
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestDecode_UnknownFormat(t *testing.T) {
	t.Parallel()

	var s config.Settings
	assert.ErrorIs(t, config.Decode([]byte("{}"), config.Format("xml"), &s), config.ErrUnsupportedFormat)
}
