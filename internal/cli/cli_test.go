package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/internal/cli"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestNumber(t *testing.T) {
	t.Run("formats values in argument order", func(t *testing.T) {
		out, _, err := run(t, "number", "--digits", "4", "--decimals", "2", "98765432", "1234.5678", "1234")
		require.NoError(t, err)
		assert.Equal(t, "98.76M\n1,234\n1,234\n", out)
	})

	t.Run("negative values after flag terminator", func(t *testing.T) {
		out, _, err := run(t, "number", "--digits", "3", "--", "1234567", "-0.5")
		require.NoError(t, err)
		assert.Equal(t, "1.23M\n-0.5\n", out)
	})

	t.Run("documented examples run", func(t *testing.T) {
		cmd := cli.NewRootCommand(&bytes.Buffer{}, &bytes.Buffer{})
		number, _, err := cmd.Find([]string{"number"})
		require.NoError(t, err)

		for _, line := range strings.Split(number.Example, "\n") {
			args := strings.Fields(line)
			require.Equal(t, "inputkit", args[0])
			_, _, err := run(t, args[1:]...)
			assert.NoError(t, err, line)
		}
	})

	t.Run("huge decimal limit", func(t *testing.T) {
		out, _, err := run(t, "number", "--digits", "4", "--decimals", "2000000000", "0.5")
		require.NoError(t, err)
		assert.Equal(t, "0.500\n", out)
	})

	t.Run("settings from environment", func(t *testing.T) {
		t.Setenv("INPUTKIT_NUMBER_OVERALL_DIGIT_LIMIT", "3")
		t.Setenv("INPUTKIT_NUMBER_DECIMAL_DIGIT_LIMIT", "0")
		out, _, err := run(t, "number", "-j", "1", "--", "-1234567", "123456789012")
		require.NoError(t, err)
		assert.Equal(t, "-1.23M\n123B\n", out)
	})

	t.Run("invalid values fail after the rest is printed", func(t *testing.T) {
		out, errOut, err := run(t, "number", "12", "abc", "7")
		require.Error(t, err)
		assert.Equal(t, "12\n7\n", out)
		assert.Contains(t, errOut, "abc: ")
	})

	t.Run("unit overflow", func(t *testing.T) {
		_, errOut, err := run(t, "number", "--digits", "1", "--decimals", "0", "1234567890123")
		require.Error(t, err)
		assert.Contains(t, errOut, "1234567890123: ")
	})

	t.Run("unknown unit table", func(t *testing.T) {
		_, _, err := run(t, "number", "--units", "binary", "1")
		require.Error(t, err)
	})

	t.Run("no color outside a terminal", func(t *testing.T) {
		out, _, err := run(t, "number", "--", "-5")
		require.NoError(t, err)
		assert.NotContains(t, out, "\033[")
	})
}

func TestPhone(t *testing.T) {
	out, _, err := run(t, "phone", "+123 45 678 9012", "--format", "3-3-4", "--national", "555-123-4567")
	require.Error(t, err, "first number does not match 3-3-4")
	assert.Equal(t, "123-4567\n", out)

	out, _, err = run(t, "phone", "+123 45 678 9012")
	require.NoError(t, err)
	assert.Equal(t, "123-45-678-9012\n", out)
}

func TestURL(t *testing.T) {
	out, _, err := run(t, "url", "--domain-only", "https://Example.com/docs?page=2")
	require.NoError(t, err)
	assert.Equal(t, "example.com/docs?page=2\n", out)

	out, _, err = run(t, "url", "--no-path", "https://Example.com:443/x?y=1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com\n", out)

	out, _, err = run(t, "url", "--lenient", "Example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com\n", out)

	_, errOut, err := run(t, "url", "ftp://example.com")
	require.Error(t, err)
	assert.Contains(t, errOut, "ftp://example.com: ")
}

func TestTags(t *testing.T) {
	out, _, err := run(t, "tags", "Go,CLI,go", "tools")
	require.NoError(t, err)
	assert.Equal(t, "go\ncli\ntools\n", out)

	out, _, err = run(t, "tags", "--raw", "-s", ";", "a,b;c")
	require.NoError(t, err)
	assert.Equal(t, "a,b\nc\n", out)

	_, _, err = run(t, "tags", "-s", "ab", "a,b")
	require.Error(t, err)
}

func TestPassword(t *testing.T) {
	t.Run("valid password", func(t *testing.T) {
		out, _, err := run(t, "password", "Abcdefg1!")
		require.NoError(t, err)
		assert.Equal(t, "strength: Weak\nvalid\n", out)
	})

	t.Run("policy failures are translated", func(t *testing.T) {
		out, errOut, err := run(t, "--lang", "de", "password", "abc")
		require.Error(t, err)
		assert.Contains(t, out, "Weak")
		assert.Contains(t, errOut, "password: ")
		assert.NotContains(t, errOut, "must")
	})

	t.Run("minimum strength", func(t *testing.T) {
		_, errOut, err := run(t, "password", "--min-strength", "2", "Abcdefg1!")
		require.Error(t, err)
		assert.Contains(t, errOut, "password: must be at least Very Strong")
	})
}

func TestEmail(t *testing.T) {
	out, errOut, err := run(t, "email", "--domain", "example.com", "jane@example.com", "joe@other.org", "nope")
	require.Error(t, err)
	assert.Equal(t, "jane@example.com: valid\n", out)
	assert.Contains(t, errOut, "joe@other.org: must be an email address in one of: example.com")
	assert.Contains(t, errOut, "nope: must be a valid email address")

	t.Setenv("INPUTKIT_EMAIL_DOMAINS", "example.com,example.org")
	out, _, err = run(t, "email", "joe@Example.org")
	require.NoError(t, err)
	assert.Equal(t, "joe@Example.org: valid\n", out)
}

func TestIP(t *testing.T) {
	out, errOut, err := run(t, "ip", "10.0.0.1", "::1", "300.1.1.1")
	require.Error(t, err)
	assert.Equal(t, "10.0.0.1: valid\n::1: valid\n", out)
	assert.Contains(t, errOut, "300.1.1.1: must be a valid IP address")

	_, errOut, err = run(t, "ip", "-4", "::1")
	require.Error(t, err)
	assert.Contains(t, errOut, "::1: must be a valid IPv4 address")
}

func TestPositive(t *testing.T) {
	out, _, err := run(t, "positive", "5", "0.1")
	require.NoError(t, err)
	assert.Equal(t, "5 is positive\n0.1 is positive\n", out)

	out, _, err = run(t, "positive", "0")
	require.Error(t, err)
	assert.Equal(t, "0 is not positive\n", out)

	out, _, err = run(t, "positive", "--zero-included", "0")
	require.NoError(t, err)
	assert.Equal(t, "0 is positive\n", out)

	_, errOut, err := run(t, "positive", "x")
	require.Error(t, err)
	assert.Contains(t, errOut, "x: ")
}

func TestSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("number:\n  overall_digit_limit: 4\n  decimal_digit_limit: 0\n  units: si\n"), 0o600))

	out, _, err := run(t, "--config", path, "number", "1234567", "1234567890123")
	require.NoError(t, err)
	assert.Equal(t, "1,234K\n1,234G\n", out)
}

func TestInvalidSettings(t *testing.T) {
	t.Setenv("INPUTKIT_NUMBER_POSITIVE_COLOR", "green")

	_, errOut, err := run(t, "number", "1")
	require.Error(t, err)
	assert.Contains(t, errOut, "number.positive_color: must be a hex color like #1e90ff")
}

func TestUnknownEnvironmentFlag(t *testing.T) {
	_, _, err := run(t, "--env", "qa", "number", "1")
	require.Error(t, err)
}

func TestLanguage(t *testing.T) {
	out, _, err := run(t, "--lang", "de-AT", "positive", "2")
	require.NoError(t, err)
	assert.Equal(t, "2 ist positiv\n", out)

	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	out, _, err = run(t, "--lang", "auto", "positive", "2")
	require.NoError(t, err)
	assert.Equal(t, "2 ist positiv\n", out)

	out, _, err = run(t, "--lang", "fr", "positive", "2")
	require.NoError(t, err)
	assert.Equal(t, "2 is positive\n", out)
}
