package rematch

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		letters  string
		expected Flags
	}{
		{"empty", "", 0},
		{"case insensitive", "i", FLAG_CASE_INSENSITIVE},
		{"first only", "f", FLAG_FIRST_ONLY},
		{"regexp", "r", FLAG_REGEXP},
		{"literal", "l", FLAG_LITERAL},
		{"engine modes", "msc", FLAG_MULTILINE | FLAG_DOTALL | FLAG_COMMENTS},
		{"unicode case", "iu", FLAG_CASE_INSENSITIVE | FLAG_UNICODE_CASE},
		{"repeated letters", "iii", FLAG_CASE_INSENSITIVE},
		{"all", "imscurlf", FLAG_CASE_INSENSITIVE | FLAG_MULTILINE | FLAG_DOTALL |
			FLAG_COMMENTS | FLAG_UNICODE_CASE | FLAG_REGEXP | FLAG_LITERAL | FLAG_FIRST_ONLY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := ParseFlags("test", tt.letters)
			require.NoError(t, err)
			require.Equal(t, tt.expected, flags)
		})
	}
}

func TestParseFlags_OrderIndependent(t *testing.T) {
	a, err := ParseFlags("test", "rif")
	require.NoError(t, err)
	b, err := ParseFlags("test", "fir")
	require.NoError(t, err)
	c, err := ParseFlags("test", "ffrri")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
	assert.Equal(t, "irf", a.String())
}

func TestParseFlags_Unknown(t *testing.T) {
	for _, letters := range []string{"x", "ix", "xi", "rifX", "I", " ", "i-f"} {
		t.Run(letters, func(t *testing.T) {
			_, err := ParseFlags("replace", letters)
			var flagErr *InvalidFlagError
			require.ErrorAs(t, err, &flagErr)
			assert.Equal(t, "replace", flagErr.Op)
			assert.Equal(t, letters, flagErr.Flags)
			assert.Contains(t, err.Error(), "?replace")
		})
	}
}

func TestFlags_Has(t *testing.T) {
	flags := FLAG_REGEXP | FLAG_FIRST_ONLY
	assert.True(t, flags.Has(FLAG_REGEXP))
	assert.True(t, flags.Has(FLAG_REGEXP|FLAG_FIRST_ONLY))
	assert.False(t, flags.Has(FLAG_REGEXP|FLAG_LITERAL))
}

func TestWarnFlags(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	warnFlags(logger, "matches", FLAG_CASE_INSENSITIVE, FLAG_FIRST_ONLY, "unused")
	require.Zero(t, buf.Len())

	warnFlags(logger, "matches", FLAG_CASE_INSENSITIVE|FLAG_FIRST_ONLY, FLAG_FIRST_ONLY, "unused")
	require.Contains(t, buf.String(), `"level":"warn"`)
	require.Contains(t, buf.String(), `"op":"matches"`)
	require.Contains(t, buf.String(), `"ignored":"f"`)
}
