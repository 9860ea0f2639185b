package rematch

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuiltins(t *testing.T) (*Builtins, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	b, err := NewBuiltins(WithCacheSize(16), WithLogger(zerolog.New(&buf)))
	require.NoError(t, err)
	return b, &buf
}

func TestBuiltins_Matches_ArgumentCount(t *testing.T) {
	b, _ := newTestBuiltins(t)
	method := b.Matches("abc")

	tests := []struct {
		name string
		args []Value
		ok   bool
	}{
		{"no arguments", nil, false},
		{"pattern", []Value{"a.c"}, true},
		{"pattern and flags", []Value{"A.C", "i"}, true},
		{"too many", []Value{"a", "i", "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := method(tt.args...)
			if !tt.ok {
				var countErr *ArgumentCountError
				require.ErrorAs(t, err, &countErr)
				assert.Equal(t, "matches", countErr.Op)
				assert.Equal(t, 1, countErr.Min)
				assert.Equal(t, 2, countErr.Max)
				assert.Contains(t, err.Error(), "1 to 2")
				return
			}
			require.NoError(t, err)
			ok, err := v.(Boolean).AsBoolean()
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

func TestBuiltins_Matches_ArgumentType(t *testing.T) {
	b, _ := newTestBuiltins(t)
	method := b.Matches("abc")

	_, err := method(42)
	var typeErr *ArgumentTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, 0, typeErr.Index)
	assert.Contains(t, err.Error(), "argument #1")
	assert.Contains(t, err.Error(), "int (42)")

	_, err = method("a", nil)
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, 1, typeErr.Index)

	_, err = method(Absent)
	require.ErrorAs(t, err, &typeErr)

	// any scalar converts
	v, err := method(String("abc"), Present("i"))
	require.NoError(t, err)
	require.IsType(t, &Matches{}, v)
}

func TestBuiltins_Matches_Errors(t *testing.T) {
	b, _ := newTestBuiltins(t)

	_, err := b.Matches("abc")("a", "iz")
	var flagErr *InvalidFlagError
	require.ErrorAs(t, err, &flagErr)
	assert.Equal(t, 'z', flagErr.Flag)

	_, err = b.Matches("abc")("(")
	var patErr *InvalidPatternError
	require.ErrorAs(t, err, &patErr)
}

func TestBuiltins_Matches_FirstOnlyWarning(t *testing.T) {
	b, logs := newTestBuiltins(t)

	withF, err := b.Match("a1b2", `\d`, "f")
	require.NoError(t, err)
	require.Contains(t, logs.String(), `doesn't support the \"f\" flag`)

	without, err := b.Match("a1b2", `\d`, "")
	require.NoError(t, err)

	n1, err := withF.Size()
	require.NoError(t, err)
	n2, err := without.Size()
	require.NoError(t, err)
	require.Equal(t, 2, n1)
	require.Equal(t, n2, n1)

	logs.Reset()
	_, err = b.Match("a", `a`, "r")
	require.NoError(t, err)
	require.Contains(t, logs.String(), `"ignored":"r"`)
}

func TestBuiltins_Groups(t *testing.T) {
	b, _ := newTestBuiltins(t)

	ms, err := b.Match("2023-01", `(\d+)-(\d+)`, "")
	require.NoError(t, err)

	seq, err := b.Groups(ms)
	require.NoError(t, err)
	v, err := seq.Get(1)
	require.NoError(t, err)
	s, err := v.(Scalar).AsString()
	require.NoError(t, err)
	require.Equal(t, "2023", s)

	m, err := ms.Get(0)
	require.NoError(t, err)
	seq, err = b.Groups(m)
	require.NoError(t, err)
	size, err := seq.Size()
	require.NoError(t, err)
	require.Equal(t, 3, size)

	_, err = b.Groups("2023-01")
	var typeErr *ArgumentTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Contains(t, err.Error(), "regular expression matcher")
}

func TestBuiltins_Match_AsScalar(t *testing.T) {
	ms, err := Match("foo=1, bar=2", `(\w+)=(\d)`, "")
	require.NoError(t, err)

	var got []string
	it := ms.Iterator()
	for {
		ok, err := it.HasNext()
		require.NoError(t, err)
		if !ok {
			break
		}
		v, err := it.Next()
		require.NoError(t, err)
		s, err := v.(Scalar).AsString()
		require.NoError(t, err)
		got = append(got, s)
	}
	require.Equal(t, []string{"foo=1", "bar=2"}, got)
}

func TestNewBuiltins_SharedCache(t *testing.T) {
	cache, err := NewCache(4, 0)
	require.NoError(t, err)

	b1, err := NewBuiltins(WithCache(cache))
	require.NoError(t, err)
	b2, err := NewBuiltins(WithCache(cache), WithCacheSize(0))
	require.NoError(t, err)
	require.Same(t, b1.Cache(), b2.Cache())

	_, err = b1.Match("x", "x", "")
	require.NoError(t, err)
	require.Equal(t, 1, b2.Cache().Len())

	_, err = NewBuiltins(WithCacheSize(0))
	require.Error(t, err)
}
