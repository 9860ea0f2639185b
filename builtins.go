// Package rematch implements the regular expression builtins of an
// embedded expression language: "s"?matches(pattern, flags),
// "s"?replace(needle, replacement, flags) and ?groups.
//
// The value built by ?matches is lazy. It is a boolean (does the whole
// input match), a sequence and a collection of the matches found in the
// input, and only does the work the host actually asks for.
package rematch

import (
	"github.com/rs/zerolog"
)

// Builtins binds the regular expression builtins to a pattern cache and
// a logger.
type Builtins struct {
	cache  *Cache
	logger zerolog.Logger
}

func NewBuiltins(opts ...option) (*Builtins, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	cache := cfg.cache
	if cache == nil {
		var err error
		if cache, err = NewCache(cfg.cacheSize, cfg.matchTimeout); err != nil {
			return nil, err
		}
	}
	return &Builtins{cache: cache, logger: cfg.logger}, nil
}

func (b *Builtins) Cache() *Cache {
	return b.cache
}

// Compile decodes letters and returns the compiled pattern, on behalf
// of op.
func (b *Builtins) Compile(op, source, letters string) (*Pattern, error) {
	flags, err := ParseFlags(op, letters)
	if err != nil {
		return nil, err
	}
	return b.cache.Compile(source, flags)
}

// Match is "subject"?matches(pattern, letters).
func (b *Builtins) Match(subject, pattern, letters string) (*Matches, error) {
	flags, err := ParseFlags("matches", letters)
	if err != nil {
		return nil, err
	}
	warnFlags(b.logger, "matches", flags, FLAG_FIRST_ONLY,
		`?matches doesn't support the "f" flag`)
	warnFlags(b.logger, "matches", flags, FLAG_REGEXP|FLAG_LITERAL,
		`?matches always uses regular expressions, "r" and "l" are ignored`)

	p, err := b.cache.Compile(pattern, flags)
	if err != nil {
		return nil, err
	}
	return p.Matcher(subject), nil
}

// Matches returns the method value of "subject"?matches. The method
// takes a pattern and optional flags.
func (b *Builtins) Matches(subject string) Method {
	return func(args ...Value) (Value, error) {
		const op = "matches"
		if err := checkArgCount(op, args, 1, 2); err != nil {
			return nil, err
		}
		pattern, err := stringArg(op, args, 0)
		if err != nil {
			return nil, err
		}
		letters, err := optionalStringArg(op, args, 1)
		if err != nil {
			return nil, err
		}
		return b.Match(subject, pattern, letters)
	}
}

// Groups is v?groups. For a Matches it returns the groups of the entire
// input match, for a single Match its own groups.
func (b *Builtins) Groups(v Value) (Sequence, error) {
	switch v := v.(type) {
	case *Matches:
		gs, err := v.Groups()
		if err != nil {
			return nil, err
		}
		return gs, nil
	case *Match:
		return v.Groups(), nil
	default:
		return nil, &ArgumentTypeError{Op: "groups", Index: -1, Got: v, Expected: "regular expression matcher"}
	}
}

var defaultBuiltins = func() *Builtins {
	b, err := NewBuiltins()
	if err != nil {
		panic(err)
	}
	return b
}()

// Compile compiles source with the flag letters through the default
// cache.
func Compile(source, letters string) (*Pattern, error) {
	return defaultBuiltins.Compile("compile", source, letters)
}

func MustCompile(source, letters string) *Pattern {
	p, err := Compile(source, letters)
	if err != nil {
		panic("rematch: Compile(`" + source + "`): " + err.Error())
	}
	return p
}

// Match is Builtins.Match with the default cache.
func Match(subject, pattern, letters string) (*Matches, error) {
	return defaultBuiltins.Match(subject, pattern, letters)
}

// Replace is Builtins.ReplaceString with the default cache.
func Replace(subject, needle, replacement, letters string) (string, error) {
	return defaultBuiltins.ReplaceString(subject, needle, replacement, letters)
}
