package rematch

import (
	"strings"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
)

// Pattern is a compiled regular expression plus the flags it was
// compiled with. It is immutable and safe for concurrent use.
type Pattern struct {
	source string
	flags  Flags
	engine engine
}

// engine is the part of the regex engine Matches and Replace rely on.
type engine interface {
	// matchEntire tries to match the whole input, it returns nil if the
	// input doesn't match.
	matchEntire(s string) (*regexp2.Match, error)
	// find returns the first match in s, or the one following prev if
	// prev is not nil. It returns nil when there are no more matches.
	find(s string, prev *regexp2.Match) (*regexp2.Match, error)
	replace(s, repl string, count int) (string, error)
	// groupCount is the number of capturing groups, excluding group 0.
	groupCount() int
}

var _ engine = (*regexp2Engine)(nil)

type regexp2Engine struct {
	source     string
	opts       regexp2.RegexOptions
	timeout    time.Duration
	unanchored *regexp2.Regexp

	// The whole input form is compiled on the first matchEntire, most
	// patterns are only ever used to find or replace.
	anchoredOnce sync.Once
	anchored     *regexp2.Regexp
	anchoredErr  error
}

func newRegexp2Engine(source string, flags Flags, timeout time.Duration) (*regexp2Engine, error) {
	opts := regexOptions(flags)
	unanchored, err := regexp2.Compile(source, opts)
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		unanchored.MatchTimeout = timeout
	}
	return &regexp2Engine{source: source, opts: opts, timeout: timeout, unanchored: unanchored}, nil
}

// compileAnchored wraps the source in \A(?:...)\z. When comments mode is
// on, from the flags or inline with (?x), a trailing "#..." swallows the
// closing parenthesis; a newline before it ends the comment.
func (e *regexp2Engine) compileAnchored() (*regexp2.Regexp, error) {
	wrap := func(newline bool) string {
		var sb strings.Builder
		sb.WriteString(`\A(?:`)
		sb.WriteString(e.source)
		if newline {
			sb.WriteByte('\n')
		}
		sb.WriteString(`)\z`)
		return sb.String()
	}

	comments := e.opts&regexp2.IgnorePatternWhitespace != 0
	re, err := regexp2.Compile(wrap(comments), e.opts)
	if err != nil && !comments {
		re, err = regexp2.Compile(wrap(true), e.opts)
	}
	if err != nil {
		return nil, err
	}
	if e.timeout > 0 {
		re.MatchTimeout = e.timeout
	}
	return re, nil
}

func regexOptions(flags Flags) regexp2.RegexOptions {
	var opts regexp2.RegexOptions
	if flags&FLAG_CASE_INSENSITIVE != 0 {
		opts |= regexp2.IgnoreCase
	}
	if flags&FLAG_MULTILINE != 0 {
		opts |= regexp2.Multiline
	}
	if flags&FLAG_DOTALL != 0 {
		opts |= regexp2.Singleline
	}
	if flags&FLAG_COMMENTS != 0 {
		opts |= regexp2.IgnorePatternWhitespace
	}
	// FLAG_UNICODE_CASE needs nothing, IgnoreCase already folds with the
	// unicode tables.
	return opts
}

func (e *regexp2Engine) matchEntire(s string) (*regexp2.Match, error) {
	e.anchoredOnce.Do(func() {
		e.anchored, e.anchoredErr = e.compileAnchored()
	})
	if e.anchoredErr != nil {
		return nil, &InvalidPatternError{Pattern: e.source, Err: e.anchoredErr}
	}
	return e.anchored.FindStringMatch(s)
}

func (e *regexp2Engine) find(s string, prev *regexp2.Match) (*regexp2.Match, error) {
	if prev == nil {
		return e.unanchored.FindStringMatch(s)
	}
	return e.unanchored.FindNextMatch(prev)
}

func (e *regexp2Engine) replace(s, repl string, count int) (string, error) {
	return e.unanchored.Replace(s, repl, -1, count)
}

func (e *regexp2Engine) groupCount() int {
	return len(e.unanchored.GetGroupNumbers()) - 1
}

func compilePattern(source string, flags Flags, timeout time.Duration) (*Pattern, error) {
	flags &= FLAG_COMPILE_MASK
	e, err := newRegexp2Engine(source, flags, timeout)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: source, Flags: flags, Err: err}
	}
	return &Pattern{source: source, flags: flags, engine: e}, nil
}

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string {
	return p.source
}

// Flags returns the compile flags of the pattern.
func (p *Pattern) Flags() Flags {
	return p.flags
}

// NumGroups returns the number of capturing groups in the pattern.
func (p *Pattern) NumGroups() int {
	return p.engine.groupCount()
}

// Matcher returns a lazy match collection of p over input.
func (p *Pattern) Matcher(input string) *Matches {
	return newMatches(p, input)
}

// ReplaceAll replaces every match of p in s with repl. repl may refer to
// groups as $1, ${1} or ${name}.
func (p *Pattern) ReplaceAll(s, repl string) (string, error) {
	return p.replace(s, repl, -1)
}

// ReplaceFirst is ReplaceAll restricted to the first match.
func (p *Pattern) ReplaceFirst(s, repl string) (string, error) {
	return p.replace(s, repl, 1)
}

func (p *Pattern) replace(s, repl string, count int) (string, error) {
	out, err := p.engine.replace(s, repl, count)
	if err != nil {
		return "", &MatchEvaluationError{Op: "replace", Pattern: p.source, Err: err}
	}
	return out, nil
}
