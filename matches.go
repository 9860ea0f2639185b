package rematch

import (
	"errors"
	"iter"

	"github.com/dlclark/regexp2"
)

type ScanState int

const (
	// No match has been looked for yet.
	STATE_FRESH ScanState = iota
	// Some matches were found by iterating, the input is not exhausted.
	STATE_PARTIAL
	// Every match has been found and cached, the input won't be scanned
	// again.
	STATE_FULL
)

func (s ScanState) String() string {
	switch s {
	case STATE_FRESH:
		return "fresh"
	case STATE_PARTIAL:
		return "partial"
	case STATE_FULL:
		return "full"
	default:
		return "unknown"
	}
}

// Results is an iterator over the matches of a Matches, it stops after
// the first error.
type Results iter.Seq2[*Match, error]

// Matches is the value returned by "input"?matches(pattern). It is at
// the same time:
//
//   - a Boolean, true if the whole input matches the pattern;
//   - a Sequence of every match found in the input;
//   - a Collection streaming the same matches.
//
// The whole input test and the search for matches are independent and
// each is computed at most once.
//
// WARN: Matches and its iterators are not thread safe, they belong to a
// single evaluation.
type Matches struct {
	pattern *Pattern
	input   string

	state   ScanState
	last    *regexp2.Match // scanner position, nil when fresh or full
	records []*Match

	entireDone    bool
	entireOutcome *regexp2.Match // nil if the whole input didn't match
	entireGroups  Groups
}

var (
	_ Boolean    = (*Matches)(nil)
	_ Sequence   = (*Matches)(nil)
	_ Collection = (*Matches)(nil)
)

func newMatches(pattern *Pattern, input string) *Matches {
	return &Matches{pattern: pattern, input: input}
}

func (ms *Matches) Pattern() *Pattern {
	return ms.pattern
}

func (ms *Matches) Input() string {
	return ms.input
}

func (ms *Matches) State() ScanState {
	return ms.state
}

// AsBoolean reports whether the entire input matches the pattern.
func (ms *Matches) AsBoolean() (bool, error) {
	if err := ms.matchEntire(); err != nil {
		return false, err
	}
	return ms.entireOutcome != nil, nil
}

func (ms *Matches) matchEntire() error {
	if ms.entireDone {
		return nil
	}
	m, err := ms.pattern.engine.matchEntire(ms.input)
	if patErr := (*InvalidPatternError)(nil); errors.As(err, &patErr) {
		return patErr
	}
	if err != nil {
		return &MatchEvaluationError{Op: "matches", Pattern: ms.pattern.source, Err: err}
	}
	ms.entireOutcome, ms.entireDone = m, true
	return nil
}

// Groups returns the groups of the entire input match. If the input
// doesn't match as a whole, every group is Absent.
func (ms *Matches) Groups() (Groups, error) {
	if ms.entireGroups != nil {
		return ms.entireGroups, nil
	}
	if err := ms.matchEntire(); err != nil {
		return nil, err
	}
	if ms.entireOutcome != nil {
		ms.entireGroups = newMatch(ms.entireOutcome).groups
	} else {
		ms.entireGroups = make(Groups, ms.pattern.NumGroups()+1)
	}
	return ms.entireGroups, nil
}

// Get returns the i-th match. It finds all matches first.
func (ms *Matches) Get(i int) (Value, error) {
	m, err := ms.Match(i)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (ms *Matches) Match(i int) (*Match, error) {
	if err := ms.scanAll(); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(ms.records) {
		return nil, &IndexOutOfRangeError{Index: i, Size: len(ms.records)}
	}
	return ms.records[i], nil
}

// Size returns the number of matches. It finds all matches first.
func (ms *Matches) Size() (int, error) {
	if err := ms.scanAll(); err != nil {
		return 0, err
	}
	return len(ms.records), nil
}

// Iterator returns a cursor over the matches. The cursor finds matches
// one by one as it is advanced, and reads the cache for every match
// someone else already found.
func (ms *Matches) Iterator() Iterator {
	return &matchIterator{ms: ms}
}

// All streams the matches like Iterator does.
func (ms *Matches) All() Results {
	return func(yield func(*Match, error) bool) {
		it := &matchIterator{ms: ms}
		for {
			m, err := it.nextMatch()
			if errors.Is(err, ErrIteratorExhausted) {
				return
			}
			if !yield(m, err) || err != nil {
				return
			}
		}
	}
}

func (ms *Matches) scanAll() error {
	for {
		found, err := ms.advance()
		if err != nil || !found {
			return err
		}
	}
}

// advance finds the next match and caches it. It reports false once the
// input is exhausted. On error the state is left untouched.
func (ms *Matches) advance() (bool, error) {
	if ms.state == STATE_FULL {
		return false, nil
	}
	m, err := ms.pattern.engine.find(ms.input, ms.last)
	if err != nil {
		return false, &MatchEvaluationError{Op: "matches", Pattern: ms.pattern.source, Err: err}
	}
	if m == nil {
		ms.state, ms.last = STATE_FULL, nil
		return false, nil
	}
	ms.state, ms.last = STATE_PARTIAL, m
	ms.records = append(ms.records, newMatch(m))
	return true, nil
}

type matchIterator struct {
	ms   *Matches
	next int
}

var _ Iterator = (*matchIterator)(nil)

func (it *matchIterator) HasNext() (bool, error) {
	if it.next < len(it.ms.records) {
		return true, nil
	}
	return it.ms.advance()
}

func (it *matchIterator) Next() (Value, error) {
	m, err := it.nextMatch()
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (it *matchIterator) nextMatch() (*Match, error) {
	ok, err := it.HasNext()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrIteratorExhausted
	}
	m := it.ms.records[it.next]
	it.next++
	return m, nil
}
