package rematch

import (
	"errors"
	"fmt"
)

var (
	ErrIteratorExhausted = &ExhaustedIteratorError{}
	ErrAbsentGroup       = errors.New("group did not participate in the match")
)

// InvalidFlagError reports a flag letter that is unknown, or that
// conflicts with another letter.
type InvalidFlagError struct {
	Op    string
	Flag  rune
	Flags string
	// Reason is set when the letter is known but can't be used here.
	Reason string
}

func (e *InvalidFlagError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("?%s: regular expression flag %q in %q %s", e.Op, e.Flag, e.Flags, e.Reason)
	}
	return fmt.Sprintf("?%s: unrecognized regular expression flag %q in %q, expected letters from %q",
		e.Op, e.Flag, e.Flags, allFlagLetters())
}

func allFlagLetters() string {
	letters := make([]rune, 0, len(flagLetters))
	for _, fl := range flagLetters {
		letters = append(letters, fl.letter)
	}
	return string(letters)
}

// InvalidPatternError wraps the engine diagnostic for a pattern that
// does not compile under the requested flags.
type InvalidPatternError struct {
	Pattern string
	Flags   Flags
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("malformed regular expression %q (flags %q): %v", e.Pattern, e.Flags, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// ArgumentCountError is returned by a Method called with too few or too
// many arguments.
type ArgumentCountError struct {
	Op       string
	Got      int
	Min, Max int
}

func (e *ArgumentCountError) Error() string {
	if e.Min == e.Max {
		return fmt.Sprintf("?%s(...) expects %d argument(s), but has received %d", e.Op, e.Min, e.Got)
	}
	return fmt.Sprintf("?%s(...) expects %d to %d arguments, but has received %d", e.Op, e.Min, e.Max, e.Got)
}

// ArgumentTypeError is returned when an argument can't be converted to
// the expected type.
type ArgumentTypeError struct {
	Op       string
	Index    int
	Got      Value
	Expected string
}

func (e *ArgumentTypeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("?%s expects a %s, but has received %s", e.Op, e.Expected, describe(e.Got))
	}
	return fmt.Sprintf("?%s(...) expects a %s as argument #%d, but has received %s",
		e.Op, e.Expected, e.Index+1, describe(e.Got))
}

func describe(v Value) string {
	if v == nil {
		return "nothing (null)"
	}
	return fmt.Sprintf("%T (%v)", v, v)
}

// IndexOutOfRangeError is returned by Matches.Get.
type IndexOutOfRangeError struct {
	Index int
	Size  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("match index %d is out of range, expected 0 <= index < %d", e.Index, e.Size)
}

// ExhaustedIteratorError is returned by Iterator.Next when there are no
// more matches. Compare against ErrIteratorExhausted.
type ExhaustedIteratorError struct{}

func (e *ExhaustedIteratorError) Error() string {
	return "there were no more matches"
}

func (e *ExhaustedIteratorError) Is(target error) bool {
	_, ok := target.(*ExhaustedIteratorError)
	return ok
}

// MatchEvaluationError wraps an engine failure while matching, typically
// a match timeout.
type MatchEvaluationError struct {
	Op      string
	Pattern string
	Err     error
}

func (e *MatchEvaluationError) Error() string {
	return fmt.Sprintf("%s: failed to evaluate regular expression %q: %v", e.Op, e.Pattern, e.Err)
}

func (e *MatchEvaluationError) Unwrap() error {
	return e.Err
}
