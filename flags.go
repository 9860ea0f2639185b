package rematch

import (
	"strings"

	"github.com/rs/zerolog"
)

// Flags is the decoded form of a flag string such as "if" or "rmi".
type Flags uint32

const (
	FLAG_CASE_INSENSITIVE Flags = 1 << iota
	FLAG_MULTILINE
	FLAG_DOTALL
	FLAG_COMMENTS
	FLAG_UNICODE_CASE
	FLAG_REGEXP
	FLAG_LITERAL
	FLAG_FIRST_ONLY
)

// FLAG_COMPILE_MASK selects the bits that reach the regex engine. Only
// these take part in the pattern cache key.
const FLAG_COMPILE_MASK = FLAG_CASE_INSENSITIVE | FLAG_MULTILINE |
	FLAG_DOTALL | FLAG_COMMENTS | FLAG_UNICODE_CASE

var flagLetters = [...]struct {
	letter rune
	flag   Flags
}{
	{'i', FLAG_CASE_INSENSITIVE},
	{'m', FLAG_MULTILINE},
	{'s', FLAG_DOTALL},
	{'c', FLAG_COMMENTS},
	{'u', FLAG_UNICODE_CASE},
	{'r', FLAG_REGEXP},
	{'l', FLAG_LITERAL},
	{'f', FLAG_FIRST_ONLY},
}

// ParseFlags decodes letters into Flags. op names the builtin asking
// for the decoding and only shows up in errors.
func ParseFlags(op, letters string) (Flags, error) {
	var flags Flags
next:
	for _, c := range letters {
		for _, fl := range flagLetters {
			if fl.letter == c {
				flags |= fl.flag
				continue next
			}
		}
		return 0, &InvalidFlagError{Op: op, Flag: c, Flags: letters}
	}
	return flags, nil
}

// Has reports whether all bits of other are set.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// String renders flags back in canonical letter order.
func (f Flags) String() string {
	var sb strings.Builder
	for _, fl := range flagLetters {
		if f&fl.flag != 0 {
			sb.WriteRune(fl.letter)
		}
	}
	return sb.String()
}

func warnFlags(logger zerolog.Logger, op string, flags, unsupported Flags, reason string) {
	if flags&unsupported == 0 {
		return
	}
	logger.Warn().
		Str("op", op).
		Str("flags", flags.String()).
		Str("ignored", (flags & unsupported).String()).
		Msg(reason)
}
