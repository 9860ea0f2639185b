package rematch

import (
	"github.com/humbornjo/rematch/internal/literal"
)

// Replace returns the method value of "subject"?replace. The method
// takes the needle, the replacement and optional flags.
func (b *Builtins) Replace(subject string) Method {
	return func(args ...Value) (Value, error) {
		const op = "replace"
		if err := checkArgCount(op, args, 2, 3); err != nil {
			return nil, err
		}
		needle, err := stringArg(op, args, 0)
		if err != nil {
			return nil, err
		}
		replacement, err := stringArg(op, args, 1)
		if err != nil {
			return nil, err
		}
		letters, err := optionalStringArg(op, args, 2)
		if err != nil {
			return nil, err
		}
		out, err := b.ReplaceString(subject, needle, replacement, letters)
		if err != nil {
			return nil, err
		}
		return String(out), nil
	}
}

// ReplaceString replaces needle with replacement in subject.
//
// Without the "r" flag needle is literal text, "i" makes the search
// case-insensitive. With "r" needle is a regular expression and
// replacement may refer to groups ($1, ${name}), it is handed to the
// engine as is. "f" stops after the first replacement in both modes.
func (b *Builtins) ReplaceString(subject, needle, replacement, letters string) (string, error) {
	const op = "replace"
	flags, err := ParseFlags(op, letters)
	if err != nil {
		return "", err
	}
	if flags.Has(FLAG_REGEXP | FLAG_LITERAL) {
		return "", &InvalidFlagError{Op: op, Flag: 'l', Flags: letters,
			Reason: `conflicts with "r", a needle is either literal or a regular expression`}
	}
	firstOnly := flags&FLAG_FIRST_ONLY != 0

	if flags&FLAG_REGEXP == 0 {
		warnFlags(b.logger, op, flags, FLAG_MULTILINE|FLAG_DOTALL|FLAG_COMMENTS|FLAG_UNICODE_CASE,
			`?replace only supports these flags together with the "r" flag`)
		return literal.Replace(subject, needle, replacement,
			flags&FLAG_CASE_INSENSITIVE != 0, firstOnly), nil
	}

	p, err := b.cache.Compile(needle, flags)
	if err != nil {
		return "", err
	}
	if firstOnly {
		return p.ReplaceFirst(subject, replacement)
	}
	return p.ReplaceAll(subject, replacement)
}
