// Package literal searches and replaces literal (non-regex) text.
package literal

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Implemented with Knuth-Morris-Pratt algorithm for forward
// search, on runes so that case folding stays one rune to one rune.
type Pattern struct {
	lps    []int
	needle []rune
	fold   bool
}

func New(needle string, fold bool) *Pattern {
	runes := []rune(needle)
	if fold {
		for i, r := range runes {
			runes[i] = foldRune(r)
		}
	}
	computeLpsArray := func(pattern []rune) []int {
		n := len(pattern)
		array := make([]int, n)
		for i, j := 1, 0; i < n; {
			if pattern[i] == pattern[j] {
				j++
				array[i], i = j, i+1
			} else {
				if j != 0 {
					j = array[j-1]
				} else {
					array[i], i = 0, i+1
				}
			}
		}
		return array
	}
	return &Pattern{computeLpsArray(runes), runes, fold}
}

// Len is the needle length in runes.
func (pat *Pattern) Len() int {
	return len(pat.needle)
}

// Index returns the rune index of the first occurrence of the needle in
// text at or after from, or -1. Runes of text must already be folded if
// the pattern folds.
func (pat *Pattern) Index(text []rune, from int) int {
	n, m := len(text), len(pat.needle)
	if m == 0 {
		if from <= n {
			return from
		}
		return -1
	}
	i, j := from, 0
	for i < n {
		if text[i] == pat.needle[j] {
			i, j = i+1, j+1
			if j == m {
				return i - j
			}
		} else {
			if j != 0 {
				j = pat.lps[j-1]
			} else {
				i++
			}
		}
	}
	return -1
}

// Replace substitutes repl for needle in s. An empty needle matches
// before every rune and at the end of s.
func Replace(s, needle, repl string, fold, firstOnly bool) string {
	if needle == "" {
		return insertEverywhere(s, repl, firstOnly)
	}

	pat := New(needle, fold)
	runes, offsets := decode(s, fold)

	i := pat.Index(runes, 0)
	if i < 0 {
		return s
	}

	var sb strings.Builder
	last, m := 0, pat.Len()
	for ; i >= 0; i = pat.Index(runes, i+m) {
		sb.WriteString(s[offsets[last]:offsets[i]])
		sb.WriteString(repl)
		last = i + m
		if firstOnly {
			break
		}
	}
	sb.WriteString(s[offsets[last]:])
	return sb.String()
}

func insertEverywhere(s, repl string, firstOnly bool) string {
	if repl == "" {
		return s
	}
	if firstOnly {
		return repl + s
	}
	var sb strings.Builder
	sb.Grow(len(s) + (utf8.RuneCountInString(s)+1)*len(repl))
	sb.WriteString(repl)
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		sb.WriteString(s[i : i+size])
		sb.WriteString(repl)
		i += size
	}
	return sb.String()
}

// decode splits s into runes and records the byte offset of each one,
// plus a final entry for len(s). Offsets let the caller copy untouched
// text byte for byte, invalid UTF-8 included.
func decode(s string, fold bool) ([]rune, []int) {
	runes := make([]rune, 0, len(s))
	offsets := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if fold {
			r = foldRune(r)
		}
		runes = append(runes, r)
		offsets = append(offsets, i)
		i += size
	}
	offsets = append(offsets, len(s))
	return runes, offsets
}

func foldRune(r rune) rune {
	return unicode.ToLower(unicode.ToUpper(r))
}
