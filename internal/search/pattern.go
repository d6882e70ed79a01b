// Package search implements the recursive and path-scoped ("query") search
// modes (spec §4.3): substring/glob/regex/typed-numeric matching against
// keys and values, with forward/backward cycling and on-demand container
// expansion.
package search

import (
	"strconv"
	"strings"

	"github.com/brianmcjilton/jqnav/internal/dre"
	"github.com/brianmcjilton/jqnav/internal/jvalue"
)

// NumericCache is the typed-numeric parse cache described in spec §4.3:
// parsed once when the pattern is set, reused for every candidate
// comparison so numeric matches are type-correct rather than coerced
// through strings.
type NumericCache struct {
	IsNumeric   bool
	IsInteger   bool
	IsUnsigned  bool
	IntValue    int64
	UintValue   uint64
	DoubleValue float64
}

func parseNumericCache(pattern string) NumericCache {
	var c NumericCache
	if pattern == "" {
		return c
	}
	if i, err := strconv.ParseInt(pattern, 10, 64); err == nil {
		c.IsNumeric = true
		c.IsInteger = true
		c.IntValue = i
		c.DoubleValue = float64(i)
	}
	if u, err := strconv.ParseUint(pattern, 10, 64); err == nil {
		c.IsNumeric = true
		c.IsUnsigned = true
		c.UintValue = u
		if !c.IsInteger {
			c.DoubleValue = float64(u)
		}
	}
	if !c.IsNumeric {
		if f, err := strconv.ParseFloat(pattern, 64); err == nil {
			c.IsNumeric = true
			c.DoubleValue = f
		}
	}
	return c
}

// matchesNumeric implements "the pattern is a well-formed integer/unsigned/
// floating literal AND the value is numeric AND they are equal under
// numeric comparison".
func (c NumericCache) matchesNumeric(v jvalue.Value) bool {
	if !c.IsNumeric || !v.IsNumeric() {
		return false
	}
	return c.DoubleValue == v.AsFloat()
}

// Pattern is a compiled search pattern: the raw text plus its eager
// typed-numeric cache.
type Pattern struct {
	Raw     string
	Numeric NumericCache
}

// NewPattern eagerly parses the typed-numeric cache (spec §4.3 "Pattern
// parse cache").
func NewPattern(raw string) *Pattern {
	return &Pattern{Raw: raw, Numeric: parseNumericCache(raw)}
}

// regexMetaChars are the characters that only have meaning in a regex (not
// counting '*', which is ambiguous between glob and regex and is resolved
// in favor of glob per the precedence rule below).
const regexMetaChars = `.^$+?[]\|`

func containsAny(s, chars string) bool {
	return strings.ContainsAny(s, chars)
}

// MatchValue implements the per-node match test from spec §4.3's
// precedence: exact literal -> numeric -> regex (if metacharacters present)
// -> glob (if '*' present) -> substring.
func (p *Pattern) MatchValue(v jvalue.Value) bool {
	if v.Kind() == jvalue.KindString {
		return p.matchText(v.StringAtom().Text(), v)
	}
	if v.IsNumeric() {
		return p.Numeric.matchesNumeric(v)
	}
	return false
}

// MatchKeyText tests a key atom's text (no numeric candidate applies to
// keys).
func (p *Pattern) MatchKeyText(text string) bool {
	return p.matchText(text, jvalue.Value{})
}

func (p *Pattern) matchText(text string, asValue jvalue.Value) bool {
	if p.Raw == text {
		return true
	}
	if asValue.IsNumeric() && p.Numeric.matchesNumeric(asValue) {
		return true
	}
	if containsAny(p.Raw, regexMetaChars) {
		ok, err := regexMatches(p.Raw, text)
		if err == nil && ok {
			return true
		}
		// A regex error is not reported (spec §7); the pattern is then
		// tried as a glob or substring below.
		if err == nil {
			return false
		}
	}
	if strings.Contains(p.Raw, "*") {
		return globMatch(strings.ToLower(p.Raw), strings.ToLower(text))
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(p.Raw))
}

func regexMatches(pattern, text string) (bool, error) {
	matched, _, _, err := dre.Match([]byte(pattern), []byte(text))
	return matched, err
}

// globMatch implements '*'-wildcard matching (case-insensitivity is
// handled by the caller lower-casing both operands first).
func globMatch(pattern, text string) bool {
	return globMatchRunes([]rune(pattern), []rune(text))
}

func globMatchRunes(pattern, text []rune) bool {
	for len(pattern) > 0 {
		if pattern[0] == '*' {
			// Collapse consecutive '*'.
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			if len(pattern) == 0 {
				return true
			}
			for i := 0; i <= len(text); i++ {
				if globMatchRunes(pattern, text[i:]) {
					return true
				}
			}
			return false
		}
		if len(text) == 0 || pattern[0] != text[0] {
			return false
		}
		pattern = pattern[1:]
		text = text[1:]
	}
	return len(text) == 0
}
