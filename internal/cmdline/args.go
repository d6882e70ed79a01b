package cmdline

import (
	"fmt"
	"strings"

	"github.com/brianmcjilton/jqnav/internal/jqnaverr"
)

// Args is the parsed result of matching a command line against a Signature:
// flag values keyed by every alternative name of the param with its leading
// dashes trimmed (each spelling is its own key), and string/path values
// keyed by the param's name.
type Args struct {
	Flags   map[string]bool
	Strings map[string]string
}

func (a Args) GetBool(name string) bool { return a.Flags[name] }

func (a Args) GetString(name string) string { return a.Strings[name] }

// ParseArgs implements the Argument matcher of spec §4.5: tokenize, then
// match flag tokens to their Param, and fold runs of consecutive non-flag
// tokens (by original byte range, preserving inner whitespace) into the next
// unfilled string/path parameter in signature order.
func ParseArgs(sig Signature, line string) (Args, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return Args{}, err
	}

	out := Args{Flags: map[string]bool{}, Strings: map[string]string{}}
	for _, p := range sig.Params {
		if p.Kind == ParamFlag {
			for _, name := range p.Names {
				out.Flags[trimDashes(name)] = false
			}
		}
	}

	var stringParams []Param
	for _, p := range sig.Params {
		if p.Kind != ParamFlag {
			stringParams = append(stringParams, p)
		}
	}
	nextString := 0

	runStart := -1
	runEnd := -1
	flushRun := func() error {
		if runStart < 0 {
			return nil
		}
		text := line[runStart:runEnd]
		if nextString >= len(stringParams) {
			return fmt.Errorf("%w: %q", jqnaverr.ErrArgExtra, text)
		}
		out.Strings[stringParams[nextString].Names[0]] = text
		nextString++
		runStart, runEnd = -1, -1
		return nil
	}

	for _, t := range tokens {
		if flagName := matchFlag(sig, t.Text); flagName != "" {
			if err := flushRun(); err != nil {
				return Args{}, err
			}
			out.Flags[flagName] = true
			continue
		}
		if runStart < 0 {
			runStart = t.Start
		}
		runEnd = t.End
	}
	if err := flushRun(); err != nil {
		return Args{}, err
	}

	for _, p := range stringParams[nextString:] {
		if p.Required {
			return Args{}, fmt.Errorf("%w: %s", jqnaverr.ErrArgMissing, p.Names[0])
		}
	}
	return out, nil
}

// matchFlag returns the (dash-trimmed) name of the specific alternative tok
// spells, or "" if tok doesn't match any flag in sig. Each alternative in an
// "alt|alt" group is tracked under its own key — "keys|values" and
// "asc|desc" are mutually-exclusive selectors, not two spellings of one
// boolean — while a single-name dash-prefixed flag like "--braceless" is
// naturally its own key.
func matchFlag(sig Signature, tok string) string {
	for _, p := range sig.Params {
		if p.Kind != ParamFlag {
			continue
		}
		for _, name := range p.Names {
			if strings.EqualFold(name, tok) {
				return trimDashes(name)
			}
		}
	}
	return ""
}

func trimDashes(name string) string {
	return strings.TrimLeft(name, "-")
}
