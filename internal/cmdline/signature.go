// Package cmdline implements the Command Dispatcher (spec §4.5): signature
// parsing, a quote/bracket-aware tokenizer, argument matching against a
// signature, completion, and the command table itself.
package cmdline

import (
	"fmt"
	"strings"
)

// ParamKind distinguishes a value-bearing parameter (string/path) from a
// boolean flag.
type ParamKind uint8

const (
	ParamString ParamKind = iota
	ParamPath
	ParamFlag
)

// Param is one element of a parsed Signature: either a positional
// string/path argument or a boolean flag, optionally with alternate
// spellings ("asc|desc") and optionally marked required.
type Param struct {
	Names    []string
	Kind     ParamKind
	Required bool
}

// IsPath reports whether the parameter should be treated as a filesystem
// path (spec: "the atom 'file' or 'dir' is treated as a path, everything
// else as a string").
func (p Param) IsPath() bool { return p.Kind == ParamPath }

// Signature is a parsed command grammar, e.g. ":open [--braceless] <file>".
type Signature struct {
	Command string
	Params  []Param
}

// ParseSignature parses one signature line (grounded on the dispatcher's
// cmd_parse contract): a leading ":name" token, then a sequence of
// "<required>", "[optional]", and "alt|alt" tokens.
func ParseSignature(s string) (Signature, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Signature{}, fmt.Errorf("cmdline: empty signature")
	}
	head := fields[0]
	if !strings.HasPrefix(head, ":") {
		return Signature{}, fmt.Errorf("cmdline: signature must start with ':' (got %q)", head)
	}
	sig := Signature{Command: head[1:]}

	for _, tok := range fields[1:] {
		required := true
		body := tok
		switch {
		case strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">"):
			body = tok[1 : len(tok)-1]
		case strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]"):
			body = tok[1 : len(tok)-1]
			required = false
		default:
			return Signature{}, fmt.Errorf("cmdline: malformed signature token %q", tok)
		}

		names := strings.Split(body, "|")
		kind := paramKindOf(names)
		sig.Params = append(sig.Params, Param{Names: names, Kind: kind, Required: required})
	}
	return sig, nil
}

// paramKindOf classifies a parameter by its name(s): a single "file"/"dir"
// is a path; a single name with a leading "-" or "--" is a flag; any other
// single name is a plain string.
// paramKindOf also covers signatures like "[keys|values]": alternatives
// that aren't dash-prefixed but are still mutually exclusive selectors
// rather than a free-form string, so a group of 2+ names is always a flag
// group (spec's "alt|alt introduces alternative spellings of a flag" reads
// equally well as "alternative flags").
func paramKindOf(names []string) ParamKind {
	if len(names) == 1 {
		switch names[0] {
		case "file", "dir":
			return ParamPath
		}
		if strings.HasPrefix(names[0], "--") || strings.HasPrefix(names[0], "-") {
			return ParamFlag
		}
		return ParamString
	}
	return ParamFlag
}

// String re-renders the signature back to its textual form (used by the
// argument-parser round-trip testable property in spec §8).
func (sig Signature) String() string {
	var b strings.Builder
	b.WriteByte(':')
	b.WriteString(sig.Command)
	for _, p := range sig.Params {
		b.WriteByte(' ')
		open, close := "<", ">"
		if !p.Required {
			open, close = "[", "]"
		}
		b.WriteString(open)
		b.WriteString(strings.Join(p.Names, "|"))
		b.WriteString(close)
	}
	return b.String()
}
