package cmdline

import "strings"

// Completion is one candidate returned by Complete, alongside the byte
// range of the token it should replace.
type Completion struct {
	Text       string
	TokenStart int
	TokenEnd   int
}

// Complete implements spec §4.5's completion rules: if the cursor sits
// immediately after the last token with no trailing space, that token is
// "being completed" and candidates are flag spellings (then remaining
// params) that start with it; otherwise everything is considered accepted
// and candidates are simply the remaining unfilled parameters.
func Complete(sig Signature, line string, cursor int) []Completion {
	tokens, err := Tokenize(line[:min(cursor, len(line))])
	if err != nil {
		return nil
	}

	var partial *Token
	matched := tokens
	if n := len(tokens); n > 0 && tokens[n-1].End == cursor && !strings.HasSuffix(line[:cursor], " ") {
		partial = &tokens[n-1]
		matched = tokens[:n-1]
	}

	var filledStrings int
	for _, t := range matched {
		if matchFlag(sig, t.Text) == "" {
			filledStrings++
		}
	}

	var out []Completion
	start, end := cursor, cursor
	prefix := ""
	if partial != nil {
		start, end, prefix = partial.Start, partial.End, partial.Text
	}

	for _, p := range sig.Params {
		if p.Kind != ParamFlag {
			continue
		}
		used := false
		for _, t := range matched {
			for _, name := range p.Names {
				used = used || t.Text == name
			}
		}
		if partial == nil && used {
			continue
		}
		for _, name := range p.Names {
			if strings.HasPrefix(name, prefix) {
				out = append(out, Completion{Text: name, TokenStart: start, TokenEnd: end})
			}
		}
	}
	if partial != nil && len(out) > 0 {
		return out
	}

	skipped := 0
	for _, p := range sig.Params {
		if p.Kind == ParamFlag {
			continue
		}
		if skipped < filledStrings {
			skipped++
			continue
		}
		out = append(out, Completion{Text: "<" + p.Names[0] + ">", TokenStart: start, TokenEnd: end})
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
