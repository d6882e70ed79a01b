package main

import (
	"sort"
	"strings"

	"github.com/brianmcjilton/jqnav/internal/cmdline"
)

// dispatcherCompleter adapts the Command Dispatcher's signature-aware
// completion (internal/cmdline.Complete) to the lineedit.Completer contract
// the command line editor drives on Tab (spec §4.5's "remaining-parameter
// completion"): completing the command word itself from the dispatcher's
// registered names, or its arguments from the matched signature once one
// has been typed.
type dispatcherCompleter struct {
	disp *cmdline.Dispatcher
}

func (c dispatcherCompleter) Complete(line string, cursor int) []string {
	sp := strings.IndexByte(line, ' ')
	if sp == -1 || cursor <= sp {
		prefix := line[:cursor]
		colon := ""
		if strings.HasPrefix(prefix, ":") {
			colon, prefix = ":", prefix[1:]
		}
		var names []string
		for _, name := range c.disp.CommandNames() {
			if strings.HasPrefix(name, prefix) {
				names = append(names, colon+name)
			}
		}
		sort.Strings(names)
		return names
	}

	sig, ok := c.disp.Signature(line[:sp])
	if !ok {
		return nil
	}
	rest := line[sp+1:]
	restCursor := cursor - (sp + 1)
	if restCursor < 0 {
		restCursor = 0
	}
	if restCursor > len(rest) {
		restCursor = len(rest)
	}
	completions := cmdline.Complete(sig, rest, restCursor)
	out := make([]string, len(completions))
	for i, comp := range completions {
		out[i] = comp.Text
	}
	return out
}
