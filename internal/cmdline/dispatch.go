package cmdline

import (
	"fmt"
	"strings"

	"github.com/brianmcjilton/jqnav/internal/jqnaverr"
	"github.com/brianmcjilton/jqnav/internal/nav"
)

// Handler implements one command table entry (spec §4.5 "Each command
// receives the navigation state and its argument string; returns CMD_OK or
// CMD_ERROR and may set a status message").
type Handler func(d *Dispatcher, state *nav.State, args Args) (message string, err error)

// entry pairs a parsed Signature with its Handler.
type entry struct {
	sig     Signature
	handler Handler
}

// Dispatcher owns the command table and any state a command needs that
// doesn't belong on nav.State (the yank register, a pending quit flag).
type Dispatcher struct {
	commands map[string]entry
	aliases  map[string]string

	LastYank  string
	QuitAsked bool
}

// NewDispatcher builds the dispatcher with the standard command table (spec
// §4.5 "Command table. At least: help, quit/q, print/p, yank/y, query,
// focus, unfocus, sort, filter, reset, gc, ls, open").
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{commands: map[string]entry{}, aliases: map[string]string{}}
	d.register(":help", cmdHelp)
	d.register(":quit", cmdQuit)
	d.registerAlias("q", "quit")
	d.register(":print [file]", cmdPrint)
	d.registerAlias("p", "print")
	d.register(":yank [file]", cmdYank)
	d.registerAlias("y", "yank")
	d.register(":query <path>", cmdQuery)
	d.register(":focus", cmdFocus)
	d.register(":unfocus", cmdUnfocus)
	d.register(":sort [query] [keys|values] [asc|desc]", cmdSort)
	d.register(":filter <expression>", cmdFilter)
	d.register(":reset", cmdReset)
	d.register(":gc", cmdGC)
	d.register(":ls", cmdLs)
	d.register(":open [--braceless] <file>", cmdOpen)
	d.register(":edit", cmdEdit)
	return d
}

func (d *Dispatcher) register(sigText string, h Handler) {
	sig, err := ParseSignature(sigText)
	if err != nil {
		panic(err) // programmer error: the builtin table must parse
	}
	d.commands[sig.Command] = entry{sig: sig, handler: h}
}

func (d *Dispatcher) registerAlias(alias, command string) {
	d.aliases[alias] = command
}

// resolve maps a typed command name (possibly an alias) to its entry.
func (d *Dispatcher) resolve(name string) (entry, bool) {
	name = strings.TrimPrefix(name, ":")
	if canon, ok := d.aliases[name]; ok {
		name = canon
	}
	e, ok := d.commands[name]
	return e, ok
}

// Dispatch tokenizes the leading command word off line, matches the
// remainder against that command's signature, and invokes its handler.
func (d *Dispatcher) Dispatch(state *nav.State, line string) (string, error) {
	name, rest := splitCommand(line)
	if name == "" {
		return "", nil
	}
	e, ok := d.resolve(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", jqnaverr.ErrCommandUnknown, name)
	}
	args, err := ParseArgs(e.sig, rest)
	if err != nil {
		return "", err
	}
	return e.handler(d, state, args)
}

// Signature looks up the signature for a command name (or its alias), for
// the Completer implementation.
func (d *Dispatcher) Signature(name string) (Signature, bool) {
	e, ok := d.resolve(name)
	return e.sig, ok
}

// CommandNames returns every registered command and alias name, for
// top-level ("which command did you mean") completion.
func (d *Dispatcher) CommandNames() []string {
	names := make([]string, 0, len(d.commands)+len(d.aliases))
	for name := range d.commands {
		names = append(names, name)
	}
	for alias := range d.aliases {
		names = append(names, alias)
	}
	return names
}

func splitCommand(line string) (name, rest string) {
	i := 0
	for i < len(line) && line[i] != ' ' {
		i++
	}
	name = line[:i]
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return name, line[i:]
}
