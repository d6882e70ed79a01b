package cmdline

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/brianmcjilton/jqnav/internal/ioutil"
	"github.com/brianmcjilton/jqnav/internal/jqnaverr"
	"github.com/brianmcjilton/jqnav/internal/jvalue"
	"github.com/brianmcjilton/jqnav/internal/nav"
	"github.com/brianmcjilton/jqnav/internal/pathexpr"
)

func cmdHelp(d *Dispatcher, state *nav.State, args Args) (string, error) {
	names := d.CommandNames()
	sort.Strings(names)
	return "commands: " + strings.Join(names, " "), nil
}

func cmdQuit(d *Dispatcher, state *nav.State, args Args) (string, error) {
	d.QuitAsked = true
	return "", nil
}

// cmdPrint pretty-prints the cursor value to stdout, or to a file if given
// (spec's "yanks fragments to standard output or a file").
func cmdPrint(d *Dispatcher, state *nav.State, args Args) (string, error) {
	v := currentValue(state)
	text := string(jvalue.PrettyPrint(state.Ctx, v, 2))
	if file := args.GetString("file"); file != "" {
		out, err := ioutil.ResolveOutputPath(file)
		if err != nil {
			return "", err
		}
		if err := ioutil.WriteFileAtomic(out, []byte(text+"\n"), 0o644); err != nil {
			return "", err
		}
		return "wrote " + file, nil
	}
	fmt.Println(text)
	return "printed", nil
}

// cmdYank stashes the cursor value's pretty-printed text on the dispatcher
// (for the host to copy to a system clipboard if it wires one up) and
// otherwise behaves like print.
func cmdYank(d *Dispatcher, state *nav.State, args Args) (string, error) {
	v := currentValue(state)
	text := string(jvalue.PrettyPrint(state.Ctx, v, 2))
	d.LastYank = text
	if file := args.GetString("file"); file != "" {
		out, err := ioutil.ResolveOutputPath(file)
		if err != nil {
			return "", err
		}
		if err := ioutil.WriteFileAtomic(out, []byte(text+"\n"), 0o644); err != nil {
			return "", err
		}
		return "yanked to " + file, nil
	}
	fmt.Println(text)
	return "yanked", nil
}

// cmdQuery navigates the cursor to the result of evaluating <path> against
// the current root, expanding every container along the way.
func cmdQuery(d *Dispatcher, state *nav.State, args Args) (string, error) {
	path, rest, err := pathexpr.ParsePath(args.GetString("path"))
	if err != nil {
		return "", err
	}
	if rest != "" {
		return "", fmt.Errorf("pathexpr: unexpected trailing input %q", rest)
	}
	if v := pathexpr.Eval(state.Ctx, state.Root, path); v.Kind() == jvalue.KindError {
		return "", v.Error()
	}
	state.NavigateToPath(path)
	return "moved to " + path.String(), nil
}

func cmdFocus(d *Dispatcher, state *nav.State, args Args) (string, error) {
	if err := state.Focus(); err != nil {
		return "", err
	}
	return "focused", nil
}

func cmdUnfocus(d *Dispatcher, state *nav.State, args Args) (string, error) {
	if err := state.Unfocus(); err != nil {
		return "", err
	}
	return "unfocused", nil
}

// cmdSort implements the "sort" command (spec's concrete scenario 3):
// applies to the array or object at the cursor (or, if <query> is given, at
// the path it resolves to relative to the cursor), ordered by
// pathexpr.Compare, defaulting to ascending, reversible with "desc", and
// for objects choosing whether to order by key or by value with
// "keys"/"values" (default keys).
func cmdSort(d *Dispatcher, state *nav.State, args Args) (string, error) {
	targetPath, target, err := resolveQueryTarget(state, args)
	if err != nil {
		return "", err
	}
	desc := args.GetBool("desc")

	var sorted jvalue.Value
	switch target.Kind() {
	case jvalue.KindArray:
		elems := append([]jvalue.Value(nil), target.Elems()...)
		sort.SliceStable(elems, func(i, j int) bool {
			c := pathexpr.Compare(elems[i], elems[j])
			if desc {
				return c > 0
			}
			return c < 0
		})
		sorted = state.Ctx.NewArray(elems)
	case jvalue.KindObject:
		byValue := args.GetBool("values")
		pairs := append([]jvalue.Pair(nil), target.Pairs()...)
		sort.SliceStable(pairs, func(i, j int) bool {
			var c int
			if byValue {
				c = pathexpr.Compare(pairs[i].Value, pairs[j].Value)
			} else {
				c = strings.Compare(pairs[i].Key.Text(), pairs[j].Key.Text())
			}
			if desc {
				return c > 0
			}
			return c < 0
		})
		sorted = state.Ctx.NewObject(pairs)
	default:
		return "", jqnaverr.ErrNotContainer
	}

	if err := state.ReplaceAt(targetPath, sorted); err != nil {
		return "", err
	}
	return "sorted", nil
}

// cmdFilter implements the "filter" command (spec's concrete scenario 4):
// keeps only the array elements (or object pairs, tested by value) for
// which <expression> truthy-evaluates, applied at the cursor.
func cmdFilter(d *Dispatcher, state *nav.State, args Args) (string, error) {
	expr, err := pathexpr.ParseExpression(state.Ctx, args.GetString("expression"))
	if err != nil {
		return "", err
	}
	v := currentValue(state)
	cursorPath := state.Current().Path

	var filtered jvalue.Value
	switch v.Kind() {
	case jvalue.KindArray:
		var kept []jvalue.Value
		for _, e := range v.Elems() {
			if expr.Evaluate(state.Ctx, e) {
				kept = append(kept, e)
			}
		}
		filtered = state.Ctx.NewArray(kept)
	case jvalue.KindObject:
		var kept []jvalue.Pair
		for _, p := range v.Pairs() {
			if expr.Evaluate(state.Ctx, p.Value) {
				kept = append(kept, p)
			}
		}
		filtered = state.Ctx.NewObject(kept)
	default:
		return "", jqnaverr.ErrNotContainer
	}

	if err := state.ReplaceAt(cursorPath, filtered); err != nil {
		return "", err
	}
	return "filtered", nil
}

func cmdReset(d *Dispatcher, state *nav.State, args Args) (string, error) {
	state.Reset()
	return "reset", nil
}

func cmdGC(d *Dispatcher, state *nav.State, args Args) (string, error) {
	n := state.Ctx.GC(state.GCRoots())
	return fmt.Sprintf("gc reclaimed %d atoms", n), nil
}

// cmdLs reports the cursor's children in the status message: an object's
// keys joined by spaces, or an array's element count.
func cmdLs(d *Dispatcher, state *nav.State, args Args) (string, error) {
	v := currentValue(state)
	switch v.Kind() {
	case jvalue.KindObject:
		var names []string
		for _, p := range v.Pairs() {
			names = append(names, p.Key.Text())
		}
		return strings.Join(names, " "), nil
	case jvalue.KindArray:
		return fmt.Sprintf("%d elements", v.Len()), nil
	default:
		return "", jqnaverr.ErrNotContainer
	}
}

// cmdOpen loads a new file into the running session (spec's concrete
// scenario 5), replacing the current document entirely.
func cmdOpen(d *Dispatcher, state *nav.State, args Args) (string, error) {
	file := args.GetString("file")
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	root, err := state.Ctx.Parse(data, jvalue.Flags{Braceless: args.GetBool("braceless")})
	if err != nil {
		return "", err
	}
	state.LoadDocument(root)
	return "opened " + file, nil
}

// cmdEdit round-trips the cursor value through $EDITOR: writes it to a temp
// file, shells out to the user's editor connected to the real terminal, then
// reparses the edited file and replaces the cursor value with the result.
// A failed reparse leaves the document untouched (spec §7's "commands that
// modify the document either complete or are discarded").
func cmdEdit(d *Dispatcher, state *nav.State, args Args) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	v := currentValue(state)
	text := string(jvalue.PrettyPrint(state.Ctx, v, 2))

	tmp, err := os.CreateTemp("", "jqnav-edit-*.json")
	if err != nil {
		return "", err
	}
	path := tmp.Name()
	defer os.Remove(path)
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	if err := execEditor(editor, path).Run(); err != nil {
		return "", fmt.Errorf("editor: %w", err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	newValue, err := state.Ctx.Parse(edited, jvalue.Flags{})
	if err != nil {
		return "", fmt.Errorf("edited text did not reparse: %w", err)
	}

	if err := state.ReplaceAt(state.Current().Path, newValue); err != nil {
		return "", err
	}
	return "edited", nil
}

// execEditor wraps exec.Command to connect the child process to the current
// process's standard input/output/error, so an interactive editor behaves
// as if launched directly from the terminal.
func execEditor(name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	return cmd
}

// currentValue returns the cursor's Value, or — on a folded flat-view row —
// the first packed element, since flat rows have no single Value of their
// own.
func currentValue(state *nav.State) jvalue.Value {
	it := state.Current()
	if it.IsFlatRow {
		if len(it.FlatValues) > 0 {
			return it.FlatValues[0]
		}
		return jvalue.Value{}
	}
	return it.Value
}

// resolveQueryTarget returns the path (relative to Root) and Value that
// "sort" should operate on: the cursor by default, or the result
// of evaluating the optional <query> sub-path against the cursor's value.
func resolveQueryTarget(state *nav.State, args Args) (pathexpr.Path, jvalue.Value, error) {
	base := state.Current().Path
	queryText := args.GetString("query")
	if queryText == "" {
		return base, currentValue(state), nil
	}
	sub, rest, err := pathexpr.ParsePath(queryText)
	if err != nil {
		return nil, jvalue.Value{}, err
	}
	if rest != "" {
		return nil, jvalue.Value{}, fmt.Errorf("pathexpr: unexpected trailing input %q", rest)
	}
	full := append(append(pathexpr.Path(nil), base...), sub...)
	target := pathexpr.Eval(state.Ctx, state.Root, full)
	if target.Kind() == jvalue.KindError {
		return nil, jvalue.Value{}, target.Error()
	}
	return full, target, nil
}
