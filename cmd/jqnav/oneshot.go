package main

import (
	"io"
	"os"

	"github.com/brianmcjilton/jqnav/internal/ioutil"
	"github.com/brianmcjilton/jqnav/internal/jqcompat"
	"github.com/brianmcjilton/jqnav/internal/jvalue"
)

// runOneShot implements the non-interactive CLI mode (spec §6's command
// line contract): parse the input, optionally apply one or more -q queries
// (or a single --jq expression), and write the result(s) to stdout or
// -o/--output.
func runOneShot(path string, flags cliFlags) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}

	ctx := jvalue.NewContext()
	root, err := ctx.Parse(data, jvalue.Flags{
		Braceless:     flags.braceless,
		NDJSON:        flags.ndjson,
		InternObjects: flags.intern,
	})
	if err != nil {
		return err
	}

	var outputs []jvalue.Value
	switch {
	case flags.jqExpr != "":
		prog, err := jqcompat.Compile(flags.jqExpr)
		if err != nil {
			return err
		}
		outputs, err = prog.RunAll(ctx, root)
		if err != nil {
			return err
		}
	case len(flags.queries) > 0:
		for _, q := range flags.queries {
			v, err := jvalue.Query(ctx, root, q)
			if err != nil {
				return err
			}
			outputs = append(outputs, v)
		}
	default:
		outputs = []jvalue.Value{root}
	}

	indent := 0
	if flags.pretty {
		indent = flags.indent
	}

	var buf []byte
	for _, v := range outputs {
		buf = append(buf, jvalue.PrettyPrint(ctx, v, indent)...)
		buf = append(buf, '\n')
	}

	if flags.gc {
		ctx.GC(append(outputs, root))
	}

	if flags.output != "" {
		out, err := ioutil.ResolveOutputPath(flags.output)
		if err != nil {
			return err
		}
		return ioutil.WriteFileAtomic(out, buf, 0o644)
	}
	_, err = os.Stdout.Write(buf)
	return err
}

// readInput reads path, or stdin when path is empty (spec §6's "Positional:
// [filepath] (omitted => read standard input)").
func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
