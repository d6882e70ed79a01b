// Package jqcompat is the opt-in, power-user `--jq` mode named in
// SPEC_FULL.md §4.8: the one-shot CLI's hidden --jq flag evaluates a real jq
// program via github.com/itchyny/gojq. The interactive ":sort"/":filter"/
// ":query" commands and the -q flag do not use it; they keep the
// path/expression grammar. It is strictly additive — jqnav works
// completely without it.
package jqcompat

import (
	"fmt"

	"github.com/brianmcjilton/jqnav/internal/jvalue"
	"github.com/itchyny/gojq"
)

// Program is a parsed, reusable jq expression.
type Program struct {
	code *gojq.Code
}

// Compile parses and compiles expr once, so repeated evaluation (e.g. a
// query applied across a recursive search) doesn't re-parse every call.
func Compile(expr string) (*Program, error) {
	q, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("jqcompat: parse: %w", err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("jqcompat: compile: %w", err)
	}
	return &Program{code: code}, nil
}

// Run evaluates the program against root, converting through
// jvalue's ToInterface/FromInterface bridge, and returns only the first
// emitted result — jqnav's single-value model has no place for a jq
// program's multiple outputs, so callers that need that should reach for
// RunAll.
func (p *Program) Run(ctx *jvalue.Context, root jvalue.Value) (jvalue.Value, error) {
	results, err := p.RunAll(ctx, root)
	if err != nil {
		return jvalue.Value{}, err
	}
	if len(results) == 0 {
		return jvalue.Value{}, fmt.Errorf("jqcompat: program produced no output")
	}
	return results[0], nil
}

// RunAll evaluates the program against root and returns every emitted
// value, in order.
func (p *Program) RunAll(ctx *jvalue.Context, root jvalue.Value) ([]jvalue.Value, error) {
	iter := p.code.Run(root.ToInterface())
	var out []jvalue.Value
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, fmt.Errorf("jqcompat: %w", err)
		}
		out = append(out, ctx.FromInterface(v))
	}
	return out, nil
}
