package pathexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brianmcjilton/jqnav/internal/jvalue"
)

// Op is a comparison operator, spec §4.2: == != < <= > >=.
type Op string

const (
	OpNone Op = ""
	OpEq   Op = "=="
	OpNe   Op = "!="
	OpLt   Op = "<"
	OpLe   Op = "<="
	OpGt   Op = ">"
	OpGe   Op = ">="
)

var ops = []Op{OpLe, OpGe, OpEq, OpNe, OpLt, OpGt} // longest-first so "<=" isn't swallowed by "<"

// Rhs is the right-hand side of a comparison: either another path, or a
// JSON literal.
type Rhs struct {
	IsPath  bool
	Path    Path
	Literal jvalue.Value
}

// Expression is `path [ op rhs ]` (spec §4.2), used by sort and filter.
type Expression struct {
	Path Path
	Op   Op
	Rhs  Rhs
	HasRhs bool
}

// ParseExpression parses the full expr grammar from s.
func ParseExpression(ctx *jvalue.Context, s string) (Expression, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		// The bare "." expression (used by "filter .") means "the value
		// itself"; represent it as a zero-length path.
		return Expression{}, nil
	}
	if s == "." {
		return Expression{}, nil
	}
	path, rest, err := ParsePath(s)
	if err != nil {
		return Expression{}, err
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return Expression{Path: path}, nil
	}
	op, afterOp, ok := matchOp(rest)
	if !ok {
		return Expression{}, fmt.Errorf("pathexpr: unexpected trailing input %q", rest)
	}
	afterOp = strings.TrimSpace(afterOp)
	rhs, err := parseRhs(ctx, afterOp)
	if err != nil {
		return Expression{}, err
	}
	return Expression{Path: path, Op: op, Rhs: rhs, HasRhs: true}, nil
}

func matchOp(s string) (Op, string, bool) {
	for _, op := range ops {
		if strings.HasPrefix(s, string(op)) {
			return op, s[len(op):], true
		}
	}
	return OpNone, s, false
}

func parseRhs(ctx *jvalue.Context, s string) (Rhs, error) {
	if s == "" {
		return Rhs{}, fmt.Errorf("pathexpr: missing right-hand side")
	}
	if lit, ok, err := tryParseLiteral(ctx, s); ok {
		return Rhs{Literal: lit}, err
	}
	p, rest, err := ParsePath(s)
	if err != nil {
		return Rhs{}, err
	}
	if strings.TrimSpace(rest) != "" {
		return Rhs{}, fmt.Errorf("pathexpr: unexpected trailing input %q", rest)
	}
	return Rhs{IsPath: true, Path: p}, nil
}

// tryParseLiteral recognizes null, true, false, numbers, quoted strings,
// and JSON array/object literals. ok=false means "not a literal, try path".
func tryParseLiteral(ctx *jvalue.Context, s string) (jvalue.Value, bool, error) {
	switch {
	case s == "null":
		return jvalue.NewNull(), true, nil
	case s == "true":
		return jvalue.NewBool(true), true, nil
	case s == "false":
		return jvalue.NewBool(false), true, nil
	case strings.HasPrefix(s, `"`):
		str, err := unquote(s)
		if err != nil {
			return jvalue.Value{}, true, err
		}
		return ctx.NewString(str), true, nil
	case strings.HasPrefix(s, "{") || strings.HasPrefix(s, "["):
		v, err := ctx.Parse([]byte(s), jvalue.Flags{})
		return v, true, err
	}
	if v, ok := tryParseNumber(s); ok {
		return v, true, nil
	}
	return jvalue.Value{}, false, nil
}

func tryParseNumber(s string) (jvalue.Value, bool) {
	if s == "" {
		return jvalue.Value{}, false
	}
	c := s[0]
	if !(c == '-' || c == '+' || (c >= '0' && c <= '9')) {
		return jvalue.Value{}, false
	}
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return jvalue.NewInt(i), true
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return jvalue.NewUint(u), true
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return jvalue.NewFloat(f), true
	}
	return jvalue.Value{}, false
}

func unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("pathexpr: malformed string literal %q", s)
	}
	inner := s[1 : len(s)-1]
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			b.WriteByte(inner[i+1])
			i++
			continue
		}
		b.WriteByte(inner[i])
	}
	return b.String(), nil
}

// Evaluate applies the expression against value, returning the truthy
// result of a comparison, or the truthy-evaluated bare path when no
// operator is present (spec: "When op is absent the expression is
// truthy-evaluated").
func (e Expression) Evaluate(ctx *jvalue.Context, value jvalue.Value) bool {
	lhs := Eval(ctx, value, e.Path)
	if !e.HasRhs {
		return Truthy(lhs)
	}
	var rhs jvalue.Value
	if e.Rhs.IsPath {
		rhs = Eval(ctx, value, e.Rhs.Path)
	} else {
		rhs = e.Rhs.Literal
	}
	if lhs.Kind() == jvalue.KindError || rhs.Kind() == jvalue.KindError {
		return false
	}
	c := Compare(lhs, rhs)
	switch e.Op {
	case OpEq:
		return c == 0
	case OpNe:
		return c != 0
	case OpLt:
		return c < 0
	case OpLe:
		return c <= 0
	case OpGt:
		return c > 0
	case OpGe:
		return c >= 0
	}
	return false
}
