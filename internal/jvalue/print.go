package jvalue

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
)

// PrintFlags controls pretty_print's layout (spec §6).
type PrintFlags struct {
	Indent int // spaces per level; 0 means compact (no newlines)
}

// PrettyPrint implements the library's pretty_print(value, indent, flags)
// contract. No off-the-shelf JSON encoder can serialize our ordered-object
// representation (stdlib and goccy/go-json both marshal Go maps, which have
// no defined key order), so this recursive writer is the one place jvalue
// cannot delegate to a third-party encoder; see DESIGN.md.
func PrettyPrint(ctx *Context, v Value, indent int) []byte {
	var buf bytes.Buffer
	writeValue(&buf, ctx, v, indent, 0)
	return buf.Bytes()
}

// PrettyPrintTo is the file-sink variant named in spec §6.
func PrettyPrintTo(f *os.File, ctx *Context, v Value, indent int) error {
	_, err := f.Write(PrettyPrint(ctx, v, indent))
	return err
}

func writeValue(buf *bytes.Buffer, ctx *Context, v Value, indent, depth int) {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindUint:
		buf.WriteString(strconv.FormatUint(v.u, 10))
	case KindFloat:
		buf.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindString:
		writeJSONString(buf, v.atom.text)
	case KindArray:
		writeArray(buf, ctx, v, indent, depth)
	case KindObject:
		writeObject(buf, ctx, v, indent, depth)
	case KindError:
		buf.WriteString(fmt.Sprintf("null /* error: %s */", v.err))
	}
}

func writeArray(buf *bytes.Buffer, ctx *Context, v Value, indent, depth int) {
	if len(v.elems) == 0 {
		buf.WriteString("[]")
		return
	}
	buf.WriteByte('[')
	for i, e := range v.elems {
		if i > 0 {
			buf.WriteByte(',')
		}
		newline(buf, indent, depth+1)
		writeValue(buf, ctx, e, indent, depth+1)
	}
	newline(buf, indent, depth)
	buf.WriteByte(']')
}

func writeObject(buf *bytes.Buffer, ctx *Context, v Value, indent, depth int) {
	if len(v.pairs) == 0 {
		buf.WriteString("{}")
		return
	}
	buf.WriteByte('{')
	for i, p := range v.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		newline(buf, indent, depth+1)
		writeJSONString(buf, p.Key.text)
		buf.WriteByte(':')
		if indent > 0 {
			buf.WriteByte(' ')
		}
		writeValue(buf, ctx, p.Value, indent, depth+1)
	}
	newline(buf, indent, depth)
	buf.WriteByte('}')
}

func newline(buf *bytes.Buffer, indent, depth int) {
	if indent <= 0 {
		return
	}
	buf.WriteByte('\n')
	for i := 0; i < indent*depth; i++ {
		buf.WriteByte(' ')
	}
}

func writeJSONString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\t':
			buf.WriteString(`\t`)
		case '\r':
			buf.WriteString(`\r`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}
