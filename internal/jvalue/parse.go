package jvalue

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
)

// Flags mirrors the library's parse(bytes, flags) contract (spec §6).
type Flags struct {
	Braceless      bool // allow a bare top-level "k":v,... without {}
	NDJSON         bool // newline-delimited: parse returns an array of values
	InternObjects  bool // eagerly atomize all object keys (always true here; kept for API parity)
	NoCopyStrings  bool // historical hint from the C library; no-op in Go (strings already share backing arrays)
}

// Parse decodes bytes into a Value tree, preserving object key order (which
// encoding/json-shaped decoders do not do natively for map[string]any) by
// walking goccy/go-json's token stream by hand.
func (c *Context) Parse(data []byte, flags Flags) (Value, error) {
	if flags.NDJSON {
		return c.parseNDJSON(data, flags)
	}
	data = maybeUnbrace(data, flags)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := c.decodeValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("jvalue: parse: %w", err)
	}
	return v, nil
}

func (c *Context) parseNDJSON(data []byte, flags Flags) (Value, error) {
	lines := bytes.Split(data, []byte("\n"))
	elems := make([]Value, 0, len(lines))
	for _, line := range lines {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(maybeUnbrace(line, flags)))
		dec.UseNumber()
		v, err := c.decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("jvalue: parse ndjson line: %w", err)
		}
		elems = append(elems, v)
	}
	return c.NewArray(elems), nil
}

// maybeUnbrace implements the "braceless" parse flag: when the trimmed input
// doesn't already start with { or [, and the caller asked for braceless
// parsing, wrap it in {} so `"a": 1, "b": 2`-shaped fragments parse as an
// object (DrJson's own braceless-repl convenience). Keys still have to be
// quoted: the wrapped text goes through the ordinary JSON decoder.
func maybeUnbrace(data []byte, flags Flags) []byte {
	if !flags.Braceless {
		return data
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return data
	}
	switch trimmed[0] {
	case '{', '[':
		return data
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(trimmed)
	buf.WriteByte('}')
	return buf.Bytes()
}

func (c *Context) decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return c.decodeFromToken(dec, tok)
}

func (c *Context) decodeFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case string:
		return c.NewString(t), nil
	case json.Number:
		return numberValue(string(t)), nil
	case json.Delim:
		switch t {
		case '{':
			return c.decodeObject(dec)
		case '[':
			return c.decodeArray(dec)
		}
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func (c *Context) decodeObject(dec *json.Decoder) (Value, error) {
	pairs := make([]Pair, 0, 8)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		keyStr, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("expected object key, got %v", keyTok)
		}
		val, err := c.decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		pairs = append(pairs, Pair{Key: c.Atomize(keyStr), Value: val})
	}
	// consume closing '}'
	if _, err := dec.Token(); err != nil && err != io.EOF {
		return Value{}, err
	}
	return c.NewObject(pairs), nil
}

func (c *Context) decodeArray(dec *json.Decoder) (Value, error) {
	elems := make([]Value, 0, 8)
	for dec.More() {
		val, err := c.decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, val)
	}
	if _, err := dec.Token(); err != nil && err != io.EOF {
		return Value{}, err
	}
	return c.NewArray(elems), nil
}

// numberValue classifies a JSON number literal: without '.', 'e' or 'E' it
// becomes a uint (non-negative) or an int (negative), anything else a float,
// so a bare literal like "42" in the document stays an integer, not a float.
func numberValue(lit string) Value {
	if !strings.ContainsAny(lit, ".eE") {
		if lit != "" && lit[0] == '-' {
			var i int64
			if _, err := fmt.Sscanf(lit, "%d", &i); err == nil {
				return NewInt(i)
			}
		} else {
			var u uint64
			if _, err := fmt.Sscanf(lit, "%d", &u); err == nil {
				return NewUint(u)
			}
		}
	}
	var f float64
	fmt.Sscanf(lit, "%g", &f)
	return NewFloat(f)
}
