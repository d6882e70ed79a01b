package jvalue

// Atom is an interned, immutable string identifier. Two equal strings
// atomized within the same Context compare equal in O(1) (spec §3).
type Atom struct {
	id   uint32
	text string
}

// Text returns the atom's underlying bytes as a string (the "(text, length)"
// pair from spec §3; Go strings already carry their own length).
func (a Atom) Text() string { return a.text }

// Context owns the atom table for one loaded document's lifetime (spec §5:
// "The JSON library context owns every value and every atom; its lifetime
// bounds all references held by navigation state."). Container ids are
// content-derived (hash.go) and need no counter here.
type Context struct {
	byText map[string]Atom
	byID   []string
}

// NewContext creates an empty atom table / container-id arena.
func NewContext() *Context {
	return &Context{byText: make(map[string]Atom, 64)}
}

// Atomize interns text, returning the existing Atom if text was already
// seen in this context, or allocating a new one otherwise.
func (c *Context) Atomize(text string) Atom {
	if a, ok := c.byText[text]; ok {
		return a
	}
	a := Atom{id: uint32(len(c.byID)), text: text}
	c.byID = append(c.byID, text)
	c.byText[text] = a
	return a
}

// AtomText looks up the text for an atom id (mirrors the library's
// atom_text(atom) -> bytes contract); it trusts the Atom's own cached text,
// so this is here mainly for parity with the spec'd API shape.
func (c *Context) AtomText(a Atom) string { return a.text }

// NewString wraps an already-known string as a Value, atomizing it.
func (c *Context) NewString(s string) Value {
	return Value{kind: KindString, atom: c.Atomize(s)}
}

// NewStringAtom wraps an already-interned atom directly.
func (c *Context) NewStringAtom(a Atom) Value {
	return Value{kind: KindString, atom: a}
}

func NewNull() Value  { return Value{kind: KindNull} }
func NewBool(b bool) Value  { return Value{kind: KindBool, b: b} }
func NewInt(i int64) Value  { return Value{kind: KindInt, i: i} }
func NewUint(u uint64) Value { return Value{kind: KindUint, u: u} }
func NewFloat(f float64) Value { return Value{kind: KindFloat, f: f} }

// NewArray derives elems' content id (even, low bit 0; spec §3).
func (c *Context) NewArray(elems []Value) Value {
	id := containerID(hashElems(elems), false)
	return Value{kind: KindArray, elems: elems, id: id}
}

// NewObject derives pairs' content id (odd, low bit 1; spec §3).
func (c *Context) NewObject(pairs []Pair) Value {
	id := containerID(hashPairs(pairs), true)
	return Value{kind: KindObject, pairs: pairs, id: id}
}

// GC drops every atom unreachable from roots, mirroring the library's
// gc(roots) contract. It returns the number of atoms reclaimed. Container
// ids need no reclaiming (they're derived from content, not allocated
// storage), only the atom text table is compacted.
func (c *Context) GC(roots []Value) int {
	live := make(map[uint32]bool, len(c.byID))
	var mark func(Value)
	mark = func(v Value) {
		switch v.kind {
		case KindString:
			live[v.atom.id] = true
		case KindArray:
			for _, e := range v.elems {
				mark(e)
			}
		case KindObject:
			for _, p := range v.pairs {
				live[p.Key.id] = true
				mark(p.Value)
			}
		}
	}
	for _, r := range roots {
		mark(r)
	}
	reclaimed := 0
	newByText := make(map[string]Atom, len(live))
	for text, a := range c.byText {
		if live[a.id] {
			newByText[text] = a
		} else {
			reclaimed++
		}
	}
	c.byText = newByText
	return reclaimed
}
