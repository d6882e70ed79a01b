package jvalue

import "math"

// Container ids are derived from the container's own content/shape rather
// than allocation order (spec §3: "deterministically derived from an array
// or object value"), so that two structurally identical containers built at
// different times collapse to the same id, and — the property §9 actually
// needs — a container whose content is untouched by a transformation (e.g.
// a nested object a :sort never descends into) keeps the same id across the
// rebuild, letting its expansion bit survive. Child containers contribute
// their own id to their parent's hash instead of being re-walked, since by
// construction every child Value passed to NewArray/NewObject already has
// its id computed bottom-up.
//
// This is an FNV-1a style mix, not a cryptographic hash: spec §8 only asks
// that distinct containers avoid colliding "with overwhelming probability",
// which a 64-bit mix comfortably satisfies for the tree sizes this tool
// deals with.
const (
	hashOffset = 14695981039346656037
	hashPrime  = 1099511628211
)

func mixByte(h uint64, b byte) uint64 {
	h ^= uint64(b)
	h *= hashPrime
	return h
}

func mixUint64(h, v uint64) uint64 {
	for i := 0; i < 8; i++ {
		h = mixByte(h, byte(v>>(8*i)))
	}
	return h
}

func mixString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h = mixByte(h, s[i])
	}
	return h
}

// valueSignature returns a content hash for v: containers contribute their
// own (already content-derived) id, scalars hash their bits/text directly.
func valueSignature(v Value) uint64 {
	switch v.kind {
	case KindNull:
		return mixByte(hashOffset, 0)
	case KindBool:
		if v.b {
			return mixByte(hashOffset, 2)
		}
		return mixByte(hashOffset, 1)
	case KindInt:
		return mixUint64(mixByte(hashOffset, 3), uint64(v.i))
	case KindUint:
		return mixUint64(mixByte(hashOffset, 4), v.u)
	case KindFloat:
		return mixUint64(mixByte(hashOffset, 5), math.Float64bits(v.f))
	case KindString:
		return mixString(mixByte(hashOffset, 6), v.atom.text)
	case KindArray, KindObject:
		return mixUint64(mixByte(hashOffset, 7), v.id)
	default:
		return mixByte(hashOffset, 0xff)
	}
}

// hashElems derives a content hash for an array's elements.
func hashElems(elems []Value) uint64 {
	h := mixString(hashOffset, "array")
	for _, e := range elems {
		h = mixUint64(h, valueSignature(e))
	}
	return h
}

// hashPairs derives a content hash for an object's (key, value) pairs, key
// text included so {"a":1} and {"b":1} never collide on their sole value.
func hashPairs(pairs []Pair) uint64 {
	h := mixString(hashOffset, "object")
	for _, p := range pairs {
		h = mixString(h, p.Key.text)
		h = mixUint64(h, valueSignature(p.Value))
	}
	return h
}

// containerID folds a content hash into the spec's even/odd tagging
// (arrays even, objects odd), steering clear of 0 (the "non-container"
// sentinel) in the vanishingly unlikely case the hash lands on it.
func containerID(h uint64, objectTag bool) uint64 {
	id := h &^ 1
	if objectTag {
		return id | 1
	}
	if id == 0 {
		id = 2
	}
	return id
}
