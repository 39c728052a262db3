package typedindex

import "golang.org/x/exp/constraints"

// Blanket bindings: any named slice type is natively indexable by an
// integer, so it can mint and consume typed indexes with itself as the
// owner marker. No registration is required; defining
//
//	type Players []Player
//
// is enough for IndexTo, At and Ref to produce and accept
// Index[Player, Players, R] values that no other container type can
// use.

// IndexTo mints a typed index into s. The index is bound to s's element
// type and to the named slice type O itself, so indexes minted from
// differently named slice types are mutually incompatible even when
// their element types match.
func IndexTo[E any, O ~[]E, R constraints.Integer](s O, raw R) Index[E, O, R] {
	return Index[E, O, R]{raw: raw}
}

// At returns the element of s at idx.
//
// Panics if the raw index is out of range, exactly as s[i] would; the
// typed layer neither adds nor removes a bounds check.
func At[E any, O ~[]E, R constraints.Integer](s O, idx Index[E, O, R]) E {
	return s[idx.raw]
}

// Ref returns the address of the element of s at idx, for in-place
// mutation. Panics if the raw index is out of range.
func Ref[E any, O ~[]E, R constraints.Integer](s O, idx Index[E, O, R]) *E {
	return &s[idx.raw]
}

// ByteIndexTo mints a typed index into a string or byte slice at byte
// granularity, matching how such buffers are natively indexed.
func ByteIndexTo[O ~string | ~[]byte, R constraints.Integer](s O, raw R) Index[byte, O, R] {
	return Index[byte, O, R]{raw: raw}
}

// ByteAt returns the byte of s at idx. Panics if the raw index is out
// of range. There is no mutable counterpart for strings, matching
// native string indexing.
func ByteAt[O ~string | ~[]byte, R constraints.Integer](s O, idx Index[byte, O, R]) byte {
	return s[idx.raw]
}

// RawAt reads s at a bare, untyped raw index. It exists so the
// index-first calling style also covers raw values that were never
// wrapped; it is native indexing with no typed guarantee attached.
func RawAt[E any, O ~[]E, R constraints.Integer](s O, raw R) E {
	return s[raw]
}

// RawRef is the mutable counterpart of RawAt.
func RawRef[E any, O ~[]E, R constraints.Integer](s O, raw R) *E {
	return &s[raw]
}
