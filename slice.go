package typedindex

// Slice is a sequence container wired to the capability interfaces.
//
// The blanket functions (IndexTo, At, Ref) already cover every named
// slice type; Slice exists for call sites that want the interface
// surface — Minter, Reader, Mutator and the index-first Get/GetRef
// style — without declaring methods of their own. Methods fix the raw
// index type to int, the native index type; use the blanket functions
// for other raw widths.
//
// Two Slice values with the same element type share an owner marker.
// For containers that must be mutually incompatible, define distinct
// named slice types and use the blanket functions instead.
type Slice[E any] []E

// Compile time check that the wrappers satisfy the capability interfaces.
var (
	_ Minter[int, Slice[int], int]  = Slice[int](nil)
	_ Reader[int, Slice[int], int]  = Slice[int](nil)
	_ Mutator[int, Slice[int], int] = Slice[int](nil)
	_ Minter[byte, Bytes, int]      = Bytes(nil)
	_ Reader[byte, Bytes, int]      = Bytes(nil)
	_ Mutator[byte, Bytes, int]     = Bytes(nil)
)

// IndexTo mints a typed index for s. No range check is performed.
func (s Slice[E]) IndexTo(raw int) Index[E, Slice[E], int] {
	return Index[E, Slice[E], int]{raw: raw}
}

// TypedAt returns the element at idx. Panics if the raw index is out of
// range, exactly as s[i] would.
func (s Slice[E]) TypedAt(idx Index[E, Slice[E], int]) E {
	return s[idx.raw]
}

// TypedRef returns the address of the element at idx for in-place
// mutation. Panics if the raw index is out of range.
func (s Slice[E]) TypedRef(idx Index[E, Slice[E], int]) *E {
	return &s[idx.raw]
}

// Text is an immutable text buffer wired to the read-side capability
// interfaces. Indexing is at byte granularity and there is no Mutator
// implementation, matching native string indexing, which has no mutable
// form.
type Text string

var (
	_ Minter[byte, Text, int] = Text("")
	_ Reader[byte, Text, int] = Text("")
)

// IndexTo mints a typed index for t. No range check is performed.
func (t Text) IndexTo(raw int) Index[byte, Text, int] {
	return Index[byte, Text, int]{raw: raw}
}

// TypedAt returns the byte at idx. Panics if the raw index is out of
// range.
func (t Text) TypedAt(idx Index[byte, Text, int]) byte {
	return t[idx.raw]
}

// Bytes is a byte buffer wired to the capability interfaces, indexed at
// byte granularity.
type Bytes []byte

// IndexTo mints a typed index for b. No range check is performed.
func (b Bytes) IndexTo(raw int) Index[byte, Bytes, int] {
	return Index[byte, Bytes, int]{raw: raw}
}

// TypedAt returns the byte at idx. Panics if the raw index is out of
// range.
func (b Bytes) TypedAt(idx Index[byte, Bytes, int]) byte {
	return b[idx.raw]
}

// TypedRef returns the address of the byte at idx. Panics if the raw
// index is out of range.
func (b Bytes) TypedRef(idx Index[byte, Bytes, int]) *byte {
	return &b[idx.raw]
}
