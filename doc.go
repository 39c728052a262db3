// Package typedindex provides strongly typed, zero-cost indexes for
// slices, strings and user-defined containers.
//
// A raw int obtained from one collection can silently index a
// different, unrelated collection of the same length. typedindex makes
// that a compile error: an Index carries the element type and the
// owning container type as compile-time markers, while occupying
// exactly the memory of its raw value and compiling down to native
// indexing.
//
// # Quick Start
//
// Give each collection its own named slice type; the type itself
// becomes the index's identity:
//
//	type Integers []int
//	type Booleans []bool
//
//	integers := Integers{10, 20, 30}
//	booleans := Booleans{true, false}
//
//	intIdx := typedindex.IndexTo(integers, 1)  // Index[int, Integers, int]
//	boolIdx := typedindex.IndexTo(booleans, 0) // Index[bool, Booleans, int]
//
//	typedindex.At(integers, intIdx)  // 20
//	typedindex.At(booleans, boolIdx) // true
//
//	// compile error:
//	// typedindex.At(booleans, intIdx)
//	// typedindex.At(integers, boolIdx)
//
// Indexes can also be built directly from a raw value:
//
//	idx := typedindex.From[int, Integers](1)
//	typedindex.At(integers, idx) // 20
//
// # Capability Interfaces
//
// Containers other than slices participate by implementing Minter,
// Reader and Mutator. The Slice and Bytes wrappers implement all three
// (Text the read-only pair), which also enables the index-first calling
// style:
//
//	s := typedindex.Slice[string]{"a", "b"}
//	idx := s.IndexTo(1)
//	idx.Get(s) // "b"
//
// # Bounds Behavior
//
// typedindex never adds or removes a bounds check. Resolving an index
// whose raw value is out of range panics exactly as native indexing
// would; what the typed layer restricts is which container an index can
// legally be presented to, and that restriction is enforced entirely at
// compile time.
//
// # Serialization
//
// An Index marshals to and from JSON as its bare raw value; the markers
// are supplied by the static type at the call site, not recovered from
// the bytes. The codec subpackage provides pluggable JSON engines for
// embedding indexes in larger documents.
package typedindex
