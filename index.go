package typedindex

import (
	"cmp"
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Raw is the constraint for raw index types: any ordered, comparable
// value type. Integers of any width are the common case; strings are
// permitted for containers addressed by ordered keys.
type Raw interface {
	constraints.Ordered
}

// Index is a strongly typed index into a container holding elements of
// type E and owned by a container of type O.
//
// E and O are compile-time markers: they never appear in a field, so an
// Index occupies exactly the memory of its raw value R. Two Index types
// with different markers are distinct types, and mixing them is a
// compile error rather than a runtime check.
//
// An Index carries no reference to the container it was minted from. It
// is a detached coordinate: applying it to a container whose length has
// shrunk below the raw value panics exactly as native indexing would.
type Index[E any, O any, R Raw] struct {
	raw R
}

// From wraps a raw index value. It is total: any raw value is accepted,
// including values that are out of range for every existing container.
func From[E any, O any, R Raw](raw R) Index[E, O, R] {
	return Index[E, O, R]{raw: raw}
}

// Raw returns the stored raw index value.
func (i Index[E, O, R]) Raw() R { return i.raw }

// SetRaw replaces the stored raw index value in place.
func (i *Index[E, O, R]) SetRaw(raw R) { i.raw = raw }

// WithRaw returns a copy of the index with the raw value replaced.
func (i Index[E, O, R]) WithRaw(raw R) Index[E, O, R] {
	i.raw = raw
	return i
}

// Compare orders two indexes by their raw values.
func (i Index[E, O, R]) Compare(other Index[E, O, R]) int {
	return cmp.Compare(i.raw, other.raw)
}

// Less reports whether i sorts before other by raw value.
func (i Index[E, O, R]) Less(other Index[E, O, R]) bool {
	return i.raw < other.raw
}

// String renders the index with the owner type it is bound to, e.g.
// "Index[main.Players](3)". The format is diagnostic output only and
// may change between versions; do not parse it.
func (i Index[E, O, R]) String() string {
	return fmt.Sprintf("Index[%s](%v)", reflect.TypeOf((*O)(nil)).Elem().String(), i.raw)
}
