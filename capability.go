package typedindex

// Minter is implemented by containers that mint typed indexes for
// themselves. The returned index is bound to the container's element
// type E and owner type O, so it cannot be presented to a container of
// a different type.
//
// Minting performs no range check: a minted index is validated only
// when it is eventually resolved against a container.
type Minter[E any, O any, R Raw] interface {
	IndexTo(raw R) Index[E, O, R]
}

// Reader provides read access through a typed index. Implementations
// forward to their native indexing and inherit its out-of-range panic.
type Reader[E any, O any, R Raw] interface {
	TypedAt(idx Index[E, O, R]) E
}

// Mutator provides write access through a typed index by exposing the
// element's address. The caller must hold exclusive access to the
// container while the returned pointer is in use, the same discipline
// native indexing demands.
type Mutator[E any, O any, R Raw] interface {
	TypedRef(idx Index[E, O, R]) *E
}

// MintedAt mints a typed index from any Minter. Equivalent to calling
// m.IndexTo(raw); provided so minting can be written in one style
// regardless of the concrete container.
func MintedAt[E any, O any, R Raw](m Minter[E, O, R], raw R) Index[E, O, R] {
	return m.IndexTo(raw)
}

// ReadAt resolves idx against any Reader.
func ReadAt[E any, O any, R Raw](r Reader[E, O, R], idx Index[E, O, R]) E {
	return r.TypedAt(idx)
}

// WriteRef resolves idx against any Mutator, returning the element's
// address for in-place mutation.
func WriteRef[E any, O any, R Raw](m Mutator[E, O, R], idx Index[E, O, R]) *E {
	return m.TypedRef(idx)
}
