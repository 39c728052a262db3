package typedindex

// Reverse-direction access: the index is the receiver and the container
// the argument. Get and GetRef simply forward to the container's
// capability with the arguments swapped; there are no new semantics.

// Get resolves the index against c, returning the element it addresses.
// Panics if the raw index is out of range for c.
func (i Index[E, O, R]) Get(c Reader[E, O, R]) E {
	return c.TypedAt(i)
}

// GetRef resolves the index against c, returning the element's address
// for in-place mutation. Panics if the raw index is out of range for c.
func (i Index[E, O, R]) GetRef(c Mutator[E, O, R]) *E {
	return c.TypedRef(i)
}
