package typedindex

import (
	"slices"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

type players []string
type scores []int

func TestFromRoundTrip(t *testing.T) {
	assert.Equal(t, 7, From[string, players](7).Raw())
	assert.Equal(t, uint32(0), From[string, players](uint32(0)).Raw())
	assert.Equal(t, int8(-3), From[int, scores](int8(-3)).Raw())

	// Raw is any ordered type, not just integers.
	assert.Equal(t, "k-42", From[int, scores]("k-42").Raw())
}

func TestSetRawWithRaw(t *testing.T) {
	idx := From[string, players](1)

	idx.SetRaw(4)
	assert.Equal(t, 4, idx.Raw())

	other := idx.WithRaw(9)
	assert.Equal(t, 9, other.Raw())
	assert.Equal(t, 4, idx.Raw(), "WithRaw must not mutate the receiver")
}

func TestEqualityDelegatesToRaw(t *testing.T) {
	a := From[string, players](2)
	b := From[string, players](2)
	c := From[string, players](3)

	assert.True(t, a == b)
	assert.False(t, a == c)

	// Usable as a map key; hashing follows the raw value.
	m := map[Index[string, players, int]]string{}
	m[a] = "first"
	m[b] = "second"
	assert.Len(t, m, 1)
	assert.Equal(t, "second", m[a])
}

func TestOrderingDelegatesToRaw(t *testing.T) {
	a := From[string, players](1)
	b := From[string, players](5)

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))

	idxs := []Index[string, players, int]{From[string, players](3), From[string, players](0), From[string, players](2)}
	slices.SortFunc(idxs, func(x, y Index[string, players, int]) int { return x.Compare(y) })
	assert.Equal(t, []int{0, 2, 3}, []int{idxs[0].Raw(), idxs[1].Raw(), idxs[2].Raw()})
}

func TestStringRendersOwnerType(t *testing.T) {
	idx := From[string, players](2)
	assert.Equal(t, "Index[typedindex.players](2)", idx.String())

	b := Bytes("ab").IndexTo(0)
	assert.Equal(t, "Index[typedindex.Bytes](0)", b.String())
}

func TestZeroFootprintMarkers(t *testing.T) {
	// The markers never appear in a field: the wrapper's layout is
	// exactly the raw value's layout, for any raw width.
	assert.Equal(t, unsafe.Sizeof(uint8(0)), unsafe.Sizeof(Index[string, players, uint8]{}))
	assert.Equal(t, unsafe.Sizeof(uint32(0)), unsafe.Sizeof(Index[[1024]byte, players, uint32]{}))
	assert.Equal(t, unsafe.Sizeof(int(0)), unsafe.Sizeof(Index[string, players, int]{}))
	assert.Equal(t, unsafe.Sizeof(""), unsafe.Sizeof(Index[int, scores, string]{}))
}
