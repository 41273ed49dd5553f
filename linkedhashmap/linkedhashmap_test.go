package linkedhashmap

import (
	"testing"

	"github.com/dreamware/ordcontainers/ordmap"
	"github.com/stretchr/testify/require"
)

func forward(m *Map[int, string]) []int {
	var out []int
	for it := m.Begin(); it.Valid(); it.Next() {
		out = append(out, it.Key())
	}
	return out
}

func backward(m *Map[int, string]) []int {
	var out []int
	it := m.End()
	for it.Prev(); it.Valid(); it.Prev() {
		out = append(out, it.Key())
	}
	return out
}

func TestAddHeadAddTail(t *testing.T) {
	m := New[int, string]()
	require.NoError(t, m.AddTail(2, "b"))
	require.NoError(t, m.AddTail(3, "c"))
	require.NoError(t, m.AddHead(1, "a"))
	require.Equal(t, []int{1, 2, 3}, forward(m))
	require.Equal(t, 1, m.Head())
	require.Equal(t, 3, m.Tail())
}

func TestAddHeadDuplicateIsNoop(t *testing.T) {
	m := New[int, string]()
	require.NoError(t, m.AddHead(1, "a"))
	require.NoError(t, m.AddHead(1, "z")) // silent no-op, not an error
	it := m.Find(1)
	require.True(t, it.Valid())
	require.Equal(t, "a", it.Value())
	require.Equal(t, 1, m.Len())
}

func TestAddTailDuplicateErrors(t *testing.T) {
	m := New[int, string]()
	require.NoError(t, m.AddTail(1, "a"))
	err := m.AddTail(1, "z")
	require.ErrorIs(t, err, ordmap.ErrDuplicateKey)
}

func TestReservedKeyRejected(t *testing.T) {
	m := New[int, string]()
	null := ordmap.NullKey[int]()
	require.ErrorIs(t, m.AddHead(null, "x"), ordmap.ErrReservedKey)
	require.ErrorIs(t, m.AddTail(null, "x"), ordmap.ErrReservedKey)
}

func TestInsertBeforeAfter(t *testing.T) {
	m := New[int, string]()
	require.NoError(t, m.AddTail(1, "a"))
	require.NoError(t, m.AddTail(3, "c"))
	require.NoError(t, m.InsertBefore(2, "b", 3))
	require.Equal(t, []int{1, 2, 3}, forward(m))

	require.NoError(t, m.InsertAfter(4, "d", 3))
	require.Equal(t, []int{1, 2, 3, 4}, forward(m))

	require.ErrorIs(t, m.InsertBefore(5, "e", 99), ordmap.ErrNotFound)
	require.ErrorIs(t, m.InsertBefore(1, "dup", 3), ordmap.ErrDuplicateKey)
}

func TestInsertBeforeHeadDelegatesToAddHead(t *testing.T) {
	m := New[int, string]()
	require.NoError(t, m.AddTail(2, "b"))
	require.NoError(t, m.InsertBefore(1, "a", 2))
	require.Equal(t, 1, m.Head())
	require.Equal(t, []int{1, 2}, forward(m))
}

func TestRemoveHeadTailArbitrary(t *testing.T) {
	m := New[int, string]()
	for _, k := range []int{1, 2, 3, 4, 5} {
		m.AddTail(k, "")
	}
	require.True(t, m.Remove(3))
	require.Equal(t, []int{1, 2, 4, 5}, forward(m))

	require.True(t, m.RemoveHead())
	require.Equal(t, []int{2, 4, 5}, forward(m))

	require.True(t, m.RemoveTail())
	require.Equal(t, []int{2, 4}, forward(m))

	require.False(t, m.Remove(99))
}

func TestForwardAndReverseTraversalAreMirrorImages(t *testing.T) {
	m := New[int, string]()
	for _, k := range []int{1, 2, 3, 4, 5} {
		m.AddTail(k, "")
	}
	fwd := forward(m)
	back := backward(m)
	require.Len(t, back, len(fwd))
	for i := range fwd {
		require.Equal(t, fwd[i], back[len(back)-1-i])
	}
}

func TestValueAt(t *testing.T) {
	m := New[int, string]()
	m.AddTail(1, "a")
	m.AddTail(2, "b")
	m.AddTail(3, "c")

	v, ok := m.ValueAt(1)
	require.True(t, ok)
	require.Equal(t, "b", v)

	_, ok = m.ValueAt(99)
	require.False(t, ok)
}

func TestEqual(t *testing.T) {
	a := New[int, string]()
	b := New[int, string]()
	for _, k := range []int{1, 2, 3} {
		a.AddTail(k, "x")
		b.AddTail(k*100, "x")
	}
	eq := func(x, y string) bool { return x == y }
	require.True(t, a.Equal(b, eq))

	b.AddTail(4, "y")
	require.False(t, a.Equal(b, eq))
}

func TestRemoveAllEmptiesMap(t *testing.T) {
	m := New[int, string]()
	for _, k := range []int{1, 2, 3} {
		m.AddTail(k, "")
	}
	require.True(t, m.RemoveHead())
	require.True(t, m.RemoveHead())
	require.True(t, m.RemoveHead())
	require.Equal(t, 0, m.Len())
	require.Equal(t, ordmap.NullKey[int](), m.Head())
	require.Equal(t, ordmap.NullKey[int](), m.Tail())
	require.False(t, m.Begin().Valid())
}
