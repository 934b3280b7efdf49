package list

import (
	"fmt"
	"testing"

	"github.com/npillmayer/fp/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestEmptyList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chain.list")
	defer teardown()
	//
	l := Immutable[int]()
	require.True(t, l.IsEmpty())
	require.Equal(t, maybe.Nothing[int](), l.Head())
	require.True(t, l.Tail().IsEmpty(), "tail of the empty list is empty")
}

func TestListPush(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chain.list")
	defer teardown()
	//
	l := Immutable[int]()
	m := l.Push(5)
	require.Equal(t, maybe.Just(5), m.Head())
	require.True(t, l.IsEmpty(), "push leaves the receiver unchanged")
}

func TestListTail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chain.list")
	defer teardown()
	//
	l := Immutable[int]().Push(1).Push(2).Push(3)
	require.Equal(t, maybe.Just(3), l.Head())

	l = l.Tail()
	require.Equal(t, maybe.Just(2), l.Head())
	l = l.Tail()
	require.Equal(t, maybe.Just(1), l.Head())
	l = l.Tail()
	require.Equal(t, maybe.Nothing[int](), l.Head())

	// tail of an already empty list works, too
	l = l.Tail()
	require.Equal(t, maybe.Nothing[int](), l.Head())
}

func TestListSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chain.list")
	defer teardown()
	//
	a := Immutable[int]().Push(1).Push(2)
	b := a.Push(3)
	c := a.Tail()
	t.Logf("a = %v, b = %v, c = %v", a, b, c)
	require.Equal(t, maybe.Just(2), a.Head())
	require.Equal(t, maybe.Just(3), b.Head())
	require.Equal(t, maybe.Just(1), c.Head())

	// releasing b must not touch the suffix shared with a and c
	b.Release()
	require.True(t, b.IsEmpty())
	require.Equal(t, maybe.Just(2), a.Head())
	require.Equal(t, maybe.Just(1), c.Head())
	require.Equal(t, 2, a.Len())
}

func TestListClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chain.list")
	defer teardown()
	//
	a := Immutable[int]().Push(1).Push(2)
	b := a.Clone()
	require.EqualValues(t, 2, a.head.refs.Load(), "node⟨2⟩: handles a + b")

	// releasing a must leave the clone's chain fully intact
	a.Release()
	require.True(t, a.IsEmpty())
	require.Equal(t, maybe.Just(2), b.Head())
	var got []int
	for v := range b.All() {
		got = append(got, v)
	}
	require.Equal(t, []int{2, 1}, got)
	require.EqualValues(t, 1, b.head.refs.Load(), "node⟨2⟩: handle b only")
}

func TestListCloneOfEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chain.list")
	defer teardown()
	//
	l := Immutable[int]()
	m := l.Clone()
	require.True(t, m.IsEmpty())
	m.Release()
	require.True(t, m.IsEmpty())
}

func TestListReferenceCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chain.list")
	defer teardown()
	//
	base := Immutable[int]().Push(1) // node⟨1⟩ owned by base
	a := base.Push(2)                // node⟨2⟩ owned by a; node⟨1⟩ shared
	b := a.Push(3)                   // node⟨3⟩ owned by b; node⟨2⟩ shared
	c := a.Tail()                    // node⟨1⟩ shared once more

	require.EqualValues(t, 1, b.head.refs.Load(), "node⟨3⟩: handle b")
	require.EqualValues(t, 2, a.head.refs.Load(), "node⟨2⟩: handle a + node⟨3⟩")
	require.EqualValues(t, 3, c.head.refs.Load(), "node⟨1⟩: handles base, c + node⟨2⟩")

	b.Release() // node⟨3⟩ reclaimed, walk stops at shared node⟨2⟩
	require.EqualValues(t, 1, a.head.refs.Load(), "node⟨2⟩: handle a only")
	require.EqualValues(t, 3, c.head.refs.Load(), "node⟨1⟩ untouched by release of b")
}

func TestListIteration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chain.list")
	defer teardown()
	//
	l := Immutable[int]().Push(1).Push(2).Push(3)
	for round := 0; round < 2; round++ {
		want := 3
		for v := range l.All() {
			require.Equal(t, want, v, "round %d", round)
			want--
		}
	}
	require.Equal(t, 3, l.Len(), "iteration leaves the list intact")
}

func TestListFold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chain.list")
	defer teardown()
	//
	l := Immutable[int]().Push(1).Push(2).Push(3)
	sum := Fold(l, func(acc, v int) int { return acc + v }, 0)
	require.Equal(t, 6, sum)
}

func TestListReleaseLongChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chain.list")
	defer teardown()
	//
	const count = 100_000
	l := Immutable[int]()
	for i := 0; i < count; i++ {
		next := l.Push(i)
		l.Release() // give up the intermediate handle
		l = next
	}
	require.Equal(t, count, l.Len())
	l.Release() // walks and unlinks the complete unshared chain
	require.True(t, l.IsEmpty())

	l = l.Push(7) // released handle is an empty list, reusable
	require.Equal(t, maybe.Just(7), l.Head())
}

func ExampleList() {
	l := Immutable[string]().Push("world").Push("hello")
	for v := range l.All() {
		fmt.Println(v)
	}
	// Output:
	// hello
	// world
}
