package set

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	var s Set[int]
	require.False(t, s.Has(1))

	require.True(t, s.Insert(1))
	require.False(t, s.Insert(1))
	require.True(t, s.Insert(2))
	require.Equal(t, 2, s.Len())

	s.Remove(1)
	require.False(t, s.Has(1))

	s.Clear()
	require.Equal(t, 0, s.Len())
	require.True(t, s.Insert(1))
}

func TestSet_Difference(t *testing.T) {
	var a, b Set[string]
	a.Insert("x")
	a.Insert("y")
	a.Insert("z")
	b.Insert("y")

	diff := slices.Sorted(a.Difference(&b))
	require.Equal(t, []string{"x", "z"}, diff)

	// difference against an empty set yields everything
	var empty Set[string]
	require.Len(t, slices.Collect(a.Difference(&empty)), 3)
}
