package rigid

import (
	"testing"

	"github.com/oliverbestmann/rigid/gm"
	"github.com/stretchr/testify/require"
)

type Position struct {
	X, Y int
}

type Name string

func buildSimpleWorld() *World {
	w := NewWorld()

	w.Spawn(With(Name("Player")), With(Position{X: 1}))
	w.Spawn(With(Name("Tree")))
	w.Spawn(Bundle(With(Name("Enemy")), With(Position{X: 3})))

	return w
}

func TestWorld_Spawn(t *testing.T) {
	w := buildSimpleWorld()

	require.Equal(t, []EntityId{1, 2, 3}, w.Entities())
	require.Equal(t, 3, GetComponentArray[Name](w).Size())
	require.Equal(t, 2, GetComponentArray[Position](w).Size())

	require.Equal(t, Name("Tree"), *GetComponent[Name](w, 2))
	require.Nil(t, GetComponent[Position](w, 2))
	require.Nil(t, GetComponent[Transform](w, 1), "unknown component type")
}

func TestWorld_Despawn(t *testing.T) {
	w := buildSimpleWorld()

	require.True(t, w.Despawn(1))
	require.False(t, w.Despawn(1))
	require.False(t, w.IsAlive(1))

	require.Equal(t, []EntityId{2, 3}, w.Entities())
	require.Nil(t, GetComponent[Position](w, 1))

	// the enemy moved into the freed dense slot but is still found
	positions := GetComponentArray[Position](w)
	require.Equal(t, 1, positions.Size())
	require.Equal(t, EntityId(3), positions.GetEntity(0))
	require.Equal(t, 3, positions.Data(0).X)

	// ids are never reused
	require.Equal(t, EntityId(4), w.Spawn())
}

func TestWorld_InsertRemoveComponent(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()

	p := InsertComponent(w, e, Position{X: 1})
	p.Y = 5
	require.Equal(t, Position{X: 1, Y: 5}, *GetComponent[Position](w, e))

	// insert replaces
	InsertComponent(w, e, Position{X: 7})
	require.Equal(t, 1, GetComponentArray[Position](w).Size())
	require.Equal(t, 7, GetComponent[Position](w, e).X)

	require.True(t, HasComponent[Position](w, e))
	require.True(t, RemoveComponent[Position](w, e))
	require.False(t, RemoveComponent[Position](w, e))
	require.False(t, RemoveComponent[Name](w, e))

	require.Panics(t, func() { InsertComponent(w, 99, Position{}) })
}

func TestComponentArray_All(t *testing.T) {
	w := buildSimpleWorld()

	var names []Name
	for entityId, name := range GetComponentArray[Name](w).All() {
		require.True(t, w.IsAlive(entityId))
		names = append(names, *name)
	}

	require.Equal(t, []Name{"Player", "Tree", "Enemy"}, names)
}

func TestTransform_TransformPoint(t *testing.T) {
	tr := TransformFromTranslation(gm.Vec3{X: 10}).WithScale(gm.Vec3{X: 2, Y: 1, Z: 1})
	require.Equal(t, gm.Vec3{X: 12, Y: 1}, tr.TransformPoint(gm.Vec3{X: 1, Y: 1}))

	tr = tr.WithRotation(gm.Vec3{Z: 90})
	p := tr.TransformPoint(gm.Vec3{X: 1})
	require.InDelta(t, 10.0, p.X, 1e-9)
	require.InDelta(t, 2.0, p.Y, 1e-9)
}
