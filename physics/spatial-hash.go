package physics

import (
	"cmp"
	"math"
	"slices"

	"github.com/oliverbestmann/rigid/gm"
	"github.com/oliverbestmann/rigid/internal/set"
)

// maxCellsPerItem limits the number of cells a single item is inserted into.
// Larger items are kept in a separate list and paired with every other item.
const maxCellsPerItem = 4096

type cellKey struct {
	X, Y, Z int32
}

// IndexPair is a pair of item ids with A < B.
type IndexPair struct {
	A, B int
}

// SpatialHash is a uniform grid of cubic cells mapping to the ids of all
// items whose bounding box touches the cell.
type SpatialHash struct {
	cellSize float64
	cells    map[cellKey][]int
	oversize []int
	items    []int

	seen  set.Set[IndexPair]
	pairs []IndexPair
}

func NewSpatialHash(cellSize float64) *SpatialHash {
	if !(cellSize > 0) {
		panic("cell size must be positive")
	}

	return &SpatialHash{
		cellSize: cellSize,
		cells:    map[cellKey][]int{},
	}
}

func (h *SpatialHash) CellSize() float64 {
	return h.cellSize
}

// Clear removes all items.
func (h *SpatialHash) Clear() {
	clear(h.cells)
	h.oversize = h.oversize[:0]
	h.items = h.items[:0]
}

// CellCount returns the number of occupied cells.
func (h *SpatialHash) CellCount() int {
	return len(h.cells)
}

func (h *SpatialHash) cellOf(p gm.Vec3) cellKey {
	return cellKey{
		X: int32(math.Floor(p.X / h.cellSize)),
		Y: int32(math.Floor(p.Y / h.cellSize)),
		Z: int32(math.Floor(p.Z / h.cellSize)),
	}
}

// Insert adds the item to every cell touched by its bounding box.
func (h *SpatialHash) Insert(id int, aabb gm.AABB) {
	h.items = append(h.items, id)

	lo := h.cellOf(aabb.Min)
	hi := h.cellOf(aabb.Max)

	count := int64(hi.X-lo.X+1) * int64(hi.Y-lo.Y+1) * int64(hi.Z-lo.Z+1)
	if count > maxCellsPerItem {
		h.oversize = append(h.oversize, id)
		return
	}

	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				key := cellKey{X: x, Y: y, Z: z}
				h.cells[key] = append(h.cells[key], id)
			}
		}
	}
}

// Query appends the ids of all items sharing a cell with the given box to dst.
// Ids may be reported more than once.
func (h *SpatialHash) Query(dst []int, aabb gm.AABB) []int {
	lo := h.cellOf(aabb.Min)
	hi := h.cellOf(aabb.Max)

	count := int64(hi.X-lo.X+1) * int64(hi.Y-lo.Y+1) * int64(hi.Z-lo.Z+1)
	if count > maxCellsPerItem {
		return append(dst, h.items...)
	}

	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				dst = append(dst, h.cells[cellKey{X: x, Y: y, Z: z}]...)
			}
		}
	}

	return append(dst, h.oversize...)
}

// PotentialPairs returns all pairs of items sharing at least one cell.
// Every pair is reported once, sorted by A and then B. The returned
// slice is only valid until the next call.
func (h *SpatialHash) PotentialPairs() []IndexPair {
	h.seen.Clear()
	h.pairs = h.pairs[:0]

	for _, ids := range h.cells {
		for i, a := range ids {
			for _, b := range ids[i+1:] {
				h.addPair(a, b)
			}
		}
	}

	for _, a := range h.oversize {
		for _, b := range h.items {
			h.addPair(a, b)
		}
	}

	slices.SortFunc(h.pairs, func(lhs, rhs IndexPair) int {
		return cmp.Or(cmp.Compare(lhs.A, rhs.A), cmp.Compare(lhs.B, rhs.B))
	})

	return h.pairs
}

func (h *SpatialHash) addPair(a, b int) {
	if a == b {
		return
	}

	if b < a {
		a, b = b, a
	}

	pair := IndexPair{A: a, B: b}
	if h.seen.Insert(pair) {
		h.pairs = append(h.pairs, pair)
	}
}
