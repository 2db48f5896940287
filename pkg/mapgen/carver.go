package mapgen

import "actmap/pkg/rng"

// Rng is the PRNG contract the core consumes. rng.StsSource is the
// concrete, bit-exact implementation; any source with matching draw
// semantics is interchangeable.
type Rng interface {
	Random(max int) int
	RandomRange(min, max int) int
	NextInt(bound int) int
}

var _ Rng = (*rng.StsSource)(nil)

// createPaths carves PATH_DENSITY overlapping paths from row 0 to row 14.
// The second path (loop index 1) is redrawn until its start column differs
// from the first; every other path is free to repeat a start column.
func createPaths(m *Map, r Rng) {
	firstStartX := r.RandomRange(0, rowEndNode)
	createPathsIteration(m, r, firstStartX)

	for i := 1; i < pathDensity; i++ {
		startX := r.RandomRange(0, rowEndNode)
		for startX == firstStartX && i == 1 {
			startX = r.RandomRange(0, rowEndNode)
		}
		createPathsIteration(m, r, startX)
	}
}

// createPathsIteration carves one path downward from (startX, 0), adding
// edge/parent links row by row, then wires the final row-13 node to the
// boss column.
func createPathsIteration(m *Map, r Rng, startX int) {
	curX := startX
	for curY := 0; curY < MapHeight-1; curY++ {
		newX := chooseNewPath(m, r, curX, curY)
		m.at(curX, curY).AddEdge(newX)
		m.at(newX, curY+1).AddParent(curX)
		curX = newX
	}
	m.at(curX, MapHeight-1).AddEdge(3)
}

// chooseNewPath picks the next column for an edge leaving (curX, curY):
// a base random offset, diamond-avoidance correction against existing
// parents of the candidate destination, then a clamp against the
// neighboring columns' already-carved edges.
func chooseNewPath(m *Map, r Rng, curX, curY int) int {
	var min, max int
	switch curX {
	case 0:
		min, max = 0, 1
	case rowEndNode:
		min, max = -1, 0
	default:
		min, max = -1, 1
	}

	newX := curX + r.RandomRange(min, max)
	newX = choosePathParentLoopRandomizer(m, r, curX, curY, newX)
	newX = choosePathAdjustNewX(m, curX, curY, newX)
	return newX
}

// choosePathParentLoopRandomizer re-randomizes newX for every existing
// parent of (newX, curY+1) that would close a diamond with curX (i.e.
// shares a common ancestor). It iterates the destination's parent list as
// captured at entry; the list itself is never mutated here, so later
// re-randomizations do not see a refreshed parent set.
func choosePathParentLoopRandomizer(m *Map, r Rng, curX, curY, newX int) int {
	parents := m.at(newX, curY+1).Parents
	for _, parentX := range parents {
		if curX == parentX {
			continue
		}
		if commonAncestor(m, parentX, curX, curY) == -1 {
			continue
		}

		switch {
		case newX > curX:
			newX = curX + r.RandomRange(-1, 0)
			if newX < 0 {
				newX = curX
			}
		case newX == curX:
			newX = curX + r.RandomRange(-1, 1)
			if newX > rowEndNode {
				newX = curX - 1
			} else if newX < 0 {
				newX = curX + 1
			}
		default:
			newX = curX + r.RandomRange(0, 1)
			if newX > rowEndNode {
				newX = curX
			}
		}
	}
	return newX
}

// choosePathAdjustNewX clamps newEdgeX against the neighboring columns'
// already-carved edges at this row, so adjacent paths never cross.
func choosePathAdjustNewX(m *Map, curX, curY, newEdgeX int) int {
	if curX != 0 {
		left := m.at(curX-1, curY)
		if len(left.Edges) > 0 {
			if maxEdge := left.MaxEdge(); maxEdge > newEdgeX {
				newEdgeX = maxEdge
			}
		}
	}

	if curX < rowEndNode {
		right := m.at(curX+1, curY)
		if len(right.Edges) > 0 {
			if minEdge := right.MinEdge(); minEdge < newEdgeX {
				newEdgeX = minEdge
			}
		}
	}

	return newEdgeX
}

// commonAncestor returns the shared row-y ancestor of a and b if one
// exists (the max-x parent of the left-ordered node equals the min-x
// parent of the right-ordered one), or -1 otherwise. The left/right
// ordering is decided by comparing each input against y, not against each
// other; this quirk is load-bearing and must not be "fixed" to a<b.
func commonAncestor(m *Map, a, b, y int) int {
	if y < 0 {
		return -1
	}

	var l, r int
	if a < y {
		l, r = a, b
	} else {
		l, r = b, a
	}

	lNode, rNode := m.at(l, y), m.at(r, y)
	if len(lNode.Parents) == 0 || len(rNode.Parents) == 0 {
		return -1
	}

	leftX := lNode.MaxParent()
	if leftX == rNode.MinParent() {
		return leftX
	}
	return -1
}
