package mapgen

import "github.com/zyedidia/generic/mapset"

// ReachableRooms returns every node reachable by following edges forward
// from a row-0 node that survived path carving (edge_count > 0), breadth
// first. Row-14 nodes terminate the walk: their single edge targets the
// boss, a conceptual node outside the grid, not another row.
//
// This is the same BFS-with-visited-set shape the teacher's
// collectReachableRooms uses for dungeon-cell connectivity, repurposed
// here for the map's row-layered DAG; it backs the "edge_count>0 or
// reachable via a row-13 edge" testable property.
func ReachableRooms(m *Map) []*Node {
	visited := mapset.New[*Node]()
	var queue []*Node

	for x := 0; x < MapWidth; x++ {
		start := m.at(x, 0)
		if start.HasEdges() {
			queue = append(queue, start)
		}
	}

	var rooms []*Node
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if visited.Has(cur) {
			continue
		}
		visited.Put(cur)
		rooms = append(rooms, cur)

		if cur.Y >= MapHeight-1 {
			continue
		}
		for _, destX := range cur.Edges {
			next := m.at(destX, cur.Y+1)
			if !visited.Has(next) {
				queue = append(queue, next)
			}
		}
	}

	return rooms
}
