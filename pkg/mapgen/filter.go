package mapgen

// filterRedundantEdgesFromFirstRow removes row-0 edges that target a
// column already reached by an earlier (smaller-x) row-0 node, scanning
// each node's own edges right-to-left. This keeps row-0 destinations
// pairwise distinct without touching rows 8 or 13, which is intentional:
// only the very first selectable row needs unique entries.
func filterRedundantEdgesFromFirstRow(m *Map) {
	var visited [MapWidth]bool
	for x := 0; x < MapWidth; x++ {
		node := m.at(x, 0)
		for i := len(node.Edges) - 1; i >= 0; i-- {
			destX := node.Edges[i]
			if visited[destX] {
				m.at(destX, 1).removeParent(x)
				node.removeEdgeAt(i)
			} else {
				visited[destX] = true
			}
		}
	}
}
