// Package mapgen builds the 15x7 act-map DAG a seed, ascension level, and
// act select, reproducing the original game's path carver and room
// assigner bit-for-bit against its Rng stream.
package mapgen

import (
	"encoding/base64"
	"encoding/binary"

	"actmap/pkg/rng"
)

// Grid dimensions and path-carving density. Fixed by the original game;
// never configurable.
const (
	MapHeight   = 15
	MapWidth    = 7
	rowEndNode  = MapWidth - 1
	pathDensity = 6
)

// noBurningEliteBuff is the sentinel stored in Map.BurningEliteBuff when no
// burning elite has been assigned.
const noBurningEliteBuff = -1

// Map is the generated act layout: a 15x7 grid of nodes plus the optional
// burning-elite tag. Built once by FromSeed or Act4Map and treated as
// immutable by every reader afterward.
type Map struct {
	nodes [MapHeight][MapWidth]*Node

	BurningEliteX    int
	BurningEliteY    int
	BurningEliteBuff int
}

func newGrid() [MapHeight][MapWidth]*Node {
	var g [MapHeight][MapWidth]*Node
	for y := 0; y < MapHeight; y++ {
		for x := 0; x < MapWidth; x++ {
			g[y][x] = newNode(x, y)
		}
	}
	return g
}

func newMap() *Map {
	return &Map{nodes: newGrid(), BurningEliteBuff: noBurningEliteBuff}
}

// at is the internal column/row accessor used throughout the core.
func (m *Map) at(x, y int) *Node {
	return m.nodes[y][x]
}

// NodeAt returns the node at (x,y). x is 0..6, y is 0..14.
func (m *Map) NodeAt(x, y int) *Node {
	return m.nodes[y][x]
}

// HasBurningElite reports whether a burning elite was assigned.
func (m *Map) HasBurningElite() bool {
	return m.BurningEliteBuff != noBurningEliteBuff
}

// FromSeed builds the PRNG-driven map for acts 1-3. act==4 is a fixed
// layout and must go through Act4Map instead.
func FromSeed(seed uint64, ascension, act int, setBurning bool) *Map {
	m := newMap()
	r := rng.NewStsSource(seed + uint64(actOffset(act)))

	createPaths(m, r)
	filterRedundantEdgesFromFirstRow(m)
	assignRooms(m, r, ascension)

	if setBurning {
		assignBurningElite(m, r)
		m.BurningEliteBuff = r.RandomRange(0, 3)
	}

	return m
}

// actOffset reproduces the original's seed-offset formula exactly: act 1
// offsets by 1, every other act offsets by act*100*(act-1).
func actOffset(act int) int {
	if act == 1 {
		return 1
	}
	return act * 100 * (act - 1)
}

// Act4Map builds the constant four-node act-4 layout: Rest -> Shop ->
// Elite -> Boss, stacked at column 3. No PRNG is consulted.
func Act4Map() *Map {
	m := newMap()

	rest := m.at(3, 0)
	shop := m.at(3, 1)
	elite := m.at(3, 2)
	boss := m.at(3, 3)

	rest.Room = RoomRest
	shop.Room = RoomShop
	elite.Room = RoomElite
	boss.Room = RoomBoss

	rest.AddEdge(3)
	shop.AddEdge(3)
	elite.AddEdge(3)

	boss.AddParent(3)
	elite.AddParent(3)
	shop.AddParent(3)

	return m
}

// NormalizeParents dedups and sorts every node's parent list in place. The
// reference ships this as a standalone pass but never calls it from
// fromSeed; it is exposed here for callers that want a deduplicated view
// (e.g. rendering) without changing FromSeed's observable output.
func (m *Map) NormalizeParents() {
	for y := 1; y < MapHeight; y++ {
		for x := 0; x < MapWidth; x++ {
			node := m.at(x, y)
			var seen [MapWidth]bool
			for _, p := range node.Parents {
				seen[p] = true
			}
			node.Parents = node.Parents[:0]
			for p := 0; p < MapWidth; p++ {
				if seen[p] {
					node.Parents = append(node.Parents, p)
				}
			}
		}
	}
}

// WriteExitData packs every node's edge directions (rows 0..13) into 3-bit
// values, groups them 21-per-64-bit big-endian word, and base64-encodes the
// raw bytes. Matches Map::writeExitData byte-for-byte, including its
// partial-final-word behavior (a short last group is never zero-extended
// with extra shifts, so its bits occupy the low end of the word).
func (m *Map) WriteExitData() string {
	exitData := make([]byte, 0, (MapHeight-1)*MapWidth)
	for y := 0; y < MapHeight-1; y++ {
		for x := 0; x < MapWidth; x++ {
			node := m.at(x, y)
			left, straight, right := x-1, x, x+1
			var v byte
			for _, e := range node.Edges {
				switch e {
				case left:
					v |= 4
				case straight:
					v |= 2
				case right:
					v |= 1
				}
			}
			exitData = append(exitData, v)
		}
	}

	var words []uint64
	for i := 0; i < len(exitData); i += 21 {
		var acc uint64
		for j := 0; j < 21; j++ {
			if i+j < len(exitData) {
				acc <<= 3
				acc |= uint64(exitData[i+j])
			}
		}
		words = append(words, acc)
	}

	buf := make([]byte, 0, len(words)*8)
	for _, w := range words {
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], w)
		buf = append(buf, b[:]...)
	}

	return base64.StdEncoding.EncodeToString(buf)
}
