package mapgen

import (
	"encoding/base64"
	"testing"
)

func TestAct4MapFixedLayout(t *testing.T) {
	m := Act4Map()

	cases := []struct {
		x, y  int
		room  Room
		edges []int
	}{
		{3, 0, RoomRest, []int{3}},
		{3, 1, RoomShop, []int{3}},
		{3, 2, RoomElite, []int{3}},
		{3, 3, RoomBoss, nil},
	}
	for _, c := range cases {
		node := m.NodeAt(c.x, c.y)
		if node.Room != c.room {
			t.Errorf("(%d,%d): got room %v, want %v", c.x, c.y, node.Room, c.room)
		}
		if len(node.Edges) != len(c.edges) {
			t.Errorf("(%d,%d): got edges %v, want %v", c.x, c.y, node.Edges, c.edges)
		}
		for i, e := range c.edges {
			if node.Edges[i] != e {
				t.Errorf("(%d,%d): edge %d got %d, want %d", c.x, c.y, i, node.Edges[i], e)
			}
		}
	}

	for y := 0; y < MapHeight; y++ {
		for x := 0; x < MapWidth; x++ {
			if x == 3 && y <= 3 {
				continue
			}
			if m.NodeAt(x, y).HasEdges() {
				t.Errorf("(%d,%d): expected no edges in the act-4 layout, got %v", x, y, m.NodeAt(x, y).Edges)
			}
		}
	}
}

func TestFromSeedDeterministic(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42, 9999} {
		a := FromSeed(seed, 0, 1, false)
		b := FromSeed(seed, 0, 1, false)
		if a.WriteExitData() != b.WriteExitData() {
			t.Fatalf("seed %d: FromSeed is not deterministic", seed)
		}
		for y := 0; y < MapHeight; y++ {
			for x := 0; x < MapWidth; x++ {
				if a.NodeAt(x, y).Room != b.NodeAt(x, y).Room {
					t.Fatalf("seed %d: room at (%d,%d) differs between runs", seed, x, y)
				}
			}
		}
	}
}

func TestFromSeedDiffersAcrossActOffsets(t *testing.T) {
	seed := uint64(12345)
	act1 := FromSeed(seed, 0, 1, false)
	act2 := FromSeed(seed, 0, 2, false)
	if act1.WriteExitData() == act2.WriteExitData() {
		t.Fatal("act 1 and act 2 should diverge under the same seed due to the seed-offset formula")
	}
}

func TestWriteExitDataShape(t *testing.T) {
	m := FromSeed(3, 0, 1, false)
	encoded := m.WriteExitData()
	if encoded == "" {
		t.Fatal("expected non-empty exit data")
	}
	// 14 rows x 7 columns = 98 three-bit values, grouped 21-per-word:
	// 4 full words + 1 partial (14 values) = 5 words = 40 bytes.
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("decoding exit data: %v", err)
	}
	if len(decoded) != 40 {
		t.Fatalf("got %d decoded bytes, want 40", len(decoded))
	}
}

func TestAscensionScalesEliteChanceOnly(t *testing.T) {
	if eliteRoomChanceA1 != eliteRoomChanceA0*1.6 {
		t.Fatalf("elite chance at ascension should be 1.6x the base: got %v, want %v", eliteRoomChanceA1, eliteRoomChanceA0*1.6)
	}
}

// TestReachableRoomsCoversEveryAssignedRoom backs spec.md §8 invariant 2:
// every node that carries a room assignment must have edge_count>0 (room
// assignment only ever touches nodes the path carver reached), and every
// such node must be walkable from a row-0 entry. ReachableRooms is the BFS
// that answers that for real, rather than just re-deriving HasEdges().
func TestReachableRoomsCoversEveryAssignedRoom(t *testing.T) {
	for _, seed := range seedsUnderTest() {
		m := FromSeed(seed, 0, 1, false)

		reached := make(map[*Node]bool)
		for _, n := range ReachableRooms(m) {
			reached[n] = true
		}

		for y := 0; y < MapHeight; y++ {
			for x := 0; x < MapWidth; x++ {
				node := m.NodeAt(x, y)
				if node.Room == RoomNone {
					continue
				}
				if !node.HasEdges() {
					t.Fatalf("seed %d: (%d,%d) has room %v but edge_count==0", seed, x, y, node.Room)
				}
				if !reached[node] {
					t.Fatalf("seed %d: (%d,%d) has room %v but is not reachable from row 0", seed, x, y, node.Room)
				}
			}
		}
	}
}
