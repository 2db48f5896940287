// Package devtools provides developer tools for inspecting a generated
// map outside of test-vector comparisons: a colored ASCII dump to a file.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gookit/color"

	"actmap/pkg/mapgen"
)

const mapDumpFilename = "map.txt"

var (
	colorMonster  = color.Style{color.FgRed}
	colorEvent    = color.Style{color.FgMagenta}
	colorShop     = color.Style{color.FgYellow}
	colorRest     = color.Style{color.FgGreen, color.OpBold}
	colorElite    = color.Style{color.FgRed, color.OpBold}
	colorTreasure = color.Style{color.FgYellow, color.OpBold}
	colorBoss     = color.Style{color.FgWhite, color.BgRed, color.OpBold}
	colorBurning  = color.Style{color.FgWhite, color.BgYellow, color.OpBold}
	colorEmpty    = color.Style{color.FgGray}
)

func roomGlyph(m *mapgen.Map, node *mapgen.Node) string {
	if !node.HasEdges() && node.Room == mapgen.RoomNone {
		return colorEmpty.Sprint(".")
	}

	if node.Room == mapgen.RoomElite && m.HasBurningElite() &&
		node.X == m.BurningEliteX && node.Y == m.BurningEliteY {
		buffed := mapgen.Room(int(mapgen.RoomBurningElite1) + m.BurningEliteBuff)
		return colorBurning.Sprintf("%c", buffed.Symbol())
	}

	sym := string(node.Room.Symbol())
	switch node.Room {
	case mapgen.RoomMonster:
		return colorMonster.Sprint(sym)
	case mapgen.RoomEvent:
		return colorEvent.Sprint(sym)
	case mapgen.RoomShop:
		return colorShop.Sprint(sym)
	case mapgen.RoomRest:
		return colorRest.Sprint(sym)
	case mapgen.RoomElite:
		return colorElite.Sprint(sym)
	case mapgen.RoomTreasure:
		return colorTreasure.Sprint(sym)
	case mapgen.RoomBoss:
		return colorBoss.Sprint(sym)
	default:
		return colorEmpty.Sprint(".")
	}
}

// DumpMapToFile writes a structured debug dump of m to map.txt: metadata,
// a top-to-bottom ASCII grid (row 14 first, matching how the original
// renders its map upward from the player's feet), and the burning-elite
// tag if one was assigned. Format is section-headed "=== NAME ===" text,
// mirroring the teacher's own DumpRevealedMapToFile layout.
func DumpMapToFile(m *mapgen.Map, seed uint64, ascension, act int) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintln(f, "=== ACT MAP DUMP ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "seed: %d\n", seed)
	fmt.Fprintf(f, "ascension: %d\n", ascension)
	fmt.Fprintf(f, "act: %d\n", act)
	fmt.Fprintf(f, "burning_elite: %v\n", m.HasBurningElite())
	if m.HasBurningElite() {
		fmt.Fprintf(f, "burning_elite_x: %d\n", m.BurningEliteX)
		fmt.Fprintf(f, "burning_elite_y: %d\n", m.BurningEliteY)
		fmt.Fprintf(f, "burning_elite_buff: %d\n", m.BurningEliteBuff)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Legend ---")
	fmt.Fprintln(f, "M = Monster  ? = Event  $ = Shop  R = Rest  E = Elite  T = Treasure  B = Boss  1-4 = Burning Elite  . = empty")
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map (row 14 at top, row 0 at bottom) ---")
	for y := mapgen.MapHeight - 1; y >= 0; y-- {
		fmt.Fprintf(f, "row %2d: ", y)
		for x := 0; x < mapgen.MapWidth; x++ {
			fmt.Fprint(f, roomGlyph(m, m.NodeAt(x, y)), " ")
		}
		fmt.Fprintln(f)
	}
	fmt.Fprintln(f)

	fmt.Fprintln(f, "--- Exit data ---")
	fmt.Fprintln(f, m.WriteExitData())

	fmt.Fprintln(f, "=== END MAP DUMP ===")

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
