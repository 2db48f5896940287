// Command actmapgen generates a single act map for a given seed and
// prints its exit-encoded base64 representation, optionally writing an
// ASCII debug dump alongside it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gookit/color"
	"golang.org/x/term"

	"actmap/pkg/mapgen"
	"actmap/pkg/mapgen/devtools"
)

// runConfig mirrors the teacher's plain-struct-plus-constructor config
// shape (see pkg/game/setup.SetupConfig): populated once from flags, then
// passed by value into buildMap.
type runConfig struct {
	seed      uint64
	ascension int
	act       int
	burning   bool
	dump      bool
	colorTerm bool
}

func parseFlags() runConfig {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "map seed")
	ascension := flag.Int("ascension", 0, "ascension level (affects elite chance)")
	act := flag.Int("act", 1, "act number (1-4; act 4 is the fixed layout)")
	burning := flag.Bool("burning", false, "tag one elite node as a burning elite")
	dump := flag.Bool("dump", false, "write an ASCII map dump to map.txt")
	flag.Parse()

	if *act < 1 || *act > 4 {
		log.Fatalf("act must be 1-4, got %d", *act)
	}

	return runConfig{
		seed:      *seed,
		ascension: *ascension,
		act:       *act,
		burning:   *burning,
		dump:      *dump,
		colorTerm: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func buildMap(cfg runConfig) *mapgen.Map {
	if cfg.act == 4 {
		return mapgen.Act4Map()
	}
	return mapgen.FromSeed(cfg.seed, cfg.ascension, cfg.act, cfg.burning)
}

func main() {
	cfg := parseFlags()

	start := time.Now()
	m := buildMap(cfg)
	elapsed := time.Since(start)

	log.Printf("generated map: seed=%d ascension=%d act=%d burning=%v elapsed=%s",
		cfg.seed, cfg.ascension, cfg.act, cfg.burning, elapsed)

	fmt.Println(m.WriteExitData())

	if cfg.dump {
		path, err := devtools.DumpMapToFile(m, cfg.seed, cfg.ascension, cfg.act)
		if err != nil {
			log.Fatalf("writing map dump: %v", err)
		}
		if cfg.colorTerm {
			fmt.Println(color.Style{color.FgGreen}.Sprintf("wrote map dump to %s", path))
		} else {
			fmt.Printf("wrote map dump to %s\n", path)
		}
	}
}
