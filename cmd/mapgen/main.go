package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"bomb-grid/internal/cell"
	"bomb-grid/internal/level"
	"bomb-grid/internal/logger"
)

func main() {
	logger.Init()
	log := logger.Log

	size := flag.String("size", "15x13", "arena size as WxH, both odd")
	seed := flag.Uint64("seed", 0, "random seed (0 = random)")
	boxes := flag.Float64("boxes", 0.6, "box density, 0 to 1")
	monsters := flag.Int("monsters", 3, "monster start positions")
	keys := flag.Int("keys", 0, "key and door pairs")
	woman := flag.Bool("woman", false, "use the woman goal instead of the flag")
	out := flag.String("out", "", "output file (default: stdout, or -dir naming)")
	dir := flag.String("dir", "", "levels directory; writes map_<level>_<index>.txt")
	lvl := flag.Int("level", 1, "level number for -dir")
	index := flag.Int("index", 0, "map index for -dir")
	flag.Parse()

	w, h, err := parseSize(*size)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if *boxes < 0 || *boxes > 1 {
		log.Fatalf("Error: -boxes %.2f is outside 0..1", *boxes)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	goal := cell.GoalFlag
	if *woman {
		goal = cell.GoalWoman
	}

	log.WithFields(logrus.Fields{"width": w, "height": h, "seed": *seed}).Info("generating arena")
	m := generateArena(genOptions{
		width: w, height: h, seed: *seed,
		boxes: *boxes, monsters: *monsters, keys: *keys, goal: goal,
	})

	log.WithFields(logrus.Fields{
		"boxes":    m.Count(cell.TypeCase),
		"monsters": m.Count(cell.TypeMonster),
		"scenery":  m.Count(cell.TypeScenery),
		"doors":    m.Count(cell.TypeDoor),
	}).Info("arena ready")

	path := *out
	if path == "" && *dir != "" {
		path = filepath.Join(*dir, level.FileName(*lvl, *index))
	}
	if path == "" {
		if _, err := m.WriteTo(os.Stdout); err != nil {
			log.Fatalf("Error writing map: %v", err)
		}
		return
	}
	if err := m.Save(path); err != nil {
		log.Fatalf("Error writing %s: %v", path, err)
	}
	log.WithField("path", path).Info("map written")
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w < 5 || w%2 == 0 {
		return 0, 0, fmt.Errorf("invalid width %q (odd, minimum 5)", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h < 5 || h%2 == 0 {
		return 0, 0, fmt.Errorf("invalid height %q (odd, minimum 5)", parts[1])
	}
	return w, h, nil
}
