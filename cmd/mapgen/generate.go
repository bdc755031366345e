package main

import (
	"golang.org/x/exp/rand"

	"bomb-grid/internal/cell"
	"bomb-grid/internal/maps"
)

// genOptions drives one arena.
type genOptions struct {
	width, height int
	seed          uint64
	boxes         float64 // chance of a box on a free cell, scaled by noise
	monsters      int
	keys          int // key + closed door pairs
	goal          cell.GoalKind
}

type point struct{ x, y int }

var steps = [4]point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// spawnClear is the Manhattan radius around the spawn corner kept free of
// boxes and monsters.
const spawnClear = 2

// generateArena builds a classic arena: a stone border, a pillar on every
// even interior cell, boxes scattered through the rest. Pillars are trees
// where the noise runs high. The goal sits on the free cell farthest from
// the spawn at (1, 1).
func generateArena(o genOptions) *maps.Map {
	m := maps.New(o.width, o.height)
	rng := rand.New(rand.NewSource(o.seed))
	terrain := newTerrainField(o.seed)
	density := newDensityField(o.seed)

	for y := 0; y < o.height; y++ {
		for x := 0; x < o.width; x++ {
			border := x == 0 || y == 0 || x == o.width-1 || y == o.height-1
			switch {
			case border:
				m.SetCell(x, y, cell.Scenery{Kind: cell.SceneryStone})
			case x%2 == 0 && y%2 == 0:
				kind := cell.SceneryStone
				if terrain.treeAt(point{x, y}) {
					kind = cell.SceneryTree
				}
				m.SetCell(x, y, cell.Scenery{Kind: kind})
			}
		}
	}

	dist := distances(m, point{1, 1})
	goal := farthest(dist)
	m.SetCell(goal.x, goal.y, cell.Goal{Kind: o.goal})

	var free []point
	for y := 1; y < o.height-1; y++ {
		for x := 1; x < o.width-1; x++ {
			p := point{x, y}
			d, ok := dist[p]
			if !ok || d <= spawnClear || p == goal || m.CellType(x, y) != cell.TypeEmpty {
				continue
			}
			free = append(free, p)
		}
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	// Keys and doors first so boxes never hide all of them.
	for i := 0; i < o.keys && len(free) >= 2; i++ {
		k, d := free[0], free[1]
		free = free[2:]
		m.SetCell(k.x, k.y, cell.Key{})
		m.SetCell(d.x, d.y, cell.Door{Index: uint8(i % (cell.MaxDoorIndex + 1))})
	}
	for i := 0; i < o.monsters && len(free) > 0; i++ {
		p := free[0]
		free = free[1:]
		m.SetCell(p.x, p.y, cell.MonsterMarker{})
	}
	for _, p := range free {
		if rng.Float64() < density.boxChance(p, o.boxes) {
			m.SetCell(p.x, p.y, cell.Box{})
		}
	}
	return m
}

// distances walks from start through every cell that is not scenery and
// returns the step count to each reachable one.
func distances(m *maps.Map, start point) map[point]int {
	dist := map[point]int{start: 0}
	queue := []point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, s := range steps {
			n := point{p.x + s.x, p.y + s.y}
			if !m.InBounds(n.x, n.y) || m.CellType(n.x, n.y) == cell.TypeScenery {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[p] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// farthest picks the cell with the largest distance, lowest row then column
// on ties so the result does not depend on map order.
func farthest(dist map[point]int) point {
	best, bestD := point{}, -1
	for p, d := range dist {
		if d > bestD || (d == bestD && (p.y < best.y || (p.y == best.y && p.x < best.x))) {
			best, bestD = p, d
		}
	}
	return best
}
