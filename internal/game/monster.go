package game

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"bomb-grid/internal/cell"
	"bomb-grid/internal/entity"
	"bomb-grid/internal/logger"
	"bomb-grid/internal/maps"
)

// Direction is one of the four grid moves.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the x/y step of the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

var directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

type processRand struct{}

func (processRand) Intn(n int) int { return rand.Intn(n) }

// Monsters is the monster subsystem. It satisfies maps.MonsterSpawner.
type Monsters struct {
	rng  maps.Rand
	step int
}

// NewMonsters creates the subsystem. A nil rng draws from the process-wide
// generator.
func NewMonsters(rng maps.Rand) *Monsters {
	if rng == nil {
		rng = processRand{}
	}
	return &Monsters{rng: rng, step: MonsterStep}
}

// SpawnMonsterAt puts a new monster on (x, y).
func (ms *Monsters) SpawnMonsterAt(m *maps.Map, x, y int) {
	mon := entity.NewMonster(ms.step)
	m.InsertMonster(x, y, mon)
	logger.Log.WithFields(logrus.Fields{
		"map": m.Name, "x": x, "y": y, "monster": mon.ID,
	}).Debug("monster spawned")
}

// MonstersFromMap replaces every monster marker with an empty cell holding
// a live monster, scanning row by row.
func (ms *Monsters) MonstersFromMap(m *maps.Map) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.CellType(x, y) != cell.TypeMonster {
				continue
			}
			m.SetCell(x, y, cell.Empty{})
			ms.SpawnMonsterAt(m, x, y)
		}
	}
}

// Update moves every monster whose cooldown ran out one cell in a random
// direction. Blocked moves are lost; the monster waits for its next step.
func (ms *Monsters) Update(m *maps.Map) {
	for _, e := range m.Monsters().Entries() {
		mon := e.Ref
		mon.Cooldown--
		if mon.Cooldown > 0 {
			continue
		}
		mon.Cooldown = ms.step

		dx, dy := directions[ms.rng.Intn(len(directions))].Delta()
		nx, ny := e.X+dx, e.Y+dy
		if !CanWalk(m, nx, ny) {
			continue
		}
		m.Monsters().Move(mon, nx, ny)
	}
}

// CanWalk reports whether a monster may step onto (x, y): an empty or bonus
// cell on the grid with no bomb or monster on it.
func CanWalk(m *maps.Map, x, y int) bool {
	if !m.InBounds(x, y) || m.Occupied(x, y) {
		return false
	}
	switch m.CellType(x, y) {
	case cell.TypeEmpty, cell.TypeBonus:
		return true
	}
	return false
}

// killMonstersAt removes every monster standing on (x, y) and returns how
// many died.
func killMonstersAt(m *maps.Map, x, y int) int {
	killed := 0
	for _, e := range m.Monsters().Entries() {
		if e.X == x && e.Y == y {
			m.Monsters().Remove(e.Ref)
			killed++
		}
	}
	return killed
}
