// Package maps holds one playable floor: the cell grid plus the bombs and
// monsters standing on it.
package maps

import (
	"fmt"

	"golang.org/x/exp/rand"

	"bomb-grid/internal/cell"
	"bomb-grid/internal/entity"
)

// Rand is the random source explosion resolution draws from.
type Rand interface {
	Intn(n int) int
}

// globalRand draws from the process-wide generator.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// MonsterSpawner is the monster subsystem as seen from a map.
type MonsterSpawner interface {
	// SpawnMonsterAt creates a monster on (x, y) and inserts it into m.
	SpawnMonsterAt(m *Map, x, y int)
	// MonstersFromMap turns the monster markers of a freshly loaded grid
	// into live monsters.
	MonstersFromMap(m *Map)
}

// Map is a width x height grid of cells with its bomb and monster lists.
// A Map is not safe for concurrent use.
type Map struct {
	Name string

	width, height int
	grid          []cell.Cell // x + width*y

	bombs    *entity.List[*entity.Bomb]
	monsters *entity.List[*entity.Monster]

	rng     Rand
	spawner MonsterSpawner
}

// New creates a map with every cell empty. Both dimensions must be positive.
func New(width, height int) *Map {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("maps: invalid dimensions %dx%d", width, height))
	}

	grid := make([]cell.Cell, width*height)
	for i := range grid {
		grid[i] = cell.Empty{}
	}

	return &Map{
		width:    width,
		height:   height,
		grid:     grid,
		bombs:    entity.NewList[*entity.Bomb](),
		monsters: entity.NewList[*entity.Monster](),
		rng:      globalRand{},
	}
}

// SetRand replaces the random source. nil restores the process-wide one.
func (m *Map) SetRand(r Rand) {
	if r == nil {
		r = globalRand{}
	}
	m.rng = r
}

// SetSpawner wires the monster subsystem. With no spawner, spawn outcomes
// only clear the cell.
func (m *Map) SetSpawner(s MonsterSpawner) {
	m.spawner = s
}

// Spawner returns the wired monster subsystem, or nil.
func (m *Map) Spawner() MonsterSpawner {
	return m.spawner
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// InBounds reports whether (x, y) is on the grid.
func (m *Map) InBounds(x, y int) bool {
	return 0 <= x && x < m.width && 0 <= y && y < m.height
}

func (m *Map) index(x, y int) int {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("maps: (%d,%d) outside %dx%d map", x, y, m.width, m.height))
	}
	return x + m.width*y
}

// CellType returns the base type of the cell at (x, y).
func (m *Map) CellType(x, y int) cell.Type {
	return m.grid[m.index(x, y)].Type()
}

// Cell returns the decoded cell at (x, y).
func (m *Map) Cell(x, y int) cell.Cell {
	return m.grid[m.index(x, y)]
}

// RawCell returns the packed byte of the cell at (x, y).
func (m *Map) RawCell(x, y int) byte {
	return m.grid[m.index(x, y)].Encode()
}

// BonusKind reads the sub-type bits as a bonus kind. Only meaningful on a
// BONUS cell.
func (m *Map) BonusKind(x, y int) cell.BonusKind {
	return cell.BonusKind(cell.SubOf(m.RawCell(x, y)))
}

// DoorState reads bit 7. Only meaningful on a DOOR cell.
func (m *Map) DoorState(x, y int) cell.DoorState {
	return cell.DoorStateOf(m.RawCell(x, y))
}

// DoorIndex reads the lock index. Only meaningful on a DOOR cell.
func (m *Map) DoorIndex(x, y int) int {
	return cell.DoorIndexOf(m.RawCell(x, y))
}

// GoalKind reads the sub-type bits as a goal kind. Only meaningful on a
// GOAL cell.
func (m *Map) GoalKind(x, y int) cell.GoalKind {
	return cell.GoalKind(cell.SubOf(m.RawCell(x, y)))
}

// SetCellType overwrites the whole cell with a packed byte.
func (m *Map) SetCellType(x, y int, raw byte) {
	m.grid[m.index(x, y)] = cell.Decode(raw)
}

// SetCell overwrites the whole cell.
func (m *Map) SetCell(x, y int, c cell.Cell) {
	if c == nil {
		panic("maps: nil cell")
	}
	m.grid[m.index(x, y)] = c
}

// OpenDoor sets the open bit of the cell at (x, y), leaving the other bits.
func (m *Map) OpenDoor(x, y int) {
	i := m.index(x, y)
	m.grid[i] = cell.Decode(cell.OpenDoor(m.grid[i].Encode()))
}

// InsertBomb appends b to the bomb list at (x, y).
func (m *Map) InsertBomb(x, y int, b *entity.Bomb) {
	m.index(x, y)
	m.bombs.Insert(x, y, b)
}

// InsertMonster appends mon to the monster list at (x, y).
func (m *Map) InsertMonster(x, y int, mon *entity.Monster) {
	m.index(x, y)
	m.monsters.Insert(x, y, mon)
}

// Bombs returns the live bomb list. The bomb subsystem removes finished
// bombs itself.
func (m *Map) Bombs() *entity.List[*entity.Bomb] { return m.bombs }

// Monsters returns the live monster list.
func (m *Map) Monsters() *entity.List[*entity.Monster] { return m.monsters }

// Occupied reports whether a bomb or a monster stands on (x, y).
func (m *Map) Occupied(x, y int) bool {
	return m.bombs.Has(x, y) || m.monsters.Has(x, y)
}

// Count returns how many cells have base type t.
func (m *Map) Count(t cell.Type) int {
	n := 0
	for _, c := range m.grid {
		if c.Type() == t {
			n++
		}
	}
	return n
}
