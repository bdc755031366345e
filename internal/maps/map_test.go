package maps

import (
	"testing"

	"bomb-grid/internal/cell"
	"bomb-grid/internal/entity"
)

// fixedRand returns the queued values in turn, cycling.
type fixedRand struct {
	values []int
	next   int
	bounds []int
}

func (r *fixedRand) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// countingSpawner records spawns and inserts a monster like the real one.
type countingSpawner struct {
	spawns     [][2]int
	discovered int
}

func (s *countingSpawner) SpawnMonsterAt(m *Map, x, y int) {
	s.spawns = append(s.spawns, [2]int{x, y})
	m.InsertMonster(x, y, entity.NewMonster(0))
}

func (s *countingSpawner) MonstersFromMap(m *Map) {
	s.discovered++
}

func TestNewMapIsEmpty(t *testing.T) {
	m := New(7, 3)
	if m.Width() != 7 || m.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 7x3", m.Width(), m.Height())
	}
	for x := 0; x < 7; x++ {
		for y := 0; y < 3; y++ {
			if m.CellType(x, y) != cell.TypeEmpty || m.RawCell(x, y) != 0 {
				t.Errorf("cell (%d,%d) = %#02x, want empty", x, y, m.RawCell(x, y))
			}
		}
	}
	if m.Bombs().Len() != 0 || m.Monsters().Len() != 0 {
		t.Error("new map has entities")
	}
}

func TestNewPanicsOnBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-2, 4}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d,%d) did not panic", dims[0], dims[1])
				}
			}()
			New(dims[0], dims[1])
		}()
	}
}

func TestInBounds(t *testing.T) {
	m := New(4, 3)
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"origin", 0, 0, true},
		{"far corner", 3, 2, true},
		{"left of grid", -1, 1, false},
		{"right of grid", 4, 1, false},
		{"above grid", 1, -1, false},
		{"below grid", 1, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.InBounds(tt.x, tt.y); got != tt.want {
				t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestOutOfBoundsAccessPanics(t *testing.T) {
	m := New(2, 2)
	defer func() {
		if recover() == nil {
			t.Error("CellType(2,0) did not panic")
		}
	}()
	m.CellType(2, 0)
}

func TestCellAccessors(t *testing.T) {
	m := New(4, 1)
	m.SetCellType(0, 0, cell.Pack(cell.TypeBonus, uint8(cell.BonusNbInc), cell.DoorClosed))
	m.SetCell(1, 0, cell.Door{Index: 6})
	m.SetCell(2, 0, cell.Goal{Kind: cell.GoalWoman})
	m.SetCellType(3, 0, 0x11)

	if m.CellType(0, 0) != cell.TypeBonus || m.BonusKind(0, 0) != cell.BonusNbInc {
		t.Errorf("bonus cell = %v/%v", m.CellType(0, 0), m.BonusKind(0, 0))
	}
	if m.DoorIndex(1, 0) != 6 || m.DoorState(1, 0) != cell.DoorClosed {
		t.Errorf("door cell = index %d state %v", m.DoorIndex(1, 0), m.DoorState(1, 0))
	}
	if m.GoalKind(2, 0) != cell.GoalWoman {
		t.Errorf("goal kind = %v", m.GoalKind(2, 0))
	}
	if got := m.Cell(3, 0); got != (cell.Scenery{Kind: cell.SceneryTree}) {
		t.Errorf("Cell(3,0) = %#v, want tree", got)
	}
	if m.Count(cell.TypeDoor) != 1 {
		t.Errorf("Count(door) = %d", m.Count(cell.TypeDoor))
	}
}

func TestRawCellNormalizesMeaninglessBits(t *testing.T) {
	tests := []struct {
		name string
		in   byte
		want byte
	}{
		{"box with door bit", 0x82, 0x02},
		{"box with sub bits", 0x32, 0x02},
		{"empty with sub bits", 0x70, 0x00},
		{"key with door bit", 0x84, 0x04},
		{"bonus keeps kind", 0x23, 0x23},
		{"open door keeps everything", 0xD6, 0xD6},
		{"unknown base kept verbatim", 0xFB, 0xFB},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(1, 1)
			m.SetCellType(0, 0, tt.in)
			if got := m.RawCell(0, 0); got != tt.want {
				t.Errorf("RawCell after SetCellType(%#02x) = %#02x, want %#02x", tt.in, got, tt.want)
			}
		})
	}
}

func TestOpenDoorKeepsLowBits(t *testing.T) {
	m := New(1, 1)
	m.SetCell(0, 0, cell.Door{Index: 5})
	before := m.RawCell(0, 0)

	m.OpenDoor(0, 0)
	once := m.RawCell(0, 0)
	m.OpenDoor(0, 0)
	twice := m.RawCell(0, 0)

	if once != twice {
		t.Errorf("OpenDoor not idempotent: %#02x then %#02x", once, twice)
	}
	if once&0x7F != before&0x7F {
		t.Errorf("OpenDoor changed bits 0-6: %#02x -> %#02x", before, once)
	}
	if m.DoorState(0, 0) != cell.DoorOpen || m.DoorIndex(0, 0) != 5 {
		t.Errorf("door after open: state %v index %d", m.DoorState(0, 0), m.DoorIndex(0, 0))
	}
}

func TestInsertEntitiesKeepsOrder(t *testing.T) {
	const n = 6
	m := New(n, n)
	var bombs []*entity.Bomb
	var monsters []*entity.Monster
	for i := 0; i < n; i++ {
		b := entity.NewBomb(1, 1)
		bombs = append(bombs, b)
		m.InsertBomb(i, 0, b)
	}
	for i := 0; i < n; i++ {
		mon := entity.NewMonster(0)
		monsters = append(monsters, mon)
		m.InsertMonster(0, i, mon)
	}

	if m.Bombs().Len() != n || m.Monsters().Len() != n {
		t.Fatalf("lens = %d bombs, %d monsters, want %d each", m.Bombs().Len(), m.Monsters().Len(), n)
	}
	for i, e := range m.Bombs().Entries() {
		if e.Ref != bombs[i] {
			t.Errorf("bomb %d out of order", i)
		}
	}
	for i, e := range m.Monsters().Entries() {
		if e.Ref != monsters[i] {
			t.Errorf("monster %d out of order", i)
		}
	}
	if !m.Occupied(3, 0) || !m.Occupied(0, 3) || m.Occupied(3, 3) {
		t.Error("Occupied disagrees with inserted entities")
	}
}
