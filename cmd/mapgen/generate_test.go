package main

import (
	"bytes"
	"testing"

	"bomb-grid/internal/cell"
	"bomb-grid/internal/maps"
)

func defaultOptions(seed uint64) genOptions {
	return genOptions{width: 15, height: 13, seed: seed, boxes: 0.6, monsters: 3, keys: 1, goal: cell.GoalFlag}
}

func TestGenerateArenaLayout(t *testing.T) {
	m := generateArena(defaultOptions(42))

	for x := 0; x < m.Width(); x++ {
		for _, y := range []int{0, m.Height() - 1} {
			if m.CellType(x, y) != cell.TypeScenery {
				t.Fatalf("border (%d,%d) is %v", x, y, m.CellType(x, y))
			}
		}
	}
	for y := 2; y < m.Height()-1; y += 2 {
		for x := 2; x < m.Width()-1; x += 2 {
			if m.CellType(x, y) != cell.TypeScenery {
				t.Fatalf("pillar (%d,%d) is %v", x, y, m.CellType(x, y))
			}
		}
	}

	tests := []struct {
		name string
		t    cell.Type
		want int
	}{
		{"goal", cell.TypeGoal, 1},
		{"monsters", cell.TypeMonster, 3},
		{"keys", cell.TypeKey, 1},
		{"doors", cell.TypeDoor, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Count(tt.t); got != tt.want {
				t.Errorf("Count(%v) = %d, want %d", tt.t, got, tt.want)
			}
		})
	}
}

func TestGenerateArenaKeepsSpawnClear(t *testing.T) {
	m := generateArena(defaultOptions(7))
	for _, p := range []point{{1, 1}, {2, 1}, {1, 2}, {3, 1}, {1, 3}} {
		if m.CellType(p.x, p.y) != cell.TypeEmpty {
			t.Errorf("spawn area (%d,%d) is %v", p.x, p.y, m.CellType(p.x, p.y))
		}
	}
}

func TestGenerateArenaIsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if _, err := generateArena(defaultOptions(99)).WriteTo(&a); err != nil {
		t.Fatal(err)
	}
	if _, err := generateArena(defaultOptions(99)).WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("same seed produced different arenas")
	}
}

func TestGenerateArenaParsesBack(t *testing.T) {
	var buf bytes.Buffer
	src := generateArena(defaultOptions(3))
	if _, err := src.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	m, err := maps.Parse(&buf, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Count(cell.TypeCase) != src.Count(cell.TypeCase) {
		t.Error("box count changed through the file format")
	}
}

func TestGoalIsFarthestCell(t *testing.T) {
	m := generateArena(genOptions{width: 5, height: 5, seed: 1, goal: cell.GoalWoman})
	// Free cells of a 5x5 arena form a ring around the single pillar; the
	// opposite corner is four steps away.
	if got := m.Cell(3, 3); got != (cell.Goal{Kind: cell.GoalWoman}) {
		t.Errorf("(3,3) = %#v, want the goal", got)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"15x13", 15, 13, false},
		{"5x5", 5, 5, false},
		{"14x13", 0, 0, true},
		{"3x5", 0, 0, true},
		{"15", 0, 0, true},
		{"ax13", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("got %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestFieldStaysInRange(t *testing.T) {
	fields := []struct {
		name string
		f    field
	}{
		{"terrain", newTerrainField(5)},
		{"density", newDensityField(5)},
	}
	for _, tt := range fields {
		t.Run(tt.name, func(t *testing.T) {
			for y := 0; y < 40; y++ {
				for x := 0; x < 40; x++ {
					p := point{x, y}
					if v := tt.f.At(p); v < 0 || v > 1 {
						t.Fatalf("At(%d,%d) = %f, outside [0,1]", x, y, v)
					}
					if c := tt.f.boxChance(p, 0); c != 0 {
						t.Fatalf("boxChance with zero density = %f", c)
					}
				}
			}
		})
	}
}

func TestFieldIsSeeded(t *testing.T) {
	a, b := newTerrainField(11), newTerrainField(11)
	for x := 0; x < 20; x++ {
		p := point{x, x / 2}
		if a.At(p) != b.At(p) {
			t.Fatalf("same seed differs at (%d,%d)", p.x, p.y)
		}
	}
}
