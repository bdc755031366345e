package main

import (
	"errors"
	"testing"

	"bomb-grid/internal/cell"
	"bomb-grid/internal/game"
	"bomb-grid/internal/level"
	"bomb-grid/internal/maps"
)

func TestBombListSet(t *testing.T) {
	tests := []struct {
		in      string
		want    bombSpec
		wantErr bool
	}{
		{"1,2", bombSpec{1, 2, game.DefaultBombRange}, false},
		{"3, 4, 2", bombSpec{3, 4, 2}, false},
		{"1", bombSpec{}, true},
		{"1,2,3,4", bombSpec{}, true},
		{"a,2", bombSpec{}, true},
		{"1,2,0", bombSpec{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var l bombList
			err := l.Set(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && (len(l) != 1 || l[0] != tt.want) {
				t.Errorf("got %v, want %v", l, tt.want)
			}
		})
	}
}

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

func TestPlacedBombBlastsBoxes(t *testing.T) {
	m := maps.New(3, 1)
	m.SetCell(2, 0, cell.Box{})
	m.SetRand(zeroRand{})
	reg := level.NewRegistry()
	reg.Add(level.New(1, []*maps.Map{m}))
	w, err := game.NewWorld(reg, 1, game.NewMonsters(nil))
	if err != nil {
		t.Fatal(err)
	}

	var bombs bombList
	if err := bombs.Set("1,0"); err != nil {
		t.Fatal(err)
	}
	if err := placeBombs(w, bombs); err != nil {
		t.Fatalf("placeBombs: %v", err)
	}

	gl := game.NewGameLoop(w)
	blasts := 0
	for i := 0; i < game.BombFuse; i++ {
		blasts += len(gl.Tick())
	}
	if blasts != 1 {
		t.Fatalf("got %d blasts after the fuse, want 1", blasts)
	}
	if m.CellType(2, 0) != cell.TypeEmpty {
		t.Errorf("box became %v, want empty", m.CellType(2, 0))
	}
}

func TestPlaceBombsRejectsBlockedCell(t *testing.T) {
	m := maps.New(2, 1)
	m.SetCell(0, 0, cell.Scenery{Kind: cell.SceneryStone})
	reg := level.NewRegistry()
	reg.Add(level.New(1, []*maps.Map{m}))
	w, err := game.NewWorld(reg, 1, game.NewMonsters(nil))
	if err != nil {
		t.Fatal(err)
	}

	err = placeBombs(w, bombList{{x: 0, y: 0, rng: 1}})
	if !errors.Is(err, game.ErrBlocked) {
		t.Errorf("err = %v, want ErrBlocked", err)
	}
}
