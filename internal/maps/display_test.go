package maps

import (
	"testing"

	"bomb-grid/internal/cell"
)

type renderCall struct {
	sprite Sprite
	px, py int
}

type recordingRenderer struct {
	calls []renderCall
}

func (r *recordingRenderer) Render(s Sprite, px, py int) {
	r.calls = append(r.calls, renderCall{s, px, py})
}

func TestDisplayDispatchesEveryKind(t *testing.T) {
	tests := []struct {
		name string
		c    cell.Cell
		want Sprite
	}{
		{"box", cell.Box{}, SpriteBox},
		{"stone", cell.Scenery{Kind: cell.SceneryStone}, SpriteStone},
		{"tree", cell.Scenery{Kind: cell.SceneryTree}, SpriteTree},
		{"flag", cell.Goal{Kind: cell.GoalFlag}, SpriteFlag},
		{"woman", cell.Goal{Kind: cell.GoalWoman}, SpriteWoman},
		{"closed door", cell.Door{Index: 2}, SpriteClosedDoor},
		{"open door", cell.Door{Index: 2, Open: true}, SpriteOpenDoor},
		{"key", cell.Key{}, SpriteKey},
		{"life", cell.Bonus{Kind: cell.BonusLife}, SpriteBonusLife},
		{"range inc", cell.Bonus{Kind: cell.BonusRangeInc}, SpriteBonusRangeInc},
		{"range dec", cell.Bonus{Kind: cell.BonusRangeDec}, SpriteBonusRangeDec},
		{"nb inc", cell.Bonus{Kind: cell.BonusNbInc}, SpriteBonusNbInc},
		{"nb dec", cell.Bonus{Kind: cell.BonusNbDec}, SpriteBonusNbDec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(3, 2)
			m.SetCell(2, 1, tt.c)
			var r recordingRenderer
			m.Display(&r)
			if len(r.calls) != 1 {
				t.Fatalf("got %d render calls, want 1", len(r.calls))
			}
			want := renderCall{tt.want, 2 * TileSize, 1 * TileSize}
			if r.calls[0] != want {
				t.Errorf("render = %+v, want %+v", r.calls[0], want)
			}
		})
	}
}

func TestDisplaySkipsBlankCells(t *testing.T) {
	m := New(3, 1)
	m.SetCell(0, 0, cell.MonsterMarker{})
	m.SetCellType(1, 0, 0x0C)
	m.SetCell(2, 0, cell.Bonus{Kind: 7})

	var r recordingRenderer
	m.Display(&r)
	if len(r.calls) != 0 {
		t.Errorf("render calls = %+v, want none", r.calls)
	}
}

func TestDisplayIsColumnMajor(t *testing.T) {
	m := New(2, 2)
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			m.SetCell(x, y, cell.Box{})
		}
	}

	var r recordingRenderer
	m.Display(&r)

	want := []renderCall{
		{SpriteBox, 0, 0},
		{SpriteBox, 0, TileSize},
		{SpriteBox, TileSize, 0},
		{SpriteBox, TileSize, TileSize},
	}
	if len(r.calls) != len(want) {
		t.Fatalf("got %d calls, want %d", len(r.calls), len(want))
	}
	for i := range want {
		if r.calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, r.calls[i], want[i])
		}
	}
}

func TestSpriteNames(t *testing.T) {
	all := Sprites()
	if len(all) != 13 {
		t.Fatalf("Sprites() has %d entries, want 13", len(all))
	}
	seen := map[string]bool{}
	for _, s := range all {
		name := s.String()
		if name == "unknown" || seen[name] {
			t.Errorf("sprite %d has bad or duplicate name %q", s, name)
		}
		seen[name] = true
	}
}
