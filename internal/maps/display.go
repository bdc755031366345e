package maps

import "bomb-grid/internal/cell"

// TileSize is the edge of one cell in pixels.
const TileSize = 40

// Sprite names an image the renderer knows how to draw.
type Sprite int

const (
	SpriteBox Sprite = iota
	SpriteStone
	SpriteTree
	SpriteFlag
	SpriteWoman
	SpriteClosedDoor
	SpriteOpenDoor
	SpriteKey
	SpriteBonusLife
	SpriteBonusRangeInc
	SpriteBonusRangeDec
	SpriteBonusNbInc
	SpriteBonusNbDec
)

var spriteNames = [...]string{
	"box", "stone", "tree", "flag", "woman", "closed_door", "open_door", "key",
	"bonus_life", "bonus_range_inc", "bonus_range_dec", "bonus_nb_inc", "bonus_nb_dec",
}

// Sprites lists every sprite in enum order.
func Sprites() []Sprite {
	out := make([]Sprite, len(spriteNames))
	for i := range out {
		out[i] = Sprite(i)
	}
	return out
}

func (s Sprite) String() string {
	if s >= 0 && int(s) < len(spriteNames) {
		return spriteNames[s]
	}
	return "unknown"
}

// Renderer draws a sprite with its top-left corner at a pixel position.
type Renderer interface {
	Render(s Sprite, px, py int)
}

// Display draws every non-empty cell, column by column.
func (m *Map) Display(r Renderer) {
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			px, py := x*TileSize, y*TileSize

			switch c := m.grid[x+m.width*y].(type) {
			case cell.Scenery:
				displayScenery(r, px, py, c)
			case cell.Box:
				r.Render(SpriteBox, px, py)
			case cell.Bonus:
				displayBonus(r, px, py, c)
			case cell.Key:
				r.Render(SpriteKey, px, py)
			case cell.Goal:
				displayGoal(r, px, py, c)
			case cell.Door:
				displayDoor(r, px, py, c)
			}
		}
	}
}

func displayScenery(r Renderer, px, py int, c cell.Scenery) {
	switch c.Kind {
	case cell.SceneryStone:
		r.Render(SpriteStone, px, py)
	case cell.SceneryTree:
		r.Render(SpriteTree, px, py)
	}
}

func displayBonus(r Renderer, px, py int, c cell.Bonus) {
	switch c.Kind {
	case cell.BonusLife:
		r.Render(SpriteBonusLife, px, py)
	case cell.BonusRangeInc:
		r.Render(SpriteBonusRangeInc, px, py)
	case cell.BonusRangeDec:
		r.Render(SpriteBonusRangeDec, px, py)
	case cell.BonusNbInc:
		r.Render(SpriteBonusNbInc, px, py)
	case cell.BonusNbDec:
		r.Render(SpriteBonusNbDec, px, py)
	}
}

func displayGoal(r Renderer, px, py int, c cell.Goal) {
	switch c.Kind {
	case cell.GoalFlag:
		r.Render(SpriteFlag, px, py)
	case cell.GoalWoman:
		r.Render(SpriteWoman, px, py)
	}
}

func displayDoor(r Renderer, px, py int, c cell.Door) {
	if c.Open {
		r.Render(SpriteOpenDoor, px, py)
		return
	}
	r.Render(SpriteClosedDoor, px, py)
}
