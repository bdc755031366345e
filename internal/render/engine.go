package render

import (
	"strings"

	"bomb-grid/internal/maps"
)

var sentinel = Cell{Ch: '\x00', FgR: 255, BgB: 255, Bold: true}

// Engine is a double-buffer diff renderer. It implements maps.Renderer:
// a frame is built with Begin, any number of Render calls, then Frame.
type Engine struct {
	sprites       *SpriteSet
	width, height int
	current       [][]Cell
	next          [][]Cell
	firstFrame    bool
}

// NewEngine creates a renderer drawing with sprites. A nil set uses the
// built-in sprites.
func NewEngine(sprites *SpriteSet) *Engine {
	if sprites == nil {
		sprites = DefaultSprites()
	}
	return &Engine{sprites: sprites, firstFrame: true}
}

// Begin starts a frame for a grid of cols x rows cells and clears it to the
// floor. A size change forces a full redraw.
func (e *Engine) Begin(cols, rows int) {
	w, h := cols*TileWidth, rows*TileHeight
	if w != e.width || h != e.height {
		e.width, e.height = w, h
		e.current = e.makeBuffer(sentinel)
		e.next = e.makeBuffer(Cell{})
		e.firstFrame = true
	}

	floor := Cell{Ch: ' ', BgR: floorR, BgG: floorG, BgB: floorB}
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			e.next[y][x] = floor
		}
	}
}

func (e *Engine) makeBuffer(fill Cell) [][]Cell {
	buf := make([][]Cell, e.height)
	for y := 0; y < e.height; y++ {
		buf[y] = make([]Cell, e.width)
		for x := 0; x < e.width; x++ {
			buf[y][x] = fill
		}
	}
	return buf
}

// Render stamps sprite s on the grid cell whose top-left corner is at pixel
// (px, py).
func (e *Engine) Render(s maps.Sprite, px, py int) {
	x, y := px/maps.TileSize, py/maps.TileSize
	e.stampSprite(x*TileWidth, y*TileHeight, e.sprites.Sprite(s), true)
}

// DrawEntities stamps the live bombs and monsters of m over the grid.
func (e *Engine) DrawEntities(m *maps.Map) {
	for _, b := range m.Bombs().All() {
		e.stampSprite(b.X*TileWidth, b.Y*TileHeight, bombSprite(b.Ref.Fuse), true)
	}
	monster := monsterSprite()
	for _, mon := range m.Monsters().All() {
		e.stampSprite(mon.X*TileWidth, mon.Y*TileHeight, monster, true)
	}
}

// DrawMap is a full frame of m: floor, cells, then entities.
func (e *Engine) DrawMap(m *maps.Map) string {
	e.Begin(m.Width(), m.Height())
	m.Display(e)
	e.DrawEntities(m)
	return e.Frame()
}

// Frame produces the ANSI bytes that turn the previous frame into this one
// and swaps the buffers.
func (e *Engine) Frame() string {
	var sb strings.Builder
	sb.Grow(e.width * e.height * 4)

	lastRow, lastCol := -1, -1
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			nc := e.next[y][x]
			if e.firstFrame || nc != e.current[y][x] {
				// Only emit cursor position if not consecutive
				if y != lastRow || x != lastCol {
					sb.WriteString(MoveTo(y+1, x+1))
				}
				WriteCellSGR(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	e.current, e.next = e.next, e.current
	e.firstFrame = false

	return sb.String()
}

// Size returns the frame size in terminal columns and rows.
func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

// stampSprite writes a sprite into the buffer at screen position (sx, sy).
// When transparent is true, SpriteCell.Transparent cells are skipped.
func (e *Engine) stampSprite(sx, sy int, sprite Sprite, transparent bool) {
	for row := 0; row < TileHeight; row++ {
		screenY := sy + row
		if screenY < 0 || screenY >= e.height {
			continue
		}
		for col := 0; col < TileWidth; col++ {
			screenX := sx + col
			if screenX < 0 || screenX >= e.width {
				continue
			}
			sc := sprite[row][col]
			if transparent && sc.Transparent {
				continue
			}
			e.next[screenY][screenX] = sc.Cell
		}
	}
}
