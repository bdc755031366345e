package render

const (
	// TileWidth is how many screen columns each grid cell occupies.
	// Terminal characters are about twice as tall as wide, so 4x2 looks square.
	TileWidth = 4

	// TileHeight is how many screen rows each grid cell occupies.
	TileHeight = 2
)

// Cell represents a single terminal cell with full RGB color.
type Cell struct {
	Ch            rune
	FgR, FgG, FgB uint8
	BgR, BgG, BgB uint8
	Bold          bool
}

// SpriteCell is a single cell within a sprite, with optional transparency.
type SpriteCell struct {
	Cell        Cell
	Transparent bool // true = keep whatever is underneath
}

// Sprite is a TileHeight x TileWidth grid of sprite cells.
type Sprite [TileHeight][TileWidth]SpriteCell

// TransparentCell returns a SpriteCell that lets the floor show through.
func TransparentCell() SpriteCell {
	return SpriteCell{Transparent: true}
}

// SC is a shorthand to create an opaque SpriteCell.
func SC(ch rune, fgR, fgG, fgB, bgR, bgG, bgB uint8) SpriteCell {
	return SpriteCell{
		Cell: Cell{Ch: ch, FgR: fgR, FgG: fgG, FgB: fgB, BgR: bgR, BgG: bgG, BgB: bgB},
	}
}

// SCBold creates an opaque bold SpriteCell.
func SCBold(ch rune, fgR, fgG, fgB, bgR, bgG, bgB uint8) SpriteCell {
	sc := SC(ch, fgR, fgG, fgB, bgR, bgG, bgB)
	sc.Cell.Bold = true
	return sc
}

// FillSprite creates a sprite filled with a single character and color.
func FillSprite(ch rune, fgR, fgG, fgB, bgR, bgG, bgB uint8) Sprite {
	var s Sprite
	c := SC(ch, fgR, fgG, fgB, bgR, bgG, bgB)
	for y := 0; y < TileHeight; y++ {
		for x := 0; x < TileWidth; x++ {
			s[y][x] = c
		}
	}
	return s
}

// glyphSprite lays out rows of text over a solid background. Spaces are
// transparent when bgTransparent is set.
func glyphSprite(rows [TileHeight]string, fgR, fgG, fgB, bgR, bgG, bgB uint8, bgTransparent bool) Sprite {
	var s Sprite
	for y, row := range rows {
		runes := []rune(row)
		for x := 0; x < TileWidth; x++ {
			ch := ' '
			if x < len(runes) {
				ch = runes[x]
			}
			if ch == ' ' && bgTransparent {
				s[y][x] = TransparentCell()
				continue
			}
			s[y][x] = SCBold(ch, fgR, fgG, fgB, bgR, bgG, bgB)
		}
	}
	return s
}
