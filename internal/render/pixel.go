package render

const (
	// PixelTileW is the width of a pixel sprite in pixels.
	PixelTileW = 16
	// PixelTileH is the height of a pixel sprite in pixels.
	PixelTileH = 16

	// Pixels averaged into one terminal column and one half-block row.
	blockW = PixelTileW / TileWidth
	blockH = PixelTileH / (TileHeight * 2)
)

// Pixel represents a single pixel with RGB color and transparency.
type Pixel struct {
	R, G, B     uint8
	Transparent bool
}

// PixelSprite is a PixelTileH x PixelTileW grid of pixels.
type PixelSprite [PixelTileH][PixelTileW]Pixel

// TransparentPixel returns a transparent pixel.
func TransparentPixel() Pixel {
	return Pixel{Transparent: true}
}

// P is a shorthand to create an opaque pixel.
func P(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// FillPixelSprite creates a pixel sprite filled with a single color.
func FillPixelSprite(r, g, b uint8) PixelSprite {
	var s PixelSprite
	p := P(r, g, b)
	for y := 0; y < PixelTileH; y++ {
		for x := 0; x < PixelTileW; x++ {
			s[y][x] = p
		}
	}
	return s
}

// ToSprite shrinks a pixel sprite to terminal cells. Each cell is an upper
// half block: the foreground carries the top half, the background the
// bottom half. A fully transparent half shows the floor colour, and a cell
// with both halves transparent stays transparent.
func (ps *PixelSprite) ToSprite() Sprite {
	var s Sprite
	for row := 0; row < TileHeight; row++ {
		for col := 0; col < TileWidth; col++ {
			top := ps.average(col*blockW, row*2*blockH)
			bottom := ps.average(col*blockW, (row*2+1)*blockH)
			if top.Transparent && bottom.Transparent {
				s[row][col] = TransparentCell()
				continue
			}
			if top.Transparent {
				top = P(floorR, floorG, floorB)
			}
			if bottom.Transparent {
				bottom = P(floorR, floorG, floorB)
			}
			s[row][col] = SC('▀', top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
	}
	return s
}

// average blends the opaque pixels of the block at (x0, y0).
func (ps *PixelSprite) average(x0, y0 int) Pixel {
	var r, g, b, n int
	for y := y0; y < y0+blockH; y++ {
		for x := x0; x < x0+blockW; x++ {
			p := ps[y][x]
			if p.Transparent {
				continue
			}
			r += int(p.R)
			g += int(p.G)
			b += int(p.B)
			n++
		}
	}
	if n == 0 {
		return TransparentPixel()
	}
	return P(uint8(r/n), uint8(g/n), uint8(b/n))
}
