package render

import "bomb-grid/internal/maps"

// Floor colour drawn under every cell before sprites are stamped.
const (
	floorR, floorG, floorB = uint8(30), uint8(38), uint8(28)
)

// SpriteSet maps every sprite the map can ask for to its terminal picture.
type SpriteSet struct {
	sprites map[maps.Sprite]Sprite
}

// DefaultSprites returns the built-in glyph sprites.
func DefaultSprites() *SpriteSet {
	set := &SpriteSet{sprites: make(map[maps.Sprite]Sprite, len(maps.Sprites()))}
	set.sprites[maps.SpriteBox] = boxSprite()
	set.sprites[maps.SpriteStone] = stoneSprite()
	set.sprites[maps.SpriteTree] = treeSprite()
	set.sprites[maps.SpriteFlag] = onFloor([TileHeight]string{" ▛▀ ", " ▌  "}, 230, 60, 50)
	set.sprites[maps.SpriteWoman] = onFloor([TileHeight]string{" ◯  ", " ♀  "}, 240, 150, 200)
	set.sprites[maps.SpriteClosedDoor] = doorSprite(false)
	set.sprites[maps.SpriteOpenDoor] = doorSprite(true)
	set.sprites[maps.SpriteKey] = onFloor([TileHeight]string{" o━┓", "    "}, 240, 210, 60)
	set.sprites[maps.SpriteBonusLife] = bonusSprite('♥', ' ', 230, 50, 70)
	set.sprites[maps.SpriteBonusRangeInc] = bonusSprite('↔', '+', 250, 150, 40)
	set.sprites[maps.SpriteBonusRangeDec] = bonusSprite('↔', '-', 170, 110, 60)
	set.sprites[maps.SpriteBonusNbInc] = bonusSprite('●', '+', 90, 160, 250)
	set.sprites[maps.SpriteBonusNbDec] = bonusSprite('●', '-', 90, 110, 160)
	return set
}

// Sprite returns the picture for s, or a magenta placeholder for an
// unknown sprite.
func (set *SpriteSet) Sprite(s maps.Sprite) Sprite {
	if sp, ok := set.sprites[s]; ok {
		return sp
	}
	return FillSprite('?', 255, 255, 255, 255, 0, 255)
}

// Set replaces the picture for s.
func (set *SpriteSet) Set(s maps.Sprite, sp Sprite) {
	set.sprites[s] = sp
}

func onFloor(rows [TileHeight]string, r, g, b uint8) Sprite {
	return glyphSprite(rows, r, g, b, floorR, floorG, floorB, true)
}

func boxSprite() Sprite {
	bgR, bgG, bgB := uint8(120), uint8(80), uint8(35)
	s := FillSprite('▒', 150, 105, 50, bgR, bgG, bgB)
	s[0][0] = SC('┌', 90, 55, 20, bgR, bgG, bgB)
	s[0][TileWidth-1] = SC('┐', 90, 55, 20, bgR, bgG, bgB)
	s[1][0] = SC('└', 90, 55, 20, bgR, bgG, bgB)
	s[1][TileWidth-1] = SC('┘', 90, 55, 20, bgR, bgG, bgB)
	return s
}

func stoneSprite() Sprite {
	bgR, bgG, bgB := uint8(85), uint8(85), uint8(95)
	s := FillSprite('█', 110, 110, 120, bgR, bgG, bgB)
	s[0][1] = SC('▀', 140, 140, 150, bgR, bgG, bgB)
	s[1][2] = SC('▄', 60, 60, 70, bgR, bgG, bgB)
	return s
}

func treeSprite() Sprite {
	s := glyphSprite([TileHeight]string{"♣♠♣♠", " ║║ "}, 35, 160, 35, 22, 55, 22, false)
	s[1][1] = SC('║', 110, 75, 30, 22, 55, 22)
	s[1][2] = SC('║', 100, 65, 25, 22, 55, 22)
	return s
}

func doorSprite(open bool) Sprite {
	bgR, bgG, bgB := uint8(110), uint8(75), uint8(30)
	if open {
		return glyphSprite([TileHeight]string{"▐  ▌", "▐  ▌"}, bgR, bgG, bgB, 10, 10, 12, false)
	}
	s := FillSprite('▓', 135, 95, 45, bgR, bgG, bgB)
	s[1][TileWidth-2] = SCBold('•', 230, 200, 80, bgR, bgG, bgB)
	return s
}

func bonusSprite(icon, sign rune, r, g, b uint8) Sprite {
	bgR, bgG, bgB := uint8(50), uint8(45), uint8(70)
	s := FillSprite(' ', r, g, b, bgR, bgG, bgB)
	s[0][1] = SCBold(icon, r, g, b, bgR, bgG, bgB)
	s[0][2] = SCBold(sign, 255, 255, 255, bgR, bgG, bgB)
	s[1][0] = SC('╰', 90, 85, 120, bgR, bgG, bgB)
	s[1][TileWidth-1] = SC('╯', 90, 85, 120, bgR, bgG, bgB)
	return s
}

// bombSprite and monsterSprite are stamped over the grid for live entities.
func bombSprite(fuse int) Sprite {
	s := onFloor([TileHeight]string{"  * ", " ●  "}, 200, 200, 210)
	if fuse <= 10 {
		s[0][2] = SCBold('*', 255, 90, 40, floorR, floorG, floorB)
	}
	return s
}

func monsterSprite() Sprite {
	return onFloor([TileHeight]string{"▗▀▀▖", "▝▚▞▘"}, 200, 60, 220)
}
