package render

import (
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"bomb-grid/internal/logger"
	"bomb-grid/internal/maps"
)

// LoadPixelSprite reads a 16x16 PNG and returns a PixelSprite.
// Alpha<50% or magenta (#FF00FF) pixels are treated as transparent.
func LoadPixelSprite(path string) (PixelSprite, error) {
	var ps PixelSprite

	f, err := os.Open(path)
	if err != nil {
		return ps, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return ps, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != PixelTileW || bounds.Dy() != PixelTileH {
		return ps, fmt.Errorf("%s: expected %dx%d, got %dx%d", path, PixelTileW, PixelTileH, bounds.Dx(), bounds.Dy())
	}

	for y := 0; y < PixelTileH; y++ {
		for x := 0; x < PixelTileW; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)

			if a < 0x8000 || (r8 == 0xFF && g8 == 0x00 && b8 == 0xFF) {
				ps[y][x] = TransparentPixel()
			} else {
				ps[y][x] = P(r8, g8, b8)
			}
		}
	}

	return ps, nil
}

// LoadSpriteSet starts from the built-in sprites and replaces every one
// that has a <name>.png in dir, e.g. box.png or bonus_nb_dec.png. Missing
// files keep the built-in picture; unreadable ones are an error.
func LoadSpriteSet(dir string) (*SpriteSet, error) {
	set := DefaultSprites()
	loaded := 0

	for _, s := range maps.Sprites() {
		path := filepath.Join(dir, s.String()+".png")
		ps, err := LoadPixelSprite(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		set.Set(s, ps.ToSprite())
		loaded++
	}

	logger.Log.WithFields(logrus.Fields{"dir": dir, "loaded": loaded}).Info("sprites loaded")
	return set, nil
}
