package game

import (
	"fmt"

	"bomb-grid/internal/level"
	"bomb-grid/internal/maps"
)

// World ties the level registry to the subsystems that act on its maps.
type World struct {
	Levels   *level.Registry
	Monsters *Monsters
	Bombs    *Bombs

	current *level.Level
}

// NewWorld starts on level start of reg. Every map without a spawner is
// wired to monsters.
func NewWorld(reg *level.Registry, start int, monsters *Monsters) (*World, error) {
	w := &World{Levels: reg, Monsters: monsters, Bombs: NewBombs()}
	for _, n := range reg.Numbers() {
		l, _ := reg.Level(n)
		for i := 0; i < l.MapCount(); i++ {
			if m := l.Map(i); m.Spawner() == nil {
				m.SetSpawner(monsters)
			}
		}
	}
	if err := w.GoToLevel(start); err != nil {
		return nil, err
	}
	return w, nil
}

// GoToLevel makes level n current.
func (w *World) GoToLevel(n int) error {
	l, ok := w.Levels.Level(n)
	if !ok {
		return fmt.Errorf("level %d not loaded", n)
	}
	w.current = l
	return nil
}

// Level returns the level being played.
func (w *World) Level() *level.Level {
	return w.current
}

// CurrentMap returns the map being played.
func (w *World) CurrentMap() *maps.Map {
	return w.current.CurrentMap()
}

// NextMap advances to the following map of the level, or returns false on
// the last one.
func (w *World) NextMap() bool {
	return w.current.Next()
}
