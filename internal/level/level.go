// Package level groups maps into numbered levels.
package level

import (
	"fmt"
	"slices"

	"bomb-grid/internal/maps"
)

// Level is an ordered run of maps with one of them current.
type Level struct {
	number  int
	maps    []*maps.Map
	current int
}

// New builds a level from at least one map. The first map is current.
// The level keeps its own copy of ms.
func New(number int, ms []*maps.Map) *Level {
	if len(ms) == 0 {
		panic(fmt.Sprintf("level: level %d has no maps", number))
	}
	for i, m := range ms {
		if m == nil {
			panic(fmt.Sprintf("level: level %d map %d is nil", number, i))
		}
	}
	return &Level{number: number, maps: slices.Clone(ms)}
}

// Number returns the level number.
func (l *Level) Number() int { return l.number }

// MapCount returns how many maps the level holds.
func (l *Level) MapCount() int { return len(l.maps) }

// CurrentIndex returns the index of the current map.
func (l *Level) CurrentIndex() int { return l.current }

// CurrentMap returns the map being played.
func (l *Level) CurrentMap() *maps.Map {
	return l.Map(l.current)
}

// SetCurrentMap makes map i current.
func (l *Level) SetCurrentMap(i int) {
	l.check(i)
	l.current = i
}

// Map returns map i.
func (l *Level) Map(i int) *maps.Map {
	l.check(i)
	return l.maps[i]
}

// Next advances to the following map. It returns false, leaving the current
// map alone, when the level is on its last map.
func (l *Level) Next() bool {
	if l.current+1 >= len(l.maps) {
		return false
	}
	l.current++
	return true
}

// Display draws the current map.
func (l *Level) Display(r maps.Renderer) {
	l.CurrentMap().Display(r)
}

// Free drops every map. A freed level has no maps.
func (l *Level) Free() {
	for i := range l.maps {
		l.maps[i].Bombs().Clear()
		l.maps[i].Monsters().Clear()
		l.maps[i] = nil
	}
	l.maps = nil
	l.current = 0
}

func (l *Level) check(i int) {
	if i < 0 || i >= len(l.maps) {
		panic(fmt.Sprintf("level: map %d outside level %d (%d maps)", i, l.number, len(l.maps)))
	}
}
