package game

import (
	"errors"

	"github.com/sirupsen/logrus"

	"bomb-grid/internal/cell"
	"bomb-grid/internal/entity"
	"bomb-grid/internal/logger"
	"bomb-grid/internal/maps"
)

// ErrBlocked is returned when a bomb cannot be placed on a cell.
var ErrBlocked = errors.New("cell blocked")

// BlastCell is one cell reached by a blast.
type BlastCell struct {
	X, Y    int
	Before  cell.Type    // base type before the blast
	Outcome maps.Outcome // result of explosion resolution on a box
}

// Blast records what one bomb did when it went off.
type Blast struct {
	Bomb   *entity.Bomb
	X, Y   int
	Cells  []BlastCell
	Killed int // monsters removed
}

// Bombs is the bomb subsystem.
type Bombs struct {
	fuse int
}

// NewBombs creates the subsystem with the default fuse.
func NewBombs() *Bombs {
	return &Bombs{fuse: BombFuse}
}

// Place arms a bomb of the given range on (x, y). The cell must be empty and
// free of other bombs and monsters.
func (bs *Bombs) Place(m *maps.Map, x, y, rng int) (*entity.Bomb, error) {
	if !m.InBounds(x, y) || m.CellType(x, y) != cell.TypeEmpty || m.Occupied(x, y) {
		return nil, ErrBlocked
	}
	b := entity.NewBomb(rng, bs.fuse)
	m.InsertBomb(x, y, b)
	return b, nil
}

// Update burns one tick off every fuse and sets off the bombs that reach
// zero. A blast reaching another bomb sets it off in the same tick. Bombs
// that went off are removed from the map.
func (bs *Bombs) Update(m *maps.Map) []Blast {
	var queue []entity.Entry[*entity.Bomb]
	for _, e := range m.Bombs().Entries() {
		e.Ref.Fuse--
		if e.Ref.Fuse <= 0 {
			queue = append(queue, e)
		}
	}

	var blasts []Blast
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if !m.Bombs().Remove(e.Ref) {
			continue // already went off in a chain
		}

		blast := explode(m, e)
		blasts = append(blasts, blast)

		for _, c := range blast.Cells {
			for _, other := range m.Bombs().Entries() {
				if other.X == c.X && other.Y == c.Y {
					other.Ref.Fuse = 0
					queue = append(queue, other)
				}
			}
		}
	}
	return blasts
}

// explode works out the reach of one bomb, kills the monsters caught in it,
// then mutates the terrain.
func explode(m *maps.Map, e entity.Entry[*entity.Bomb]) Blast {
	blast := Blast{Bomb: e.Ref, X: e.X, Y: e.Y}
	blast.Cells = append(blast.Cells, BlastCell{X: e.X, Y: e.Y, Before: m.CellType(e.X, e.Y)})

	for _, d := range directions {
		dx, dy := d.Delta()
		for i := 1; i <= e.Ref.Range; i++ {
			x, y := e.X+dx*i, e.Y+dy*i
			if !m.InBounds(x, y) {
				break
			}
			t := m.CellType(x, y)
			if stopsBlast(t) {
				break
			}
			blast.Cells = append(blast.Cells, BlastCell{X: x, Y: y, Before: t})
			if t == cell.TypeCase || t == cell.TypeBonus {
				break
			}
		}
	}

	for _, c := range blast.Cells {
		blast.Killed += killMonstersAt(m, c.X, c.Y)
	}

	for i, c := range blast.Cells {
		switch c.Before {
		case cell.TypeCase:
			blast.Cells[i].Outcome = m.ResolveExplosionAt(c.X, c.Y)
		case cell.TypeBonus:
			m.SetCell(c.X, c.Y, cell.Empty{})
			blast.Cells[i].Outcome = maps.OutcomeEmpty
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"map": m.Name, "x": e.X, "y": e.Y, "cells": len(blast.Cells), "killed": blast.Killed,
	}).Debug("bomb exploded")
	return blast
}

// stopsBlast reports whether a blast halts before a cell of type t without
// touching it.
func stopsBlast(t cell.Type) bool {
	switch t {
	case cell.TypeScenery, cell.TypeKey, cell.TypeGoal, cell.TypeDoor:
		return true
	}
	return false
}
