package main

import (
	"fmt"

	"bomb-grid/internal/cell"
	"bomb-grid/internal/maps"
)

type problem struct {
	x, y  int
	fatal bool
	msg   string
}

func (p problem) String() string {
	kind := "WARN"
	if p.fatal {
		kind = "ERROR"
	}
	if p.x < 0 {
		return fmt.Sprintf("%s: %s", kind, p.msg)
	}
	return fmt.Sprintf("%s: (%d,%d) %s", kind, p.x, p.y, p.msg)
}

// checkMap reports cells the game cannot draw or use. last is set for the
// final map of a level, which needs a goal.
func checkMap(m *maps.Map, last bool) []problem {
	var out []problem
	doors, keys, goals := 0, 0, 0

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			switch c := m.Cell(x, y).(type) {
			case cell.Unknown:
				out = append(out, problem{x, y, true, fmt.Sprintf("unknown cell byte %d", c.Raw)})
			case cell.Scenery:
				if c.Kind > cell.SceneryTree {
					out = append(out, problem{x, y, true, fmt.Sprintf("unknown scenery kind %d", c.Kind)})
				}
			case cell.Bonus:
				if c.Kind > cell.BonusNbDec {
					out = append(out, problem{x, y, true, fmt.Sprintf("unknown bonus kind %d", c.Kind)})
				}
			case cell.Goal:
				goals++
				if c.Kind > cell.GoalWoman {
					out = append(out, problem{x, y, true, fmt.Sprintf("unknown goal kind %d", c.Kind)})
				}
			case cell.Door:
				doors++
			case cell.Key:
				keys++
			}
		}
	}

	if keys < doors {
		out = append(out, problem{-1, -1, false, fmt.Sprintf("%d door(s) but only %d key(s)", doors, keys)})
	}
	if last && goals == 0 {
		out = append(out, problem{-1, -1, false, "last map of the level has no goal"})
	}
	return out
}
