package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"bomb-grid/internal/game"
	"bomb-grid/internal/logger"
)

// bombSpec is one -bomb flag: a cell and an optional blast range.
type bombSpec struct {
	x, y, rng int
}

// bombList collects repeated -bomb x,y[,range] flags.
type bombList []bombSpec

func (l *bombList) String() string {
	parts := make([]string, len(*l))
	for i, b := range *l {
		parts[i] = fmt.Sprintf("%d,%d,%d", b.x, b.y, b.rng)
	}
	return strings.Join(parts, " ")
}

func (l *bombList) Set(s string) error {
	fields := strings.Split(s, ",")
	if len(fields) != 2 && len(fields) != 3 {
		return fmt.Errorf("bomb %q: want x,y or x,y,range", s)
	}
	vals := []int{0, 0, game.DefaultBombRange}
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return fmt.Errorf("bomb %q: %w", s, err)
		}
		vals[i] = v
	}
	if vals[2] < 1 {
		return fmt.Errorf("bomb %q: range must be at least 1", s)
	}
	*l = append(*l, bombSpec{x: vals[0], y: vals[1], rng: vals[2]})
	return nil
}

// placeBombs arms every bomb on the current map of w.
func placeBombs(w *game.World, bombs bombList) error {
	m := w.CurrentMap()
	for _, b := range bombs {
		if _, err := w.Bombs.Place(m, b.x, b.y, b.rng); err != nil {
			return fmt.Errorf("bomb at (%d,%d): %w", b.x, b.y, err)
		}
		logger.Log.WithFields(logrus.Fields{"map": m.Name, "x": b.x, "y": b.y, "range": b.rng}).Info("bomb placed")
	}
	return nil
}
