package game

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"bomb-grid/internal/logger"
)

// GameLoop advances the current map of a world one tick at a time.
// Ticks run sequentially; a GameLoop is driven from one goroutine.
type GameLoop struct {
	world     *World
	tickCount uint64
}

// NewGameLoop creates a loop over world.
func NewGameLoop(world *World) *GameLoop {
	return &GameLoop{world: world}
}

// World returns the world the loop drives.
func (gl *GameLoop) World() *World {
	return gl.world
}

// Ticks returns how many ticks have run.
func (gl *GameLoop) Ticks() uint64 {
	return gl.tickCount
}

// Tick resolves bomb fuses and blasts, then moves monsters.
func (gl *GameLoop) Tick() []Blast {
	m := gl.world.CurrentMap()

	blasts := gl.world.Bombs.Update(m)
	gl.world.Monsters.Update(m)
	gl.tickCount++

	for _, b := range blasts {
		logger.Log.WithFields(logrus.Fields{
			"tick": gl.tickCount, "x": b.X, "y": b.Y, "killed": b.Killed,
		}).Info("blast")
	}
	return blasts
}

// Run ticks at TickRate until ctx is done, calling frame after every tick.
func (gl *GameLoop) Run(ctx context.Context, frame func(tick uint64)) {
	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			gl.Tick()
			if frame != nil {
				frame(gl.tickCount)
			}
		}
	}
}
