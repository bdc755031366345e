// Package entity holds the bomb and monster records that live on a map and
// the positional list the map keeps them in.
package entity

import "github.com/google/uuid"

// Bomb is a placed bomb. It is owned by the bomb subsystem; the map list only
// references it.
type Bomb struct {
	ID    uuid.UUID
	Range int // cells reached in each direction
	Fuse  int // ticks left before it goes off
}

// NewBomb creates a bomb with a fresh ID.
func NewBomb(rng, fuse int) *Bomb {
	return &Bomb{ID: uuid.New(), Range: rng, Fuse: fuse}
}

// Monster is a live monster.
type Monster struct {
	ID       uuid.UUID
	Cooldown int // ticks until the next step
}

// NewMonster creates a monster with a fresh ID.
func NewMonster(cooldown int) *Monster {
	return &Monster{ID: uuid.New(), Cooldown: cooldown}
}

// Ref is the closed set of things a map list can point at.
type Ref interface {
	*Bomb | *Monster
}
