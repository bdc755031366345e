// Package cell encodes the state of one grid position.
//
// On disk and through the raw map accessors a cell is a single byte:
//
//	bit  7    door state (DOOR only)
//	bits 4-6  sub-type: scenery kind, bonus kind, goal kind or door lock index
//	bits 0-3  base type
//
// In memory the grid holds the decoded Cell variant instead, so a door can
// never carry a bonus kind and a box can never be "open".
package cell

import "fmt"

// Type is the base type held in bits 0-3.
type Type uint8

const (
	TypeEmpty Type = iota
	TypeScenery
	TypeCase
	TypeBonus
	TypeKey
	TypeGoal
	TypeDoor
	// TypeMonster only appears in level files. Monster discovery replaces it
	// with TypeEmpty and spawns a monster on the cell.
	TypeMonster
)

var typeNames = [...]string{"empty", "scenery", "case", "bonus", "key", "goal", "door", "monster"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// SceneryKind is the sub-type of a SCENERY cell.
type SceneryKind uint8

const (
	SceneryStone SceneryKind = iota
	SceneryTree
)

func (k SceneryKind) String() string {
	switch k {
	case SceneryStone:
		return "stone"
	case SceneryTree:
		return "tree"
	}
	return fmt.Sprintf("scenery(%d)", uint8(k))
}

// BonusKind is the sub-type of a BONUS cell.
type BonusKind uint8

const (
	BonusLife BonusKind = iota
	BonusRangeInc
	BonusRangeDec
	BonusNbInc
	BonusNbDec
)

var bonusNames = [...]string{"life", "range_inc", "range_dec", "nb_inc", "nb_dec"}

func (k BonusKind) String() string {
	if int(k) < len(bonusNames) {
		return bonusNames[k]
	}
	return fmt.Sprintf("bonus(%d)", uint8(k))
}

// GoalKind is the sub-type of a GOAL cell.
type GoalKind uint8

const (
	GoalFlag GoalKind = iota
	GoalWoman
)

func (k GoalKind) String() string {
	switch k {
	case GoalFlag:
		return "flag"
	case GoalWoman:
		return "woman"
	}
	return fmt.Sprintf("goal(%d)", uint8(k))
}

// DoorState is bit 7 of a DOOR cell.
type DoorState uint8

const (
	DoorClosed DoorState = iota
	DoorOpen
)

func (s DoorState) String() string {
	if s == DoorOpen {
		return "open"
	}
	return "closed"
}

const (
	typeMask  = 0x0F
	subMask   = 0x70
	subShift  = 4
	doorShift = 7
	doorBit   = 1 << doorShift
)

// MaxDoorIndex is the highest lock index a door can carry.
const MaxDoorIndex = subMask >> subShift

// Pack composes a raw byte from its three fields. Fields are masked to their
// widths, so any input yields a byte.
func Pack(t Type, sub uint8, state DoorState) byte {
	return byte(t)&typeMask | (sub<<subShift)&subMask | (byte(state)<<doorShift)&doorBit
}

// BaseOf returns bits 0-3.
func BaseOf(b byte) Type { return Type(b & typeMask) }

// SubOf returns bits 4-7 shifted down, the way bonus and goal kinds are read.
func SubOf(b byte) uint8 { return b >> subShift }

// DoorIndexOf returns bits 4-6.
func DoorIndexOf(b byte) int { return int((b & subMask) >> subShift) }

// DoorStateOf returns bit 7.
func DoorStateOf(b byte) DoorState { return DoorState(b >> doorShift) }

// OpenDoor sets bit 7 and leaves bits 0-6 alone. It cannot close a door:
// closing takes a full rewrite of the byte.
func OpenDoor(b byte) byte { return b | doorBit }
