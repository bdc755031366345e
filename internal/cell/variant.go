package cell

// Cell is the decoded state of one grid position. The set of implementations
// is closed: Empty, Scenery, Box, Bonus, Key, Goal, Door, MonsterMarker and
// Unknown.
type Cell interface {
	Type() Type
	Encode() byte
	isCell()
}

// Empty is a walkable, blank cell.
type Empty struct{}

// Scenery is indestructible terrain.
type Scenery struct{ Kind SceneryKind }

// Box is a breakable case. Blowing it up runs explosion resolution.
type Box struct{}

// Bonus is a collectable.
type Bonus struct{ Kind BonusKind }

// Key opens doors.
type Key struct{}

// Goal ends the map when reached.
type Goal struct{ Kind GoalKind }

// Door leads to another map. Index is the lock number, 0-7.
type Door struct {
	Index uint8
	Open  bool
}

// MonsterMarker marks a monster start position in a level file.
type MonsterMarker struct{}

// Unknown keeps bytes whose base type has no meaning, so they survive a
// decode/encode round trip untouched.
type Unknown struct{ Raw byte }

func (Empty) Type() Type         { return TypeEmpty }
func (Scenery) Type() Type       { return TypeScenery }
func (Box) Type() Type           { return TypeCase }
func (Bonus) Type() Type         { return TypeBonus }
func (Key) Type() Type           { return TypeKey }
func (Goal) Type() Type          { return TypeGoal }
func (Door) Type() Type          { return TypeDoor }
func (MonsterMarker) Type() Type { return TypeMonster }
func (u Unknown) Type() Type     { return BaseOf(u.Raw) }

func (Empty) Encode() byte         { return Pack(TypeEmpty, 0, DoorClosed) }
func (s Scenery) Encode() byte     { return Pack(TypeScenery, uint8(s.Kind), DoorClosed) }
func (Box) Encode() byte           { return Pack(TypeCase, 0, DoorClosed) }
func (b Bonus) Encode() byte       { return Pack(TypeBonus, uint8(b.Kind), DoorClosed) }
func (Key) Encode() byte           { return Pack(TypeKey, 0, DoorClosed) }
func (g Goal) Encode() byte        { return Pack(TypeGoal, uint8(g.Kind), DoorClosed) }
func (MonsterMarker) Encode() byte { return Pack(TypeMonster, 0, DoorClosed) }
func (u Unknown) Encode() byte     { return u.Raw }

func (d Door) Encode() byte {
	state := DoorClosed
	if d.Open {
		state = DoorOpen
	}
	return Pack(TypeDoor, d.Index, state)
}

// State returns the door state as its enum.
func (d Door) State() DoorState {
	if d.Open {
		return DoorOpen
	}
	return DoorClosed
}

func (Empty) isCell()         {}
func (Scenery) isCell()       {}
func (Box) isCell()           {}
func (Bonus) isCell()         {}
func (Key) isCell()           {}
func (Goal) isCell()          {}
func (Door) isCell()          {}
func (MonsterMarker) isCell() {}
func (Unknown) isCell()       {}

// Decode turns a raw byte into its variant. Sub-type bits that a base type
// does not use are dropped.
func Decode(b byte) Cell {
	sub := (b & subMask) >> subShift
	switch BaseOf(b) {
	case TypeEmpty:
		return Empty{}
	case TypeScenery:
		return Scenery{Kind: SceneryKind(sub)}
	case TypeCase:
		return Box{}
	case TypeBonus:
		return Bonus{Kind: BonusKind(sub)}
	case TypeKey:
		return Key{}
	case TypeGoal:
		return Goal{Kind: GoalKind(sub)}
	case TypeDoor:
		return Door{Index: sub, Open: DoorStateOf(b) == DoorOpen}
	case TypeMonster:
		return MonsterMarker{}
	}
	return Unknown{Raw: b}
}
