package game

// TickRate is how many ticks the game loop runs per second.
const TickRate = 20

// SecsToTicks converts a duration in seconds to game ticks.
func SecsToTicks(s float64) int {
	t := int(s * TickRate)
	if t < 1 {
		t = 1
	}
	return t
}

// Timing constants, set in seconds and converted to ticks at init.
var (
	BombFuse    = SecsToTicks(2.0) // ticks between placing a bomb and the blast
	MonsterStep = SecsToTicks(0.5) // ticks between two monster moves
)

// DefaultBombRange is the blast reach of a fresh bomb, in cells.
const DefaultBombRange = 1
