package maps

import (
	"github.com/sirupsen/logrus"

	"bomb-grid/internal/cell"
	"bomb-grid/internal/logger"
)

// Outcome is what a blast turned a cell into.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeEmpty
	OutcomeMonster
	OutcomeLife
	OutcomeRangeInc
	OutcomeRangeDec
	OutcomeNbInc
	OutcomeNbDec
)

var outcomeNames = [...]string{"none", "empty", "monster", "life", "range_inc", "range_dec", "nb_inc", "nb_dec"}

func (o Outcome) String() string {
	if o >= 0 && int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// explosionRoll is the exclusive upper bound of the draw.
const explosionRoll = 99

// explosionOutcome maps a draw onto the outcome table. The table runs to 100
// even though the draw stops at 98.
func explosionOutcome(r int) Outcome {
	switch {
	case 0 <= r && r < 30:
		return OutcomeEmpty
	case 30 <= r && r < 35:
		return OutcomeMonster
	case 35 <= r && r < 40:
		return OutcomeLife
	case 40 <= r && r < 55:
		return OutcomeRangeInc
	case 55 <= r && r < 70:
		return OutcomeRangeDec
	case 70 <= r && r < 85:
		return OutcomeNbInc
	case 85 <= r && r < 100:
		return OutcomeNbDec
	}
	return OutcomeNone
}

// ResolveExplosionAt applies a blast to the cell at (x, y): the cell is
// cleared, sometimes spawning a monster, or turned into a bonus.
func (m *Map) ResolveExplosionAt(x, y int) Outcome {
	m.index(x, y)

	r := m.rng.Intn(explosionRoll)
	out := explosionOutcome(r)

	switch out {
	case OutcomeEmpty:
		m.SetCell(x, y, cell.Empty{})
	case OutcomeMonster:
		m.SetCell(x, y, cell.Empty{})
		if m.spawner != nil {
			m.spawner.SpawnMonsterAt(m, x, y)
		}
	case OutcomeLife:
		m.SetCell(x, y, cell.Bonus{Kind: cell.BonusLife})
	case OutcomeRangeInc:
		m.SetCell(x, y, cell.Bonus{Kind: cell.BonusRangeInc})
	case OutcomeRangeDec:
		m.SetCell(x, y, cell.Bonus{Kind: cell.BonusRangeDec})
	case OutcomeNbInc:
		m.SetCell(x, y, cell.Bonus{Kind: cell.BonusNbInc})
	case OutcomeNbDec:
		m.SetCell(x, y, cell.Bonus{Kind: cell.BonusNbDec})
	}

	logger.Log.WithFields(logrus.Fields{
		"map": m.Name, "x": x, "y": y, "roll": r, "outcome": out,
	}).Debug("explosion resolved")
	return out
}
