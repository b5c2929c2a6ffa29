package stake

import "github.com/pkg/errors"

// ComputeStakeValue returns the absolute value one side pays per player.
// Steps run in order and each works on the previous result:
// - base price (Sauspiel) or solo price (Wenz, Solo)
// - + laufende × laufende price, only inside the game type's window
// - tout ×2, else sie ×4, else + base price for schneider and for schwarz
// - re ×4, else kontra ×2
func ComputeStakeValue(g GameType, m Modifier, s Stake) (int, error) {
	if g.IsNone() {
		return 0, ErrNoGameType
	}
	if s.IsZero() {
		return 0, errors.Wrap(ErrInvalidStake, "stake not initialised")
	}
	if m.NumLaufende() < 0 {
		return 0, ErrNegativeRuns
	}

	value := s.SoloPrice()
	if g == Sauspiel {
		value = s.BasePrice()
	}

	if g.Laufende(m.NumLaufende()) {
		value += m.NumLaufende() * s.LaufendePrice()
	}

	switch {
	case m.Tout():
		value *= 2
	case m.Sie():
		value *= 4
	default:
		if m.Schneider() {
			value += s.BasePrice()
		}
		if m.Schwarz() {
			value += s.BasePrice()
		}
	}

	// re replaces kontra, it does not stack on top of it
	switch {
	case m.Re():
		value *= 4
	case m.Kontra():
		value *= 2
	}
	return value, nil
}

// DistributePayouts writes the signed payout of every role. Callers get
// the team multiplier, so the money of all roles sums to zero.
func DistributePayouts(roles []Role, g GameType, stakeValue int) error {
	if g.IsNone() {
		return ErrNoGameType
	}
	for i := range roles {
		win := -1
		if roles[i].Winner {
			win = 1
		}
		if roles[i].Caller {
			roles[i].Money = g.TeamMultiplier() * win * stakeValue
		} else {
			roles[i].Money = win * stakeValue
		}
	}
	if sum := Sum(roles); sum != 0 {
		return errors.Wrapf(ErrNotZeroSum, "sum is %d", sum)
	}
	return nil
}

// Calculate validates the hand, computes its stake value and distributes
// the payouts into roles. roles is left untouched on validation errors.
func Calculate(g GameType, m Modifier, s Stake, roles []Role) (int, error) {
	if err := ValidateHand(g, m, roles); err != nil {
		return 0, err
	}
	value, err := ComputeStakeValue(g, m, s)
	if err != nil {
		return 0, err
	}
	if err := DistributePayouts(roles, g, value); err != nil {
		return 0, err
	}
	return value, nil
}
