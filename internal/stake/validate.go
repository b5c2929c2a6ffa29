package stake

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrNoGameType   = errors.New("no game type selected")
	ErrInvalidHand  = errors.New("invalid hand")
	ErrNotZeroSum   = errors.New("payouts do not sum to zero")
	ErrNegativeRuns = errors.New("number of laufende must be >= 0")
)

// ValidateHand checks that roles form a playable hand for g and m.
// All violations are reported together.
func ValidateHand(g GameType, m Modifier, roles []Role) error {
	if g.IsNone() {
		return ErrNoGameType
	}
	var errs []string

	if len(roles) != PlayersPerHand {
		errs = append(errs, fmt.Sprintf("hand needs %d players, got %d", PlayersPerHand, len(roles)))
	}

	seen := make(map[string]bool, len(roles))
	callers := 0
	for i, r := range roles {
		if r.Player == "" {
			errs = append(errs, fmt.Sprintf("roles[%d] has no player", i))
		} else if seen[r.Player] {
			errs = append(errs, fmt.Sprintf("player %q appears twice", r.Player))
		}
		seen[r.Player] = true
		if r.Caller {
			callers++
		}
	}
	if callers != g.CallerCount() {
		errs = append(errs, fmt.Sprintf("%s needs %d caller(s), got %d", g, g.CallerCount(), callers))
	}
	if !coherentWinners(roles) {
		errs = append(errs, "winners must be exactly the callers or exactly the non-callers")
	}

	errs = append(errs, declarationErrors(g, m)...)

	if len(errs) > 0 {
		return errors.Wrap(ErrInvalidHand, strings.Join(errs, "; "))
	}
	return nil
}

// ValidateDeclaration checks m against g without looking at any roles.
func ValidateDeclaration(g GameType, m Modifier) error {
	if g.IsNone() {
		return ErrNoGameType
	}
	if errs := declarationErrors(g, m); len(errs) > 0 {
		return errors.Wrap(ErrInvalidHand, strings.Join(errs, "; "))
	}
	return nil
}

func declarationErrors(g GameType, m Modifier) []string {
	var errs []string
	if !g.IsSolo() {
		if m.Tout() {
			errs = append(errs, fmt.Sprintf("tout is not allowed in %s", g))
		}
		if m.Sie() {
			errs = append(errs, fmt.Sprintf("sie is not allowed in %s", g))
		}
	}
	if m.NumLaufende() < 0 {
		errs = append(errs, ErrNegativeRuns.Error())
	}
	return errs
}

// coherentWinners holds when one whole side won and the other side lost.
func coherentWinners(roles []Role) bool {
	if len(roles) == 0 {
		return false
	}
	// each role tells us from its side whether the callers won
	callersWon := roles[0].Winner == roles[0].Caller
	for _, r := range roles[1:] {
		if (r.Winner == r.Caller) != callersWon {
			return false
		}
	}
	return true
}
