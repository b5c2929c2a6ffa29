package stake

import (
	"strings"

	"github.com/pkg/errors"
)

// GameType describes how a hand is played. Every variant carries its own
// scoring constants instead of behavior.
type GameType struct {
	name           string
	teamMultiplier int // applied to the calling side's payout
	callerCount    int // players on the calling side
	laufendeBegin  int // inclusive
	laufendeEnd    int // inclusive
}

var (
	// None marks "no game type chosen yet". It is never a valid hand.
	None     = GameType{name: "NONE"}
	Sauspiel = GameType{name: "SAUSPIEL", teamMultiplier: 1, callerCount: 2, laufendeBegin: 3, laufendeEnd: 8}
	// Wenz only knows the four Unter as trumps, so the window is short.
	Wenz     = GameType{name: "WENZ", teamMultiplier: 3, callerCount: 1, laufendeBegin: 2, laufendeEnd: 4}
	Solo     = GameType{name: "SOLO", teamMultiplier: 3, callerCount: 1, laufendeBegin: 3, laufendeEnd: 8}
)

// GameTypes lists the playable variants in display order.
var GameTypes = []GameType{Sauspiel, Wenz, Solo}

var ErrUnknownGameType = errors.New("unknown game type")

func (g GameType) String() string     { return g.name }
func (g GameType) TeamMultiplier() int { return g.teamMultiplier }
func (g GameType) CallerCount() int    { return g.callerCount }
func (g GameType) LaufendeBegin() int  { return g.laufendeBegin }
func (g GameType) LaufendeEnd() int    { return g.laufendeEnd }

// IsNone reports whether g is the unselected sentinel.
func (g GameType) IsNone() bool { return g.callerCount == 0 }

// IsSolo reports whether a single caller plays against the other three.
func (g GameType) IsSolo() bool { return g.callerCount == 1 }

// Laufende reports whether n trump runs earn a bonus in this game type.
func (g GameType) Laufende(n int) bool {
	if g.IsNone() {
		return false
	}
	return n >= g.laufendeBegin && n <= g.laufendeEnd
}

// ParseGameType maps a case-insensitive name like "wenz" to its variant.
func ParseGameType(s string) (GameType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, g := range GameTypes {
		if g.name == name {
			return g, nil
		}
	}
	return None, errors.Wrapf(ErrUnknownGameType, "%q", s)
}
