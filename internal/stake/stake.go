package stake

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidStake = errors.New("invalid stake")

// MaxPrice caps every price so that the largest stake value times the
// team multiplier stays far inside int range.
const MaxPrice = 1_000_000

// Stake is the price table of a session, in cents. It never changes after
// NewStake returned it.
type Stake struct {
	basePrice     int // Sauspiel, and each schneider/schwarz addition
	soloPrice     int // Wenz and Solo
	laufendePrice int // per qualifying laufender
}

// NewStake validates and builds a price table. All prices must be in
// (0, MaxPrice].
func NewStake(basePrice, soloPrice, laufendePrice int) (Stake, error) {
	var errs []string
	for _, p := range []struct {
		name string
		v    int
	}{
		{"base price", basePrice},
		{"solo price", soloPrice},
		{"laufende price", laufendePrice},
	} {
		if msg := checkPrice(p.v); msg != "" {
			errs = append(errs, fmt.Sprintf("%s %s, got %d", p.name, msg, p.v))
		}
	}
	if len(errs) > 0 {
		return Stake{}, errors.Wrap(ErrInvalidStake, strings.Join(errs, "; "))
	}
	return Stake{basePrice: basePrice, soloPrice: soloPrice, laufendePrice: laufendePrice}, nil
}

// checkPrice returns what is wrong with a single price, or "" if it is fine.
func checkPrice(v int) string {
	switch {
	case v <= 0:
		return "must be > 0"
	case v > MaxPrice:
		return fmt.Sprintf("must be <= %d", MaxPrice)
	}
	return ""
}

func (s Stake) BasePrice() int     { return s.basePrice }
func (s Stake) SoloPrice() int     { return s.soloPrice }
func (s Stake) LaufendePrice() int { return s.laufendePrice }

// IsZero reports whether s was never built through NewStake.
func (s Stake) IsZero() bool { return s == Stake{} }

func (s Stake) String() string {
	return fmt.Sprintf("%d/%d/%d", s.basePrice, s.soloPrice, s.laufendePrice)
}
