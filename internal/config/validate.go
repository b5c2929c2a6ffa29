package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/xtding233/sheepshead-backend/internal/stake"
)

var ErrInvalidConfig = errors.New("config validation failed")

// ValidateRaw checks a merged table. All problems are reported at once.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	prices := []struct {
		name string
		v    *int
	}{
		{"stake.base_price", cfg.Stake.BasePrice},
		{"stake.solo_price", cfg.Stake.SoloPrice},
		{"stake.laufende_price", cfg.Stake.LaufendePrice},
	}
	for _, p := range prices {
		switch {
		case p.v == nil:
			errs = append(errs, p.name+" is required")
		case *p.v <= 0:
			errs = append(errs, fmt.Sprintf("%s must be > 0", p.name))
		case *p.v > stake.MaxPrice:
			errs = append(errs, fmt.Sprintf("%s must be <= %d", p.name, stake.MaxPrice))
		}
	}

	if cfg.Session != nil && cfg.Session.MinPlayers != nil {
		if *cfg.Session.MinPlayers < stake.PlayersPerHand {
			errs = append(errs, fmt.Sprintf("session.min_players must be >= %d", stake.PlayersPerHand))
		}
	}

	if len(errs) > 0 {
		return errors.Wrap(ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}
