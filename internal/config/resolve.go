package config

import (
	"github.com/pkg/errors"

	"github.com/xtding233/sheepshead-backend/internal/stake"
)

// Resolve loads, merges and validates a table.
func (l *Loader) Resolve(table string) (Table, error) {
	if table == "" {
		table = defaultTable
	}
	raw, err := l.LoadMerged(table)
	if err != nil {
		return Table{}, err
	}
	if err := ValidateRaw(raw); err != nil {
		return Table{}, errors.Wrapf(err, "table %s", table)
	}
	t := Table{
		Name:       table,
		Version:    raw.Version,
		BasePrice:  *raw.Stake.BasePrice,
		SoloPrice:  *raw.Stake.SoloPrice,
		Laufende:   *raw.Stake.LaufendePrice,
		MinPlayers: stake.PlayersPerHand,
		Currency:   raw.Currency,
	}
	if raw.Session != nil && raw.Session.MinPlayers != nil {
		t.MinPlayers = *raw.Session.MinPlayers
	}
	return t, nil
}

// Stake builds the price table of t.
func (t Table) Stake() (stake.Stake, error) {
	return stake.NewStake(t.BasePrice, t.SoloPrice, t.Laufende)
}
