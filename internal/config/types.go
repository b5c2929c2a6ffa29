package config

// RawConfig is a stake table file as read from YAML. Pointer fields are
// optional so that a table file only needs to name what it overrides.
type RawConfig struct {
	Version string         `yaml:"version"`
	Stake   StakeConfig    `yaml:"stake"`
	Session *SessionConfig `yaml:"session,omitempty"`
	Notes   string         `yaml:"notes,omitempty"`

	// Currency is the symbol printed after display amounts, e.g. "€".
	Currency string `yaml:"currency,omitempty"`
}

// StakeConfig holds prices in cents.
type StakeConfig struct {
	BasePrice     *int `yaml:"base_price"`
	SoloPrice     *int `yaml:"solo_price"`
	LaufendePrice *int `yaml:"laufende_price"`
}

type SessionConfig struct {
	MinPlayers *int `yaml:"min_players"`
}

// Table is a validated, fully merged stake table.
type Table struct {
	Name       string
	Version    string
	BasePrice  int
	SoloPrice  int
	Laufende   int
	MinPlayers int
	Currency   string
}
