package session

import "github.com/pkg/errors"

// ScoreRow is one line of the historical scoreboard.
// Money and Balance are indexed like Scoreboard.Players; players that sat
// out the hand have zero money and keep their balance.
type ScoreRow struct {
	Hand     int    `json:"hand"`
	GameType string `json:"game_type"`
	Modifier string `json:"modifier"`
	Value    int    `json:"value"`
	Money    []int  `json:"money"`
	Balance  []int  `json:"balance"`
	Played   []bool `json:"played"`
}

type Scoreboard struct {
	Players []string   `json:"players"`
	Rows    []ScoreRow `json:"rows"`
	Totals  []int      `json:"totals"`
}

// Scoreboard builds the hand-by-hand table of the session.
func (s *Session) Scoreboard() Scoreboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col := make(map[string]int, len(s.players))
	board := Scoreboard{
		Players: make([]string, len(s.players)),
		Totals:  make([]int, len(s.players)),
	}
	for i, p := range s.players {
		board.Players[i] = p.Name
		col[p.Name] = i
	}

	running := make([]int, len(s.players))
	for _, h := range s.hands {
		row := ScoreRow{
			Hand:     h.Number,
			GameType: h.GameType.String(),
			Modifier: h.Modifier.String(),
			Value:    h.StakeValue,
			Money:    make([]int, len(s.players)),
			Played:   make([]bool, len(s.players)),
		}
		for _, r := range h.Roles {
			i := col[r.Player]
			row.Money[i] = r.Money
			row.Played[i] = true
			running[i] = r.Balance
		}
		row.Balance = append([]int(nil), running...)
		board.Rows = append(board.Rows, row)
	}
	copy(board.Totals, running)
	return board
}

// BalanceSeries returns the balance of a player after every hand,
// starting with 0 before the first hand. Used for charts.
func (s *Session) BalanceSeries(name string) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.index[name]; !ok {
		return nil, errors.Wrapf(ErrUnknownPlayer, "%q", name)
	}
	series := make([]int, 0, len(s.hands)+1)
	balance := 0
	series = append(series, balance)
	for _, h := range s.hands {
		for _, r := range h.Roles {
			if r.Player == name {
				balance = r.Balance
				break
			}
		}
		series = append(series, balance)
	}
	return series, nil
}
