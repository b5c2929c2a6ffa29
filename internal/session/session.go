package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/xtding233/sheepshead-backend/internal/logging"
	"github.com/xtding233/sheepshead-backend/internal/stake"
)

var sessionLogger = log.With().Str("logger_name", "session::session").Logger()

var (
	ErrInvalidPlayers = errors.New("invalid players")
	ErrUnknownPlayer  = errors.New("unknown player")
	ErrNoHands        = errors.New("no hands recorded")
)

// Player is a participant of a session with their running total in cents.
type Player struct {
	Name  string `json:"name"`
	Money int    `json:"money"`
}

// Hand is one recorded round. Roles carry the payout and the balance of
// each participant after the hand.
type Hand struct {
	Number     int
	GameType   stake.GameType
	Modifier   stake.Modifier
	StakeValue int
	Roles      []stake.Role
	PlayedAt   time.Time
}

// Session tracks players and hand history under one price table.
// It is safe for concurrent use.
type Session struct {
	ID        string
	Table     string // price table the stake came from, if any
	Stake     stake.Stake
	CreatedAt time.Time

	mu      sync.RWMutex
	players []*Player
	index   map[string]*Player
	hands   []Hand
}

// New starts a session. At least four distinct, non-empty names are needed.
func New(s stake.Stake, names []string) (*Session, error) {
	if s.IsZero() {
		return nil, errors.Wrap(stake.ErrInvalidStake, "session needs a stake")
	}
	if err := validateNames(names); err != nil {
		return nil, err
	}
	sess := &Session{
		ID:        uuid.New().String(),
		Stake:     s,
		CreatedAt: time.Now(),
		index:     make(map[string]*Player, len(names)),
	}
	for _, n := range names {
		p := &Player{Name: n}
		sess.players = append(sess.players, p)
		sess.index[n] = p
	}
	sessionLogger.Info().
		Str(logging.SessionIDKey, sess.ID).
		Str("stake", s.String()).
		Msgf("Session started with players %s", strings.Join(names, ", "))
	return sess, nil
}

func validateNames(names []string) error {
	var errs []string
	if len(names) < stake.PlayersPerHand {
		errs = append(errs, fmt.Sprintf("need at least %d players, got %d", stake.PlayersPerHand, len(names)))
	}
	seen := make(map[string]bool, len(names))
	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			errs = append(errs, fmt.Sprintf("players[%d] has no name", i))
			continue
		}
		if seen[n] {
			errs = append(errs, fmt.Sprintf("player %q appears twice", n))
		}
		seen[n] = true
	}
	if len(errs) > 0 {
		return errors.Wrap(ErrInvalidPlayers, strings.Join(errs, "; "))
	}
	return nil
}

// AddPlayer lets someone join a running session with a zero balance.
func (s *Session) AddPlayer(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.Wrap(ErrInvalidPlayers, "player has no name")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[name]; ok {
		return errors.Wrapf(ErrInvalidPlayers, "player %q already in session", name)
	}
	p := &Player{Name: name}
	s.players = append(s.players, p)
	s.index[name] = p
	sessionLogger.Info().Str(logging.SessionIDKey, s.ID).Str(logging.PlayerNameKey, name).Msg("Player joined")
	return nil
}

// RecordHand calculates the payouts of one hand and commits them.
// Nothing is changed if any step fails.
func (s *Session) RecordHand(g stake.GameType, m stake.Modifier, roles []stake.Role) (Hand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range roles {
		if _, ok := s.index[r.Player]; !ok {
			return Hand{}, errors.Wrapf(ErrUnknownPlayer, "%q", r.Player)
		}
	}

	work := make([]stake.Role, len(roles))
	for i, r := range roles {
		work[i] = stake.Role{Player: r.Player, Caller: r.Caller, Winner: r.Winner}
	}
	value, err := stake.Calculate(g, m, s.Stake, work)
	if err != nil {
		return Hand{}, errors.Wrap(err, "Could not calculate hand")
	}
	for i := range work {
		work[i].Balance = s.index[work[i].Player].Money + work[i].Money
	}

	// commit
	for _, r := range work {
		s.index[r.Player].Money = r.Balance
	}
	hand := Hand{
		Number:     len(s.hands) + 1,
		GameType:   g,
		Modifier:   m,
		StakeValue: value,
		Roles:      work,
		PlayedAt:   time.Now(),
	}
	s.hands = append(s.hands, hand)

	sessionLogger.Debug().
		Str(logging.SessionIDKey, s.ID).
		Int(logging.HandNumKey, hand.Number).
		Str(logging.GameTypeKey, g.String()).
		Str("modifier", m.String()).
		Int("value", value).
		Msg("Hand recorded")
	return copyHand(hand), nil
}

// UndoLastHand removes the latest hand and reverts its payouts.
func (s *Session) UndoLastHand() (Hand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.hands) == 0 {
		return Hand{}, ErrNoHands
	}
	last := s.hands[len(s.hands)-1]
	for _, r := range last.Roles {
		s.index[r.Player].Money -= r.Money
	}
	s.hands = s.hands[:len(s.hands)-1]
	sessionLogger.Info().Str(logging.SessionIDKey, s.ID).Int(logging.HandNumKey, last.Number).Msg("Hand undone")
	return last, nil
}

// Players returns a snapshot in join order.
func (s *Session) Players() []Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Player, len(s.players))
	for i, p := range s.players {
		out[i] = *p
	}
	return out
}

// Hands returns a snapshot of the history, oldest first.
func (s *Session) Hands() []Hand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Hand, len(s.hands))
	for i, h := range s.hands {
		out[i] = copyHand(h)
	}
	return out
}

// NumHands returns how many hands were recorded.
func (s *Session) NumHands() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.hands)
}

func copyHand(h Hand) Hand {
	h.Roles = append([]stake.Role(nil), h.Roles...)
	return h
}
