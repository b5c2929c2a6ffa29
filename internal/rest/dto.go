package rest

import (
	"time"

	"github.com/xtding233/sheepshead-backend/internal/money"
	"github.com/xtding233/sheepshead-backend/internal/session"
	"github.com/xtding233/sheepshead-backend/internal/stake"
)

type modifierDTO struct {
	Kontra    bool `json:"kontra"`
	Re        bool `json:"re"`
	Tout      bool `json:"tout"`
	Sie       bool `json:"sie"`
	Schneider bool `json:"schneider"`
	Schwarz   bool `json:"schwarz"`
	Laufende  int  `json:"laufende"`
}

func (m modifierDTO) build() (stake.Modifier, error) {
	return stake.NewModifierBuilder().
		Kontra(m.Kontra).
		Re(m.Re).
		Tout(m.Tout).
		Sie(m.Sie).
		Schneider(m.Schneider).
		Schwarz(m.Schwarz).
		Laufende(m.Laufende).
		Build()
}

type stakeDTO struct {
	BasePrice     int `json:"base_price"`
	SoloPrice     int `json:"solo_price"`
	LaufendePrice int `json:"laufende_price"`
}

type stakeValueReq struct {
	GameType string      `json:"game_type"`
	Modifier modifierDTO `json:"modifier"`
	Stake    *stakeDTO   `json:"stake,omitempty"`
}

type stakeValueResp struct {
	Value   int    `json:"value"`
	Display string `json:"display"`
}

type createSessionReq struct {
	Players []string `json:"players"`
	Table   string   `json:"table"`
}

type addPlayerReq struct {
	Name string `json:"name"`
}

type roleDTO struct {
	Player  string `json:"player"`
	Caller  bool   `json:"caller"`
	Winner  bool   `json:"winner"`
	Money   int    `json:"money"`
	Balance int    `json:"balance"`
	Display string `json:"display,omitempty"`
}

type recordHandReq struct {
	GameType string      `json:"game_type"`
	Modifier modifierDTO `json:"modifier"`
	Roles    []roleDTO   `json:"roles"`
}

type handResp struct {
	Number     int       `json:"number"`
	GameType   string    `json:"game_type"`
	Modifier   string    `json:"modifier"`
	StakeValue int       `json:"stake_value"`
	Roles      []roleDTO `json:"roles"`
	PlayedAt   time.Time `json:"played_at"`
}

type sessionResp struct {
	ID        string           `json:"id"`
	Stake     stakeDTO         `json:"stake"`
	Players   []session.Player `json:"players"`
	Hands     int              `json:"hands"`
	CreatedAt time.Time        `json:"created_at"`
}

type seriesResp struct {
	Player  string `json:"player"`
	Balance []int  `json:"balance"`
}

type errResp struct {
	Err string `json:"err"`
}

func toRoles(in []roleDTO) []stake.Role {
	out := make([]stake.Role, len(in))
	for i, r := range in {
		out[i] = stake.Role{Player: r.Player, Caller: r.Caller, Winner: r.Winner}
	}
	return out
}

func toHandResp(h session.Hand, currency string) handResp {
	resp := handResp{
		Number:     h.Number,
		GameType:   h.GameType.String(),
		Modifier:   h.Modifier.String(),
		StakeValue: h.StakeValue,
		PlayedAt:   h.PlayedAt,
	}
	for _, r := range h.Roles {
		resp.Roles = append(resp.Roles, roleDTO{
			Player:  r.Player,
			Caller:  r.Caller,
			Winner:  r.Winner,
			Money:   r.Money,
			Balance: r.Balance,
			Display: money.FormatSigned(r.Money, currency),
		})
	}
	return resp
}

func toSessionResp(sess *session.Session) sessionResp {
	return sessionResp{
		ID: sess.ID,
		Stake: stakeDTO{
			BasePrice:     sess.Stake.BasePrice(),
			SoloPrice:     sess.Stake.SoloPrice(),
			LaufendePrice: sess.Stake.LaufendePrice(),
		},
		Players:   sess.Players(),
		Hands:     sess.NumHands(),
		CreatedAt: sess.CreatedAt,
	}
}
