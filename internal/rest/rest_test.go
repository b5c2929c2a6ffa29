package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"math"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"github.com/xtding233/sheepshead-backend/internal/config"
	"github.com/xtding233/sheepshead-backend/internal/session"
	"github.com/xtding233/sheepshead-backend/internal/store"
)

const tableYAML = `version: "1"
stake:
  base_price: 10
  solo_price: 50
  laufende_price: 10
currency: "€"
`

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	path := filepath.Join(dir, "tables", "default.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(tableYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	sessions, err := store.New(8)
	if err != nil {
		t.Fatal(err)
	}
	return NewServer(sessions, config.NewLoader(dir), "default").Router()
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil && w.Code < 300 {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: decode %q: %s", method, path, w.Body.String(), err)
		}
	}
	return w.Code
}

func TestStakeValue(t *testing.T) {
	r := newTestServer(t)

	var resp stakeValueResp
	code := do(t, r, http.MethodPost, "/stake/value", stakeValueReq{
		GameType: "sauspiel",
		Modifier: modifierDTO{Kontra: true, Re: true, Schneider: true, Schwarz: true, Laufende: 5},
	}, &resp)
	if code != http.StatusOK || resp.Value != 320 || resp.Display != "3,20 €" {
		t.Errorf("code=%d resp=%+v", code, resp)
	}

	code = do(t, r, http.MethodPost, "/stake/value", stakeValueReq{
		GameType: "wenz",
		Modifier: modifierDTO{Tout: true, Laufende: 2},
		Stake:    &stakeDTO{BasePrice: 20, SoloPrice: 100, LaufendePrice: 20},
	}, &resp)
	if code != http.StatusOK || resp.Value != 280 {
		t.Errorf("code=%d resp=%+v", code, resp)
	}

	bad := []stakeValueReq{
		{GameType: "none"},
		{GameType: "solo", Modifier: modifierDTO{Re: true}},
		{GameType: "solo", Stake: &stakeDTO{BasePrice: 0, SoloPrice: 50, LaufendePrice: 10}},
		{GameType: "solo", Stake: &stakeDTO{BasePrice: 10, SoloPrice: math.MaxInt / 2, LaufendePrice: 10}},
		{GameType: "sauspiel", Modifier: modifierDTO{Tout: true}},
		{GameType: "sauspiel", Modifier: modifierDTO{Sie: true}},
	}
	for i, req := range bad {
		if code := do(t, r, http.MethodPost, "/stake/value", req, nil); code != http.StatusBadRequest {
			t.Errorf("Test case %d: expected 400, got %d", i, code)
		}
	}
}

func TestSessionFlow(t *testing.T) {
	r := newTestServer(t)

	var created sessionResp
	code := do(t, r, http.MethodPost, "/sessions", createSessionReq{Players: []string{"anna", "bert", "carl", "dora"}}, &created)
	if code != http.StatusCreated || created.ID == "" {
		t.Fatalf("create: code=%d resp=%+v", code, created)
	}
	base := "/sessions/" + created.ID

	var hand handResp
	code = do(t, r, http.MethodPost, base+"/hands", recordHandReq{
		GameType: "solo",
		Modifier: modifierDTO{Sie: true, Schneider: true, Schwarz: true, Laufende: 8},
		Roles: []roleDTO{
			{Player: "anna", Caller: true},
			{Player: "bert", Winner: true},
			{Player: "carl", Winner: true},
			{Player: "dora", Winner: true},
		},
	}, &hand)
	if code != http.StatusCreated {
		t.Fatalf("record: code=%d", code)
	}
	if hand.StakeValue != 520 || hand.Roles[0].Money != -1560 || hand.Roles[0].Display != "-15,60 €" || hand.Roles[1].Money != 520 {
		t.Errorf("unexpected hand %+v", hand)
	}

	// two callers in a solo
	code = do(t, r, http.MethodPost, base+"/hands", recordHandReq{
		GameType: "solo",
		Roles: []roleDTO{
			{Player: "anna", Caller: true, Winner: true},
			{Player: "bert", Caller: true, Winner: true},
			{Player: "carl"},
			{Player: "dora"},
		},
	}, nil)
	if code != http.StatusBadRequest {
		t.Errorf("invalid hand: expected 400, got %d", code)
	}

	var got sessionResp
	if code := do(t, r, http.MethodGet, base, nil, &got); code != http.StatusOK {
		t.Fatalf("get: code=%d", code)
	}
	expectedPlayers := []session.Player{
		{Name: "anna", Money: -1560},
		{Name: "bert", Money: 520},
		{Name: "carl", Money: 520},
		{Name: "dora", Money: 520},
	}
	if diff := cmp.Diff(expectedPlayers, got.Players); diff != "" {
		t.Errorf("players mismatch (-expected +actual):\n%s", diff)
	}
	if got.Hands != 1 || got.Stake.SoloPrice != 50 {
		t.Errorf("unexpected session %+v", got)
	}

	var series seriesResp
	if code := do(t, r, http.MethodGet, base+"/players/anna/series", nil, &series); code != http.StatusOK {
		t.Fatalf("series: code=%d", code)
	}
	if diff := cmp.Diff([]int{0, -1560}, series.Balance); diff != "" {
		t.Errorf("series mismatch (-expected +actual):\n%s", diff)
	}
	if code := do(t, r, http.MethodGet, base+"/players/zoe/series", nil, nil); code != http.StatusNotFound {
		t.Errorf("unknown player series: expected 404, got %d", code)
	}

	var board session.Scoreboard
	if code := do(t, r, http.MethodGet, base+"/scoreboard", nil, &board); code != http.StatusOK {
		t.Fatalf("scoreboard: code=%d", code)
	}
	if len(board.Rows) != 1 || board.Rows[0].GameType != "SOLO" {
		t.Errorf("unexpected scoreboard %+v", board)
	}

	var stats []session.PlayerStats
	if code := do(t, r, http.MethodGet, base+"/stats", nil, &stats); code != http.StatusOK {
		t.Fatalf("stats: code=%d", code)
	}
	if len(stats) != 4 || stats[0].AsCaller != 1 || stats[0].Lost != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}

	if code := do(t, r, http.MethodDelete, base+"/hands/last", nil, &hand); code != http.StatusOK {
		t.Fatalf("undo: code=%d", code)
	}
	if code := do(t, r, http.MethodDelete, base+"/hands/last", nil, nil); code != http.StatusBadRequest {
		t.Errorf("second undo: expected 400, got %d", code)
	}

	if code := do(t, r, http.MethodPost, base+"/players", addPlayerReq{Name: "emil"}, &got); code != http.StatusOK {
		t.Fatalf("add player: code=%d", code)
	}
	if len(got.Players) != 5 {
		t.Errorf("expected 5 players, got %+v", got.Players)
	}

	if code := do(t, r, http.MethodDelete, base, nil, nil); code != http.StatusNoContent {
		t.Errorf("delete: code=%d", code)
	}
	if code := do(t, r, http.MethodGet, base, nil, nil); code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", code)
	}
}

func TestCreateSessionValidation(t *testing.T) {
	r := newTestServer(t)
	if code := do(t, r, http.MethodPost, "/sessions", createSessionReq{Players: []string{"anna", "bert", "carl"}}, nil); code != http.StatusBadRequest {
		t.Errorf("too few players: expected 400, got %d", code)
	}
	if code := do(t, r, http.MethodGet, "/sessions/unknown", nil, nil); code != http.StatusNotFound {
		t.Errorf("unknown session: expected 404, got %d", code)
	}
	if code := do(t, r, http.MethodGet, "/ready", nil, nil); code != http.StatusOK {
		t.Errorf("ready: code=%d", code)
	}
}
