package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/xtding233/sheepshead-backend/internal/config"
	"github.com/xtding233/sheepshead-backend/internal/logging"
	"github.com/xtding233/sheepshead-backend/internal/money"
	"github.com/xtding233/sheepshead-backend/internal/session"
	"github.com/xtding233/sheepshead-backend/internal/stake"
	"github.com/xtding233/sheepshead-backend/internal/store"
)

var restLogger = log.With().Str("logger_name", "rest::rest").Logger()

// Server serves sessions and the stake calculator over HTTP.
type Server struct {
	sessions *store.SessionStore
	loader   *config.Loader
	table    string // used when a request names no table
}

func NewServer(sessions *store.SessionStore, loader *config.Loader, table string) *Server {
	return &Server{sessions: sessions, loader: loader, table: table}
}

// Router builds the gin engine with all routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/ready", checkReady)
	r.POST("/stake/value", s.stakeValue)

	r.POST("/sessions", s.createSession)
	r.GET("/sessions/:id", s.getSession)
	r.DELETE("/sessions/:id", s.deleteSession)
	r.POST("/sessions/:id/players", s.addPlayer)
	r.GET("/sessions/:id/players/:name/series", s.balanceSeries)
	r.POST("/sessions/:id/hands", s.recordHand)
	r.GET("/sessions/:id/hands", s.listHands)
	r.DELETE("/sessions/:id/hands/last", s.undoHand)
	r.GET("/sessions/:id/scoreboard", s.scoreboard)
	r.GET("/sessions/:id/stats", s.stats)
	return r
}

func RunServer(srv *Server, portNo uint) error {
	restLogger.Info().Msgf("Listening on port %d", portNo)
	return srv.Router().Run(fmt.Sprintf(":%d", portNo))
}

func checkReady(c *gin.Context) {
	type resp struct {
		Status string `json:"status"`
	}
	c.JSON(http.StatusOK, resp{Status: "OK"})
}

// fail maps domain errors to HTTP status codes.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.Cause(err) {
	case store.ErrNotFound:
		status = http.StatusNotFound
	case stake.ErrInvalidHand, stake.ErrInvalidModifier, stake.ErrInvalidStake,
		stake.ErrNoGameType, stake.ErrUnknownGameType, stake.ErrNegativeRuns,
		session.ErrInvalidPlayers, session.ErrUnknownPlayer, session.ErrNoHands:
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		restLogger.Error().Err(err).Str(logging.PathKey, c.FullPath()).Msg("Request failed")
	}
	c.JSON(status, errResp{Err: err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errResp{Err: err.Error()})
}

func (s *Server) lookup(c *gin.Context) (*session.Session, bool) {
	sess, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return nil, false
	}
	return sess, true
}

func (s *Server) stakeValue(c *gin.Context) {
	var req stakeValueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	g, err := stake.ParseGameType(req.GameType)
	if err != nil {
		fail(c, err)
		return
	}
	m, err := req.Modifier.build()
	if err != nil {
		fail(c, err)
		return
	}
	if err := stake.ValidateDeclaration(g, m); err != nil {
		fail(c, err)
		return
	}
	var st stake.Stake
	if req.Stake != nil {
		st, err = stake.NewStake(req.Stake.BasePrice, req.Stake.SoloPrice, req.Stake.LaufendePrice)
	} else {
		st, err = s.tableStake(s.table)
	}
	if err != nil {
		fail(c, err)
		return
	}
	v, err := stake.ComputeStakeValue(g, m, st)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stakeValueResp{Value: v, Display: money.Format(v, s.currency(s.table))})
}

// currency returns the display symbol of a table, or "" if it cannot be
// resolved.
func (s *Server) currency(table string) string {
	if table == "" {
		table = s.table
	}
	t, err := s.loader.Resolve(table)
	if err != nil {
		return ""
	}
	return t.Currency
}

func (s *Server) tableStake(table string) (stake.Stake, error) {
	t, err := s.loader.Resolve(table)
	if err != nil {
		return stake.Stake{}, err
	}
	return t.Stake()
}

func (s *Server) createSession(c *gin.Context) {
	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	table := req.Table
	if table == "" {
		table = s.table
	}
	t, err := s.loader.Resolve(table)
	if err != nil {
		fail(c, err)
		return
	}
	if len(req.Players) < t.MinPlayers {
		fail(c, errors.Wrapf(session.ErrInvalidPlayers, "table %s needs at least %d players", t.Name, t.MinPlayers))
		return
	}
	st, err := t.Stake()
	if err != nil {
		fail(c, err)
		return
	}
	sess, err := session.New(st, req.Players)
	if err != nil {
		fail(c, err)
		return
	}
	sess.Table = t.Name
	s.sessions.Add(sess)
	restLogger.Info().Str(logging.SessionIDKey, sess.ID).Str(logging.TableKey, t.Name).Msg("Session created")
	c.JSON(http.StatusCreated, toSessionResp(sess))
}

func (s *Server) getSession(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toSessionResp(sess))
}

func (s *Server) deleteSession(c *gin.Context) {
	if _, ok := s.lookup(c); !ok {
		return
	}
	s.sessions.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (s *Server) addPlayer(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	var req addPlayerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := sess.AddPlayer(req.Name); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResp(sess))
}

func (s *Server) recordHand(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	var req recordHandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	g, err := stake.ParseGameType(req.GameType)
	if err != nil {
		fail(c, err)
		return
	}
	m, err := req.Modifier.build()
	if err != nil {
		fail(c, err)
		return
	}
	hand, err := sess.RecordHand(g, m, toRoles(req.Roles))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toHandResp(hand, s.currency(sess.Table)))
}

func (s *Server) listHands(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	hands := sess.Hands()
	currency := s.currency(sess.Table)
	resp := make([]handResp, len(hands))
	for i, h := range hands {
		resp[i] = toHandResp(h, currency)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) undoHand(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	hand, err := sess.UndoLastHand()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toHandResp(hand, s.currency(sess.Table)))
}

func (s *Server) scoreboard(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Scoreboard())
}

func (s *Server) stats(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Stats())
}

func (s *Server) balanceSeries(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	name := c.Param("name")
	series, err := sess.BalanceSeries(name)
	if err != nil {
		if errors.Cause(err) == session.ErrUnknownPlayer {
			c.JSON(http.StatusNotFound, errResp{Err: err.Error()})
			return
		}
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, seriesResp{Player: name, Balance: series})
}
