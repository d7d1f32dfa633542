package server

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"twentyeight/internal/bots"
	"twentyeight/internal/engine"
	"twentyeight/internal/replay"
)

// Options configures the games a session starts.
type Options struct {
	Mode         engine.Mode
	TargetScore  int
	ForcedReveal engine.ForcedRevealPolicy
	Names        []string
	// Seed returns the shuffle seed for a new game.
	Seed      func() int64
	HumanSeat int
}

// Conn is the outbound half of a client connection.
type Conn interface {
	WriteJSON(v interface{}) error
}

// Session hosts one local game: a human seat plus bots on every other seat.
// All access is serialized by mu.
type Session struct {
	mu         sync.Mutex
	id         string
	opts       Options
	log        zerolog.Logger
	journal    *replay.Journal
	actionIds  map[string]bool
	conn       Conn
	botPlayers map[int]bots.Bot
}

func NewSession(opts Options, logger zerolog.Logger) *Session {
	if opts.Seed == nil {
		opts.Seed = func() int64 { return time.Now().UnixNano() }
	}
	id := uuid.NewString()
	return &Session{
		id:         id,
		opts:       opts,
		log:        logger.With().Str("session", id).Logger(),
		actionIds:  map[string]bool{},
		botPlayers: map[int]bots.Bot{},
	}
}

func (s *Session) ID() string {
	return s.id
}

type ClientMessage struct {
	Type      string     `json:"type"`
	ActionId  string     `json:"actionId,omitempty"`
	Action    *ActionDTO `json:"action,omitempty"`
	Mode      int        `json:"mode,omitempty"`
	RequestId string     `json:"requestId,omitempty"`
}

type ServerMessage struct {
	Type   string     `json:"type"`
	State  *GameView  `json:"state,omitempty"`
	Events []Event    `json:"events,omitempty"`
	Error  *ErrorView `json:"error,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// HandleConnection reads client messages until the connection fails. A new
// connection replaces the previous one.
func (s *Session) HandleConnection(conn *websocket.Conn) {
	s.Attach(conn)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.log.Debug().Err(err).Msg("connection closed")
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("bad_request", "invalid json")
			continue
		}
		s.HandleMessage(msg)
	}
}

func (s *Session) Attach(conn Conn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
}

func (s *Session) HandleMessage(msg ClientMessage) {
	switch msg.Type {
	case "join_session", "request_state":
		s.sendState(nil)
	case "start_game":
		s.startGame(engine.Mode(msg.Mode))
	case "player_action":
		s.applyAction(msg.ActionId, msg.Action)
	case "undo":
		s.undo()
	default:
		s.sendError("unknown_type", "unknown message type")
	}
}

// View returns the current game as seen from the human seat.
func (s *Session) View() *GameView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) startGame(mode engine.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mode == 0 {
		mode = s.opts.Mode
	}
	if _, err := engine.PresetFor(mode); err != nil {
		s.sendErrorLocked(errorCode(err), err.Error())
		return
	}
	names := s.opts.Names
	if len(names) != int(mode) {
		names = defaultNames(mode)
	}
	seed := s.opts.Seed()
	g, err := engine.InitializeGame(names, mode, s.opts.TargetScore, seed)
	if err != nil {
		s.sendErrorLocked(errorCode(err), err.Error())
		return
	}
	g.Rules.ForcedReveal = s.opts.ForcedReveal

	s.journal = replay.New(g)
	s.actionIds = map[string]bool{}
	s.botPlayers = map[int]bots.Bot{}
	for seat := range g.Players {
		if seat != s.opts.HumanSeat {
			s.botPlayers[seat] = bots.NewRandom(seed + int64(seat))
		}
	}
	s.log.Info().Str("game", g.ID).Stringer("mode", mode).Int64("seed", seed).Msg("game started")

	if err := s.applyLocked(-1, engine.Action{Type: engine.ActionDeal}); err != nil {
		s.log.Error().Err(err).Msg("initial deal")
		s.sendErrorLocked(errorCode(err), err.Error())
		return
	}
	s.botAutoPlayLocked()
}

func (s *Session) applyAction(actionId string, dto *ActionDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.journal == nil {
		s.sendErrorLocked("not_started", "game not started")
		return
	}
	if actionId == "" {
		s.sendErrorLocked("missing_action_id", "actionId required")
		return
	}
	if s.actionIds[actionId] {
		s.sendStateLocked(nil)
		return
	}
	s.actionIds[actionId] = true

	action, err := dto.ToEngine()
	if err != nil {
		s.sendErrorLocked("bad_action", err.Error())
		return
	}
	if err := s.applyLocked(s.opts.HumanSeat, action); err != nil {
		s.log.Debug().Err(err).Stringer("action", action).Msg("action rejected")
		s.sendErrorLocked(errorCode(err), err.Error())
		return
	}
	s.botAutoPlayLocked()
}

// applyLocked runs one action through the journal and pushes the new state
// with its events.
func (s *Session) applyLocked(player int, action engine.Action) error {
	prev := s.journal.State()
	if _, err := s.journal.Apply(player, action); err != nil {
		return err
	}
	next := s.journal.State()
	s.log.Debug().Int("player", player).Stringer("action", action).Stringer("phase", next.Phase).Msg("action applied")
	s.sendStateLocked(buildEvents(prev, next, player, action))
	return nil
}

func (s *Session) botAutoPlayLocked() {
	for {
		g := s.journal.State()
		player, ok := engine.CurrentPlayer(g)
		if !ok {
			return
		}
		bot, isBot := s.botPlayers[player]
		if !isBot {
			return
		}
		action := bot.ChooseAction(g, player)
		if err := s.applyLocked(player, action); err != nil {
			s.log.Error().Err(err).Int("player", player).Stringer("action", action).Msg("bot action rejected")
			return
		}
	}
}

// undo rolls back to just before the human seat's last action, dropping any
// bot moves made after it.
func (s *Session) undo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.journal == nil {
		s.sendErrorLocked("not_started", "game not started")
		return
	}
	if !s.humanActedLocked() {
		s.sendErrorLocked("nothing_to_undo", replay.ErrNothingToUndo.Error())
		return
	}
	for {
		e, _, err := s.journal.Undo()
		if errors.Is(err, replay.ErrNothingToUndo) {
			s.sendErrorLocked("nothing_to_undo", err.Error())
			return
		}
		if err != nil {
			s.log.Error().Err(err).Msg("undo failed")
			s.sendErrorLocked("undo_failed", err.Error())
			return
		}
		if e.Player == s.opts.HumanSeat {
			s.log.Info().Str("entry", e.ID).Stringer("action", e.Action).Msg("undo")
			s.sendStateLocked([]Event{{Type: "undone", Data: EventPayload{Player: e.Player}}})
			return
		}
	}
}

func (s *Session) humanActedLocked() bool {
	for _, e := range s.journal.Entries() {
		if e.Player == s.opts.HumanSeat {
			return true
		}
	}
	return false
}

func (s *Session) sendState(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendStateLocked(events)
}

func (s *Session) viewLocked() *GameView {
	if s.journal == nil {
		return nil
	}
	return BuildGameView(s.journal.State(), s.opts.HumanSeat, s.id)
}

func (s *Session) sendStateLocked(events []Event) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type:   "state",
		State:  s.viewLocked(),
		Events: events,
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.Warn().Err(err).Msg("write state")
	}
}

func (s *Session) sendError(code, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendErrorLocked(code, message)
}

func (s *Session) sendErrorLocked(code, message string) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type:  "error",
		Error: &ErrorView{Code: code, Message: message},
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.Warn().Err(err).Msg("write error")
	}
}

var errorCodes = []struct {
	err  error
	code string
}{
	{engine.ErrWrongTurn, "wrong_turn"},
	{engine.ErrWrongPhase, "wrong_phase"},
	{engine.ErrCardNotInHand, "card_not_in_hand"},
	{engine.ErrIllegalPlay, "illegal_play"},
	{engine.ErrInvalidBid, "invalid_bid"},
	{engine.ErrMissingTrumpSelection, "missing_trump_selection"},
	{engine.ErrInvalidTrumpSelection, "invalid_trump_selection"},
	{engine.ErrRevealNotAllowed, "reveal_not_allowed"},
	{engine.ErrPlayerCount, "player_count"},
}

func errorCode(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return "apply_failed"
}

func defaultNames(mode engine.Mode) []string {
	names := make([]string, int(mode))
	for i := range names {
		names[i] = "P" + string(rune('1'+i))
	}
	return names
}
