package server

import "twentyeight/internal/engine"

type EventPayload struct {
	Player    int    `json:"player"`
	Bid       int    `json:"bid,omitempty"`
	Honors    bool   `json:"honors,omitempty"`
	Card      string `json:"card,omitempty"`
	Suit      string `json:"suit,omitempty"`
	Changed   bool   `json:"changed,omitempty"`
	Requested bool   `json:"requested,omitempty"`
	Forced    bool   `json:"forced,omitempty"`
	Round     int    `json:"round,omitempty"`
	Points    int    `json:"points,omitempty"`
	Made      bool   `json:"made,omitempty"`
	Awards    []int  `json:"awards,omitempty"`
	Totals    []int  `json:"totals,omitempty"`
	Winners   []int  `json:"winners,omitempty"`
}

// buildEvents describes what an accepted action changed. Events never carry
// the identity of a concealed card.
func buildEvents(prev engine.GameState, next engine.GameState, player int, action engine.Action) []Event {
	events := []Event{}
	switch action.Type {
	case engine.ActionDeal:
		events = append(events, Event{Type: "round_dealt", Data: EventPayload{Player: next.Dealer, Round: next.Round}})
	case engine.ActionBid:
		events = append(events, Event{Type: "bid_made", Data: EventPayload{Player: player, Bid: action.Bid, Honors: action.Bid >= next.Rules.HonorsThreshold}})
	case engine.ActionPass:
		events = append(events, Event{Type: "bid_passed", Data: EventPayload{Player: player}})
	case engine.ActionFoldTrump:
		events = append(events, Event{Type: "trump_folded", Data: EventPayload{Player: player}})
	case engine.ActionKeepTrump, engine.ActionChangeTrump:
		events = append(events, Event{Type: "trump_finalized", Data: EventPayload{Player: player, Changed: action.Type == engine.ActionChangeTrump}})
	}

	if !prev.Trump.Revealed && next.Trump.Revealed && next.Trump.FinalSuit != nil {
		events = append(events, Event{Type: "trump_revealed", Data: EventPayload{
			Player:    player,
			Suit:      next.Trump.FinalSuit.String(),
			Requested: action.Type == engine.ActionRequestReveal,
			Forced:    action.Type == engine.ActionPlayCard,
		}})
	}

	if action.Type == engine.ActionPlayCard && action.Card != nil {
		events = append(events, Event{Type: "card_played", Data: EventPayload{Player: player, Card: action.Card.ID()}})
	}

	if prev.Phase != engine.PhaseTrickComplete && next.Phase == engine.PhaseTrickComplete && next.Trick.Winner != nil {
		events = append(events, Event{Type: "trick_won", Data: EventPayload{Player: *next.Trick.Winner, Points: next.Trick.Points}})
	}

	if len(next.Scores) > len(prev.Scores) {
		rs := next.Scores[len(next.Scores)-1]
		events = append(events, Event{Type: "round_scored", Data: EventPayload{
			Player: rs.Declarer,
			Round:  rs.Round,
			Made:   rs.Made,
			Awards: append([]int(nil), rs.Awards...),
			Totals: append([]int(nil), next.Totals...),
		}})
	}
	if prev.Phase != engine.PhaseGameOver && next.Phase == engine.PhaseGameOver {
		events = append(events, Event{Type: "game_over", Data: EventPayload{Player: -1, Winners: engine.Winners(next)}})
	}
	return events
}
