package server

import (
	"errors"
	"fmt"

	"twentyeight/internal/engine"
)

// ActionDTO is the wire form of an engine action. Cards travel as ids such
// as "10H" or "JS".
type ActionDTO struct {
	Type   string `json:"type"`
	Bid    int    `json:"bid,omitempty"`
	Honors bool   `json:"honors,omitempty"`
	Card   string `json:"card,omitempty"`
}

var actionTypes = map[string]engine.ActionType{}

func init() {
	for t := engine.ActionDeal; t <= engine.ActionConfirmTrick; t++ {
		actionTypes[t.String()] = t
	}
}

func (a *ActionDTO) ToEngine() (engine.Action, error) {
	if a == nil {
		return engine.Action{}, errors.New("action missing")
	}
	t, ok := actionTypes[a.Type]
	if !ok {
		return engine.Action{}, fmt.Errorf("unknown action type %q", a.Type)
	}
	out := engine.Action{Type: t}
	switch t {
	case engine.ActionBid:
		out.Bid = a.Bid
		out.Honors = a.Honors
	case engine.ActionFoldTrump, engine.ActionChangeTrump, engine.ActionPlayCard:
		if a.Card == "" {
			return engine.Action{}, errors.New("card required")
		}
		card, err := engine.ParseCardID(a.Card)
		if err != nil {
			return engine.Action{}, err
		}
		out.Card = &card
	}
	return out, nil
}

func ActionFromEngine(a engine.Action) ActionDTO {
	out := ActionDTO{Type: a.Type.String()}
	if a.Type == engine.ActionBid {
		out.Bid = a.Bid
		out.Honors = a.Honors
	}
	if a.Card != nil {
		out.Card = a.Card.ID()
	}
	return out
}

func cardIDs(cards []engine.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID())
	}
	return out
}

func suitString(s *engine.Suit) *string {
	if s == nil {
		return nil
	}
	v := s.String()
	return &v
}
