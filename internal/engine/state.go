package engine

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// NewGame creates a game in the setup phase. Seat 0 deals the first round.
func NewGame(r Rules, names []string, seed int64) (GameState, error) {
	if len(names) != r.Players || r.Players != int(r.Mode) {
		return GameState{}, fmt.Errorf("%w: %s needs %d players, got %d", ErrPlayerCount, r.Mode, int(r.Mode), len(names))
	}
	players := make([]PlayerState, r.Players)
	for i := range players {
		players[i] = PlayerState{ID: i, Name: names[i], Team: -1}
		if r.Mode == ModeFourPlayer {
			players[i].Team = i % 2
		}
	}
	g := GameState{
		ID:      uuid.NewString(),
		Rules:   r,
		Seed:    seed,
		Phase:   PhaseSetup,
		Dealer:  0,
		Players: players,
	}
	g.Totals = make([]int, g.Sides())
	g.ResetRound()
	return g, nil
}

// Clone returns a deep copy that shares no memory with g.
func (g GameState) Clone() GameState {
	out := g
	out.Rules.DeckRanks = slices.Clone(g.Rules.DeckRanks)
	out.Deck = slices.Clone(g.Deck)
	out.Players = make([]PlayerState, len(g.Players))
	for i, p := range g.Players {
		cp := p
		cp.Hand = slices.Clone(p.Hand)
		cp.WonTricks = cloneTricks(p.WonTricks)
		out.Players[i] = cp
	}
	out.Bidding.Bids = slices.Clone(g.Bidding.Bids)
	if g.Bidding.Contract != nil {
		c := *g.Bidding.Contract
		out.Bidding.Contract = &c
	}
	out.Trump = g.Trump.clone()
	out.Trick = g.Trick.clone()
	out.CompletedTricks = cloneTricks(g.CompletedTricks)
	out.Scores = slices.Clone(g.Scores)
	for i := range out.Scores {
		out.Scores[i].Awards = slices.Clone(g.Scores[i].Awards)
	}
	out.Totals = slices.Clone(g.Totals)
	return out
}

func (t TrumpState) clone() TrumpState {
	out := t
	if t.ProvisionalSuit != nil {
		out.ProvisionalSuit = suitPtr(*t.ProvisionalSuit)
	}
	if t.ProvisionalCard != nil {
		out.ProvisionalCard = cardPtr(*t.ProvisionalCard)
	}
	if t.FinalSuit != nil {
		out.FinalSuit = suitPtr(*t.FinalSuit)
	}
	if t.FinalCard != nil {
		out.FinalCard = cardPtr(*t.FinalCard)
	}
	if t.Folded != nil {
		out.Folded = cardPtr(*t.Folded)
	}
	return out
}

func (t Trick) clone() Trick {
	out := t
	out.Plays = slices.Clone(t.Plays)
	if t.LeadSuit != nil {
		out.LeadSuit = suitPtr(*t.LeadSuit)
	}
	if t.Winner != nil {
		out.Winner = intPtr(*t.Winner)
	}
	if t.RevealRequestedBy != nil {
		out.RevealRequestedBy = intPtr(*t.RevealRequestedBy)
	}
	return out
}

func cloneTricks(ts []Trick) []Trick {
	if ts == nil {
		return nil
	}
	out := make([]Trick, len(ts))
	for i, t := range ts {
		out[i] = t.clone()
	}
	return out
}
