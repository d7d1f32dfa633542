package engine

import "testing"

func c(id string) Card {
	card, err := ParseCardID(id)
	if err != nil {
		panic(err)
	}
	return card
}

func cards(ids ...string) []Card {
	out := make([]Card, 0, len(ids))
	for _, id := range ids {
		out = append(out, c(id))
	}
	return out
}

func threeNames() []string {
	return []string{"P1", "P2", "P3"}
}

func fourNames() []string {
	return []string{"N", "E", "S", "W"}
}

// playState builds a game already in trick play. Cards not placed in a hand
// or folded are parked in the deck so card conservation holds.
func playState(t *testing.T, r Rules, hands [][]Card, declarer int, folded *Card, final Card, leader int) GameState {
	t.Helper()
	names := threeNames()
	if r.Mode == ModeFourPlayer {
		names = fourNames()
	}
	g, err := NewGame(r, names, 1)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	g.Round = 1
	g.Phase = PhasePlaying
	placed := map[Card]bool{}
	for i, h := range hands {
		g.Players[i].Hand = append([]Card(nil), h...)
		for _, card := range h {
			placed[card] = true
		}
	}
	if folded != nil {
		g.Trump.Folded = cardPtr(*folded)
		placed[*folded] = true
	} else {
		g.Trump.FoldedReturned = true
		g.Trump.Revealed = true
	}
	for _, card := range BuildDeck(r) {
		if !placed[card] {
			g.Deck = append(g.Deck, card)
		}
	}
	g.Trump.Declarer = declarer
	g.Trump.ProvisionalBidder = declarer
	g.Trump.FinalCard = cardPtr(final)
	g.Trump.FinalSuit = suitPtr(final.Suit)
	g.Trump.ProvisionalCard = cardPtr(final)
	g.Trump.ProvisionalSuit = suitPtr(final.Suit)
	g.Bidding.Contract = &Bid{Amount: 16, Player: declarer, Round: 1}
	g.Bidding.ContractRound = 1
	g.Trick = Trick{Leader: leader}
	if err := CheckInvariants(g); err != nil {
		t.Fatalf("fixture broken: %v", err)
	}
	return g
}

func mustApply(t *testing.T, g *GameState, player int, a Action) {
	t.Helper()
	if err := ApplyAction(g, player, a); err != nil {
		t.Fatalf("apply %v by %d: %v", a, player, err)
	}
}

func intp(i int) *int {
	return &i
}
