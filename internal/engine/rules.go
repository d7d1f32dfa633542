package engine

// trickWinner returns the index into plays of the winning card.
//
// With trump revealed the highest trump wins, otherwise the highest card of
// the lead suit. While trump is hidden a trump card is just a discard. Ties go
// to the card played first.
func trickWinner(plays []Play, trump *Suit, revealed bool) int {
	if len(plays) == 0 {
		return -1
	}
	if revealed && trump != nil {
		if idx := highestOfSuit(plays, *trump); idx >= 0 {
			return idx
		}
	}
	if idx := highestOfSuit(plays, plays[0].Card.Suit); idx >= 0 {
		return idx
	}
	best := 0
	for i := 1; i < len(plays); i++ {
		c, b := plays[i].Card, plays[best].Card
		if CardPoints(c.Rank) > CardPoints(b.Rank) ||
			(CardPoints(c.Rank) == CardPoints(b.Rank) && Order(c.Rank) > Order(b.Rank)) {
			best = i
		}
	}
	return best
}

func highestOfSuit(plays []Play, suit Suit) int {
	best := -1
	for i, p := range plays {
		if p.Card.Suit != suit {
			continue
		}
		if best < 0 || Order(p.Card.Rank) > Order(plays[best].Card.Rank) {
			best = i
		}
	}
	return best
}

func trickPoints(plays []Play) int {
	total := 0
	for _, p := range plays {
		total += CardPoints(p.Card.Rank)
	}
	return total
}

// legalCards returns the cards player may play into the current trick, in
// hand order. The caller must already have applied any forced reveal.
func legalCards(g *GameState, player int) []Card {
	hand := g.Players[player].Hand
	if len(hand) == 0 {
		return nil
	}
	trump := g.Trump.FinalSuit

	if g.Trick.LeadSuit == nil {
		if player == g.Trump.Declarer && !g.Trump.Revealed && trump != nil {
			return filterOutSuit(hand, *trump)
		}
		return append([]Card(nil), hand...)
	}

	lead := *g.Trick.LeadSuit
	if hasSuit(hand, lead) {
		return filterBySuit(hand, lead)
	}
	if trump == nil {
		return append([]Card(nil), hand...)
	}
	if onlySuit(hand, *trump) {
		return append([]Card(nil), hand...)
	}
	asker := g.Trick.RevealRequestedBy
	if g.Trump.Revealed && asker != nil && *asker == player && hasSuit(hand, *trump) {
		return filterBySuit(hand, *trump)
	}
	return append([]Card(nil), hand...)
}
