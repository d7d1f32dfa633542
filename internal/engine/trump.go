package engine

import "fmt"

func suitPtr(s Suit) *Suit {
	return &s
}

func cardPtr(c Card) *Card {
	return &c
}

func intPtr(i int) *int {
	return &i
}

// applyProvisionalFold conceals one card of the provisional bidder, deals the
// second batch and opens round-2 bidding.
func applyProvisionalFold(g *GameState, player int, a Action) error {
	if a.Type != ActionFoldTrump {
		return fmt.Errorf("%w: %v while selecting provisional trump", ErrWrongPhase, a.Type)
	}
	if player != g.Trump.ProvisionalBidder {
		return ErrWrongTurn
	}
	if a.Card == nil {
		return ErrMissingTrumpSelection
	}
	card := *a.Card
	if !removeCard(&g.Players[player].Hand, card) {
		return ErrCardNotInHand
	}
	g.Trump.Folded = cardPtr(card)
	g.Trump.ProvisionalCard = cardPtr(card)
	g.Trump.ProvisionalSuit = suitPtr(card.Suit)

	dealBatch(g)
	startBidding2(g)
	return nil
}

// applyFinalizeTrump settles the concealed trump once round-2 bidding is over.
//
// A declarer who won round 1 and saw no round-2 bid keeps the provisional
// trump. A declarer who raised in round 2 may keep or swap. A new declarer
// hands the old folded card back to the provisional bidder and must fold.
func applyFinalizeTrump(g *GameState, player int, a Action) error {
	if a.Type != ActionKeepTrump && a.Type != ActionChangeTrump {
		return fmt.Errorf("%w: %v while finalizing trump", ErrWrongPhase, a.Type)
	}
	if player != g.Trump.Declarer {
		return ErrWrongTurn
	}
	if g.Trump.Folded == nil {
		panic(fmt.Errorf("%w: no folded card to finalize", ErrInconsistentTrumpState))
	}

	sameDeclarer := g.Trump.Declarer == g.Trump.ProvisionalBidder
	raised := highBid(g, 2) != nil
	keep := a.Type == ActionKeepTrump

	switch {
	case sameDeclarer && !raised:
		if !keep {
			return fmt.Errorf("%w: provisional trump must be kept", ErrInvalidTrumpSelection)
		}
	case sameDeclarer:
		if !keep {
			if err := swapFolded(g, player, player, a.Card); err != nil {
				return err
			}
		}
	default:
		if a.Card == nil {
			return ErrMissingTrumpSelection
		}
		if keep {
			return fmt.Errorf("%w: a new declarer must fold their own card", ErrInvalidTrumpSelection)
		}
		if err := swapFolded(g, g.Trump.ProvisionalBidder, player, a.Card); err != nil {
			return err
		}
	}

	folded := *g.Trump.Folded
	g.Trump.FinalCard = cardPtr(folded)
	g.Trump.FinalSuit = suitPtr(folded.Suit)
	startPlay(g)
	return nil
}

// swapFolded returns the current folded card to owner and conceals card from
// the declarer's hand in its place.
func swapFolded(g *GameState, owner, declarer int, card *Card) error {
	if card == nil {
		return ErrMissingTrumpSelection
	}
	if !containsCard(g.Players[declarer].Hand, *card) {
		return ErrCardNotInHand
	}
	old := *g.Trump.Folded
	g.Players[owner].Hand = append(g.Players[owner].Hand, old)
	removeCard(&g.Players[declarer].Hand, *card)
	g.Trump.Folded = cardPtr(*card)
	return nil
}

// revealTrump turns trump face up and gives the folded card back to the
// declarer. Both flags only ever move from false to true.
func revealTrump(g *GameState) {
	g.Trump.Revealed = true
	if g.Trump.FoldedReturned || g.Trump.Folded == nil {
		return
	}
	d := g.Trump.Declarer
	g.Players[d].Hand = append(g.Players[d].Hand, *g.Trump.Folded)
	g.Trump.Folded = nil
	g.Trump.FoldedReturned = true
}

func onDeclarerSide(g *GameState, player int) bool {
	return g.Side(player) == g.Side(g.Trump.Declarer)
}

func canRequestReveal(g *GameState, player int) error {
	if g.Trump.Revealed {
		return fmt.Errorf("%w: trump already revealed", ErrRevealNotAllowed)
	}
	if g.Trump.FinalSuit == nil {
		return fmt.Errorf("%w: trump not finalized", ErrRevealNotAllowed)
	}
	if onDeclarerSide(g, player) {
		return fmt.Errorf("%w: declarer's side cannot request a reveal", ErrRevealNotAllowed)
	}
	if g.Trick.LeadSuit == nil {
		return fmt.Errorf("%w: nothing led yet", ErrRevealNotAllowed)
	}
	if hasSuit(g.Players[player].Hand, *g.Trick.LeadSuit) {
		return fmt.Errorf("%w: player can follow suit", ErrRevealNotAllowed)
	}
	return nil
}

func canDeclarerReveal(g *GameState, player int) error {
	if player != g.Trump.Declarer {
		return fmt.Errorf("%w: only the declarer can reveal", ErrRevealNotAllowed)
	}
	if g.Trump.Revealed {
		return fmt.Errorf("%w: trump already revealed", ErrRevealNotAllowed)
	}
	if g.Trump.FinalSuit == nil {
		return fmt.Errorf("%w: trump not finalized", ErrRevealNotAllowed)
	}
	if lead := g.Trick.LeadSuit; lead != nil && hasSuit(g.Players[player].Hand, *lead) {
		return fmt.Errorf("%w: declarer can follow suit", ErrRevealNotAllowed)
	}
	return nil
}

func applyRequestReveal(g *GameState, player int) error {
	if player != turnInTrick(g) {
		return ErrWrongTurn
	}
	if err := canRequestReveal(g, player); err != nil {
		return err
	}
	revealTrump(g)
	g.Trick.RevealRequestedBy = intPtr(player)
	return nil
}

func applyDeclarerReveal(g *GameState, player int) error {
	if player != turnInTrick(g) {
		return ErrWrongTurn
	}
	if err := canDeclarerReveal(g, player); err != nil {
		return err
	}
	revealTrump(g)
	return nil
}

// forcedReveal reports whether the declarer's next play must be the folded
// card, revealed by the engine.
func forcedReveal(g *GameState, player int) bool {
	t := g.Trump
	if player != t.Declarer || t.Revealed || t.FoldedReturned || t.Folded == nil {
		return false
	}
	hand := g.Players[player].Hand
	if len(hand) == 0 {
		return true
	}
	if g.Rules.ForcedReveal != ForcedRevealTrumpLed {
		return false
	}
	lead := g.Trick.LeadSuit
	return lead != nil && *lead == t.Folded.Suit && !hasSuit(hand, t.Folded.Suit)
}
