package engine

import "fmt"

// startPlay opens trick play; the seat after the dealer leads the first trick.
func startPlay(g *GameState) {
	g.Trick = Trick{Leader: nextSeat(g, g.Dealer)}
	g.CompletedTricks = nil
	g.Phase = PhasePlaying
}

// turnInTrick is the seat expected to play the next card of the trick.
func turnInTrick(g *GameState) int {
	return (g.Trick.Leader + len(g.Trick.Plays)) % g.Rules.Players
}

func applyPlay(g *GameState, player int, a Action) error {
	if a.Card == nil {
		return fmt.Errorf("%w: no card given", ErrIllegalPlay)
	}
	if player != turnInTrick(g) {
		return ErrWrongTurn
	}
	if forcedReveal(g, player) {
		revealTrump(g)
		if *a.Card != *g.Trump.FinalCard {
			return fmt.Errorf("%w: declarer must play the folded card %s", ErrIllegalPlay, g.Trump.FinalCard)
		}
	}
	card := *a.Card
	if !containsCard(g.Players[player].Hand, card) {
		return ErrCardNotInHand
	}
	if !containsCard(legalCards(g, player), card) {
		return fmt.Errorf("%w: %s", ErrIllegalPlay, card)
	}

	removeCard(&g.Players[player].Hand, card)
	if len(g.Trick.Plays) == 0 {
		g.Trick.LeadSuit = suitPtr(card.Suit)
	}
	g.Trick.Plays = append(g.Trick.Plays, Play{Player: player, Card: card})

	if len(g.Trick.Plays) == g.Rules.Players {
		idx := trickWinner(g.Trick.Plays, g.Trump.FinalSuit, g.Trump.Revealed)
		g.Trick.Winner = intPtr(g.Trick.Plays[idx].Player)
		g.Trick.Points = trickPoints(g.Trick.Plays)
		g.Phase = PhaseTrickComplete
	}
	return nil
}

// applyConfirmTrick files the completed trick with its winner and either
// opens the next trick or scores the round.
func applyConfirmTrick(g *GameState) error {
	if g.Trick.Winner == nil {
		panic(fmt.Errorf("%w: completed trick has no winner", ErrInconsistentTrumpState))
	}
	winner := *g.Trick.Winner
	done := g.Trick
	g.Players[winner].WonTricks = append(g.Players[winner].WonTricks, done)
	g.CompletedTricks = append(g.CompletedTricks, done)
	g.Trick = Trick{Leader: winner}

	if roundOver(g) {
		scoreRound(g)
		return nil
	}
	g.Phase = PhasePlaying
	return nil
}

func roundOver(g *GameState) bool {
	if g.Trump.Folded != nil {
		return false
	}
	for _, p := range g.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}
