package engine

import "fmt"

// CheckInvariants verifies card conservation and trump bookkeeping. A
// violation can only come from an engine bug, never from caller input.
func CheckInvariants(g GameState) error {
	if g.Phase == PhaseSetup {
		return nil
	}
	total, dup := countCards(g)
	if want := len(BuildDeck(g.Rules)); total != want {
		return fmt.Errorf("card count mismatch: %d, want %d", total, want)
	}
	if dup != nil {
		return fmt.Errorf("duplicate card detected: %s", dup)
	}
	if len(g.Trick.Plays) > g.Rules.Players {
		return fmt.Errorf("invalid trick size: %d", len(g.Trick.Plays))
	}

	t := g.Trump
	if t.FoldedReturned && t.Folded != nil {
		return fmt.Errorf("folded card %s returned but still concealed", t.Folded)
	}
	if t.Revealed && t.Folded != nil {
		return fmt.Errorf("trump revealed while %s is still concealed", t.Folded)
	}
	switch g.Phase {
	case PhaseBidding2, PhaseBidding2Complete, PhasePlaying, PhaseTrickComplete:
		if !t.FoldedReturned && t.Folded == nil {
			return fmt.Errorf("no folded card in %v", g.Phase)
		}
	}
	switch g.Phase {
	case PhasePlaying, PhaseTrickComplete:
		if t.FinalCard == nil || t.FinalSuit == nil || t.Declarer < 0 {
			return fmt.Errorf("trick play without a final trump")
		}
		if t.Folded != nil && *t.Folded != *t.FinalCard {
			return fmt.Errorf("folded card %s differs from final trump card %s", t.Folded, t.FinalCard)
		}
	}
	if g.Phase == PhasePlaying && len(g.Trick.Plays) >= g.Rules.Players {
		return fmt.Errorf("complete trick left in play")
	}
	return nil
}

// CheckTransition checks next on its own and the monotonic trump flags
// against prev within the same round.
func CheckTransition(prev, next GameState) error {
	if err := CheckInvariants(next); err != nil {
		return err
	}
	if prev.Round != next.Round {
		return nil
	}
	if prev.Trump.Revealed && !next.Trump.Revealed {
		return fmt.Errorf("trump reveal reverted")
	}
	if prev.Trump.FoldedReturned && !next.Trump.FoldedReturned {
		return fmt.Errorf("folded card return reverted")
	}
	return nil
}

func countCards(g GameState) (int, *Card) {
	seen := map[Card]bool{}
	total := 0
	var dup *Card
	add := func(c Card) {
		total++
		if seen[c] && dup == nil {
			dup = cardPtr(c)
		}
		seen[c] = true
	}
	for _, c := range g.Deck {
		add(c)
	}
	for _, p := range g.Players {
		for _, c := range p.Hand {
			add(c)
		}
	}
	if g.Trump.Folded != nil {
		add(*g.Trump.Folded)
	}
	for _, pl := range g.Trick.Plays {
		add(pl.Card)
	}
	for _, t := range g.CompletedTricks {
		for _, pl := range t.Plays {
			add(pl.Card)
		}
	}
	return total, dup
}
