package engine

import "fmt"

type ActionType int

const (
	ActionDeal ActionType = iota
	ActionBid
	ActionPass
	ActionFoldTrump
	ActionKeepTrump
	ActionChangeTrump
	ActionPlayCard
	ActionRequestReveal
	ActionRevealTrump
	ActionConfirmTrick
)

func (t ActionType) String() string {
	switch t {
	case ActionDeal:
		return "deal"
	case ActionBid:
		return "bid"
	case ActionPass:
		return "pass"
	case ActionFoldTrump:
		return "fold_trump"
	case ActionKeepTrump:
		return "keep_trump"
	case ActionChangeTrump:
		return "change_trump"
	case ActionPlayCard:
		return "play_card"
	case ActionRequestReveal:
		return "request_reveal"
	case ActionRevealTrump:
		return "reveal_trump"
	case ActionConfirmTrick:
		return "confirm_trick"
	default:
		return "unknown"
	}
}

type Action struct {
	Type   ActionType
	Bid    int
	Honors bool
	Card   *Card
}

func (a Action) String() string {
	switch {
	case a.Type == ActionBid:
		return fmt.Sprintf("bid(%d)", a.Bid)
	case a.Card != nil:
		return fmt.Sprintf("%v(%s)", a.Type, a.Card)
	default:
		return a.Type.String()
	}
}

// System actions advance the game without belonging to any seat.
func (a Action) System() bool {
	return a.Type == ActionDeal || a.Type == ActionConfirmTrick
}

// CurrentPlayer returns the seat expected to act in the current phase.
func CurrentPlayer(g GameState) (int, bool) {
	switch g.Phase {
	case PhaseBidding1, PhaseBidding2:
		return g.Bidding.Turn, true
	case PhaseBidding1Complete:
		return g.Trump.ProvisionalBidder, g.Trump.ProvisionalBidder >= 0
	case PhaseBidding2Complete:
		return g.Trump.Declarer, g.Trump.Declarer >= 0
	case PhasePlaying:
		return turnInTrick(&g), true
	default:
		return -1, false
	}
}

// LegalActions lists what player may do now. Ordering is deterministic:
// bids ascend, cards follow hand order, reveal options come last.
func LegalActions(g GameState, player int) []Action {
	switch g.Phase {
	case PhaseSetup, PhaseRoundComplete:
		return []Action{{Type: ActionDeal}}
	case PhaseTrickComplete:
		return []Action{{Type: ActionConfirmTrick}}
	case PhaseBidding1, PhaseBidding2:
		return legalBids(g, player)
	case PhaseBidding1Complete:
		if player != g.Trump.ProvisionalBidder {
			return nil
		}
		return cardActions(ActionFoldTrump, g.Players[player].Hand)
	case PhaseBidding2Complete:
		return legalFinalizations(g, player)
	case PhasePlaying:
		return legalPlays(g, player)
	default:
		return nil
	}
}

func legalFinalizations(g GameState, player int) []Action {
	if player != g.Trump.Declarer {
		return nil
	}
	same := g.Trump.Declarer == g.Trump.ProvisionalBidder
	raised := highBid(&g, 2) != nil
	out := []Action{}
	if same {
		out = append(out, Action{Type: ActionKeepTrump})
	}
	if !same || raised {
		out = append(out, cardActions(ActionChangeTrump, g.Players[player].Hand)...)
	}
	return out
}

func legalPlays(g GameState, player int) []Action {
	if player != turnInTrick(&g) {
		return nil
	}
	if forcedReveal(&g, player) {
		return []Action{{Type: ActionPlayCard, Card: cardPtr(*g.Trump.Folded)}}
	}
	out := cardActions(ActionPlayCard, legalCards(&g, player))
	if canRequestReveal(&g, player) == nil {
		out = append(out, Action{Type: ActionRequestReveal})
	}
	if canDeclarerReveal(&g, player) == nil {
		out = append(out, Action{Type: ActionRevealTrump})
	}
	return out
}

func cardActions(t ActionType, cards []Card) []Action {
	out := make([]Action, 0, len(cards))
	for i := range cards {
		out = append(out, Action{Type: t, Card: cardPtr(cards[i])})
	}
	return out
}

// ApplyAction validates and applies a on behalf of player. On error g is
// left untouched. System actions (deal, confirm trick) ignore player.
func ApplyAction(g *GameState, player int, a Action) error {
	next := g.Clone()
	if err := dispatch(&next, player, a); err != nil {
		return err
	}
	if err := CheckTransition(*g, next); err != nil {
		panic(fmt.Errorf("%w: after %v by %d: %v", ErrInconsistentTrumpState, a, player, err))
	}
	next.Turn, _ = CurrentPlayer(next)
	*g = next
	return nil
}

func dispatch(g *GameState, player int, a Action) error {
	if !a.System() && (player < 0 || player >= len(g.Players)) {
		return fmt.Errorf("%w: unknown player %d", ErrWrongTurn, player)
	}
	switch g.Phase {
	case PhaseSetup, PhaseRoundComplete:
		if a.Type != ActionDeal {
			return fmt.Errorf("%w: %v in %v", ErrWrongPhase, a.Type, g.Phase)
		}
		if g.Phase == PhaseRoundComplete {
			g.Dealer = nextSeat(g, g.Dealer)
		}
		g.Round++
		startRound(g)
		return nil
	case PhaseBidding1, PhaseBidding2:
		return applyBid(g, player, a)
	case PhaseBidding1Complete:
		return applyProvisionalFold(g, player, a)
	case PhaseBidding2Complete:
		return applyFinalizeTrump(g, player, a)
	case PhasePlaying:
		switch a.Type {
		case ActionPlayCard:
			return applyPlay(g, player, a)
		case ActionRequestReveal:
			return applyRequestReveal(g, player)
		case ActionRevealTrump:
			return applyDeclarerReveal(g, player)
		default:
			return fmt.Errorf("%w: %v in %v", ErrWrongPhase, a.Type, g.Phase)
		}
	case PhaseTrickComplete:
		if a.Type != ActionConfirmTrick {
			return fmt.Errorf("%w: %v in %v", ErrWrongPhase, a.Type, g.Phase)
		}
		return applyConfirmTrick(g)
	case PhaseGameOver:
		return fmt.Errorf("%w: game is over", ErrWrongPhase)
	default:
		panic(fmt.Errorf("%w: unknown phase %d", ErrInconsistentTrumpState, int(g.Phase)))
	}
}
