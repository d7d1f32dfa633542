package engine

import "fmt"

func startBidding1(g *GameState) {
	g.Bidding = BiddingState{
		Round: 1,
		Turn:  nextSeat(g, g.Dealer),
	}
	g.Phase = PhaseBidding1
}

// startBidding2 opens the second auction. A player who passed in round 1
// without ever bidding sits it out; the provisional bidder always takes part.
func startBidding2(g *GameState) {
	for i := range g.Players {
		p := &g.Players[i]
		p.PassedRound2 = !eligibleRound2(*p) && i != g.Trump.ProvisionalBidder
	}
	g.Bidding.Round = 2
	g.Bidding.Turn = g.Dealer
	g.Bidding.Turn = nextBidTurn(g)
	g.Phase = PhaseBidding2
}

func eligibleRound2(p PlayerState) bool {
	return !p.PassedRound1 || p.BidRound1
}

func passedThisRound(g *GameState, player int) bool {
	if g.Bidding.Round == 1 {
		return g.Players[player].PassedRound1
	}
	return g.Players[player].PassedRound2
}

func activeBidders(g *GameState) []int {
	out := []int{}
	for i := range g.Players {
		if !passedThisRound(g, i) {
			out = append(out, i)
		}
	}
	return out
}

func nextBidTurn(g *GameState) int {
	for i := 1; i <= g.Rules.Players; i++ {
		n := (g.Bidding.Turn + i) % g.Rules.Players
		if !passedThisRound(g, n) {
			return n
		}
	}
	return g.Bidding.Turn
}

// highBid returns the highest non-pass bid placed in the given auction round.
func highBid(g *GameState, round int) *Bid {
	var best *Bid
	for i := range g.Bidding.Bids {
		b := &g.Bidding.Bids[i]
		if b.Pass || b.Round != round {
			continue
		}
		if best == nil || b.Amount > best.Amount {
			best = b
		}
	}
	return best
}

// minimumBid is the smallest amount the current auction accepts.
func minimumBid(g *GameState) int {
	floor := g.Rules.MinBid
	if hi := highBid(g, 1); hi != nil && hi.Amount+1 > floor {
		floor = hi.Amount + 1
	}
	if g.Bidding.Round == 2 {
		if hi := highBid(g, 2); hi != nil && hi.Amount+1 > floor {
			floor = hi.Amount + 1
		}
	}
	return floor
}

func applyBid(g *GameState, player int, a Action) error {
	if a.Type != ActionBid && a.Type != ActionPass {
		return fmt.Errorf("%w: %v during bidding", ErrWrongPhase, a.Type)
	}
	if player != g.Bidding.Turn {
		return ErrWrongTurn
	}
	if passedThisRound(g, player) {
		return fmt.Errorf("%w: player %d already passed", ErrInvalidBid, player)
	}

	round := g.Bidding.Round
	bid := Bid{Player: player, Round: round, Seq: len(g.Bidding.Bids)}

	switch a.Type {
	case ActionPass:
		if round == 1 && highBid(g, 1) == nil && len(activeBidders(g)) == 1 {
			return fmt.Errorf("%w: last player must open the bidding", ErrInvalidBid)
		}
		bid.Pass = true
		if round == 1 {
			g.Players[player].PassedRound1 = true
		} else {
			g.Players[player].PassedRound2 = true
		}
	case ActionBid:
		if a.Bid > g.Rules.MaxBid {
			return fmt.Errorf("%w: %d above maximum %d", ErrInvalidBid, a.Bid, g.Rules.MaxBid)
		}
		if floor := minimumBid(g); a.Bid < floor {
			return fmt.Errorf("%w: %d below minimum %d", ErrInvalidBid, a.Bid, floor)
		}
		honors := a.Bid >= g.Rules.HonorsThreshold
		if a.Honors && !honors {
			return fmt.Errorf("%w: %d is below the honors threshold %d", ErrInvalidBid, a.Bid, g.Rules.HonorsThreshold)
		}
		bid.Amount = a.Bid
		bid.Honors = honors
		if round == 1 {
			g.Players[player].BidRound1 = true
		}
	}
	g.Bidding.Bids = append(g.Bidding.Bids, bid)

	if round == 1 {
		advanceBidding1(g)
	} else {
		advanceBidding2(g)
	}
	return nil
}

func advanceBidding1(g *GameState) {
	active := activeBidders(g)
	if len(active) == 1 && highBid(g, 1) != nil {
		winner := *highBid(g, 1)
		g.Trump.ProvisionalBidder = active[0]
		g.Bidding.Contract = &winner
		g.Bidding.ContractRound = 1
		g.Phase = PhaseBidding1Complete
		return
	}
	g.Bidding.Turn = nextBidTurn(g)
}

func advanceBidding2(g *GameState) {
	active := activeBidders(g)
	high := highBid(g, 2)
	switch {
	case high == nil && len(active) == 0:
		g.Trump.Declarer = g.Trump.ProvisionalBidder
	case high != nil && len(active) <= 1:
		winner := *high
		g.Trump.Declarer = winner.Player
		g.Bidding.Contract = &winner
		g.Bidding.ContractRound = 2
	default:
		g.Bidding.Turn = nextBidTurn(g)
		return
	}
	g.Phase = PhaseBidding2Complete
}

// legalBids lists the pass option plus every accepted amount for the player.
func legalBids(g GameState, player int) []Action {
	if player != g.Bidding.Turn || passedThisRound(&g, player) {
		return nil
	}
	out := []Action{}
	if !(g.Bidding.Round == 1 && highBid(&g, 1) == nil && len(activeBidders(&g)) == 1) {
		out = append(out, Action{Type: ActionPass})
	}
	for bid := minimumBid(&g); bid <= g.Rules.MaxBid; bid++ {
		out = append(out, Action{Type: ActionBid, Bid: bid})
	}
	return out
}
