package engine

type awardKey struct {
	round  int
	honors bool
}

type award struct {
	made   int
	failed int
}

// awards holds the game points for a contract, keyed by the bidding round
// that fixed it and whether it was an honors bid.
var awards = map[awardKey]award{
	{round: 1, honors: false}: {made: 1, failed: 2},
	{round: 1, honors: true}:  {made: 2, failed: 3},
	{round: 2, honors: false}: {made: 2, failed: 3},
	{round: 2, honors: true}:  {made: 3, failed: 4},
}

// ContractAward returns the game points a contract pays when made or failed.
func ContractAward(round int, honors bool, made bool) int {
	a := awards[awardKey{round: round, honors: honors}]
	if made {
		return a.made
	}
	return a.failed
}

// sidePoints totals card points won by each scoring side.
func sidePoints(g *GameState) []int {
	pts := make([]int, g.Sides())
	for _, t := range g.CompletedTricks {
		if t.Winner == nil {
			continue
		}
		pts[g.Side(*t.Winner)] += t.Points
	}
	return pts
}

// scoreRound settles the contract and moves to round_complete or game_over.
// When a contract fails in three-player mode every opponent receives the
// full award.
func scoreRound(g *GameState) {
	contract := g.Bidding.Contract
	declarer := g.Trump.Declarer
	declSide := g.Side(declarer)

	pts := sidePoints(g)
	opp := 0
	for side, p := range pts {
		if side != declSide {
			opp += p
		}
	}

	rs := RoundScore{
		Round:          g.Round,
		Declarer:       declarer,
		DeclarerSide:   declSide,
		Contract:       contract.Amount,
		ContractRound:  g.Bidding.ContractRound,
		Honors:         contract.Honors,
		DeclarerPoints: pts[declSide],
		OpponentPoints: opp,
		Awards:         make([]int, g.Sides()),
	}
	rs.Made = rs.DeclarerPoints >= rs.Contract
	value := ContractAward(rs.ContractRound, rs.Honors, rs.Made)
	if rs.Made {
		rs.Awards[declSide] = value
	} else {
		for side := range rs.Awards {
			if side != declSide {
				rs.Awards[side] = value
			}
		}
	}

	for side, v := range rs.Awards {
		g.Totals[side] += v
	}
	g.Scores = append(g.Scores, rs)

	for _, total := range g.Totals {
		if total >= g.Rules.TargetScore {
			g.Phase = PhaseGameOver
			return
		}
	}
	g.Phase = PhaseRoundComplete
}

// Winners lists the sides whose total reached the target score.
func Winners(g GameState) []int {
	out := []int{}
	for side, total := range g.Totals {
		if total >= g.Rules.TargetScore {
			out = append(out, side)
		}
	}
	return out
}
