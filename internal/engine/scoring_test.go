package engine

import (
	"slices"
	"testing"
)

func scoredState(t *testing.T, r Rules, declarer int, contract Bid, contractRound int, won map[int]int) GameState {
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
	g.Trump.Declarer = declarer
	g.Bidding.Contract = &contract
	g.Bidding.ContractRound = contractRound
	for seat := range g.Players {
		pts, ok := won[seat]
		if !ok {
			continue
		}
		g.CompletedTricks = append(g.CompletedTricks, Trick{Winner: intPtr(seat), Points: pts})
	}
	return g
}

func TestContractAwardTable(t *testing.T) {
	cases := []struct {
		round  int
		honors bool
		made   int
		failed int
	}{
		{1, false, 1, 2},
		{1, true, 2, 3},
		{2, false, 2, 3},
		{2, true, 3, 4},
	}
	for _, tc := range cases {
		if got := ContractAward(tc.round, tc.honors, true); got != tc.made {
			t.Fatalf("round %d honors %v made: got %d want %d", tc.round, tc.honors, got, tc.made)
		}
		if got := ContractAward(tc.round, tc.honors, false); got != tc.failed {
			t.Fatalf("round %d honors %v failed: got %d want %d", tc.round, tc.honors, got, tc.failed)
		}
	}
}

func TestFailedHonorsContractPaysEachOpponent(t *testing.T) {
	g := scoredState(t, ThreePlayerPreset(), 0,
		Bid{Amount: 22, Player: 0, Honors: true, Round: 1}, 1,
		map[int]int{0: 18, 1: 5, 2: 5})
	scoreRound(&g)

	rs := g.Scores[0]
	if rs.Made || rs.DeclarerPoints != 18 || rs.OpponentPoints != 10 {
		t.Fatalf("unexpected round score %+v", rs)
	}
	if !slices.Equal(g.Totals, []int{0, 3, 3}) {
		t.Fatalf("totals: got %v", g.Totals)
	}
	if g.Phase != PhaseRoundComplete {
		t.Fatalf("expected round_complete, got %v", g.Phase)
	}
}

func TestTeamContractMade(t *testing.T) {
	g := scoredState(t, FourPlayerPreset(), 1,
		Bid{Amount: 16, Player: 1, Round: 2}, 2,
		map[int]int{1: 8, 3: 10, 0: 6, 2: 4})
	scoreRound(&g)

	rs := g.Scores[0]
	if !rs.Made || rs.DeclarerSide != 1 || rs.DeclarerPoints != 18 || rs.OpponentPoints != 10 {
		t.Fatalf("unexpected round score %+v", rs)
	}
	if !slices.Equal(g.Totals, []int{0, 2}) {
		t.Fatalf("totals: got %v", g.Totals)
	}
}

func TestGameOverAtTarget(t *testing.T) {
	g := scoredState(t, ThreePlayerPreset(), 0,
		Bid{Amount: 22, Player: 0, Honors: true, Round: 1}, 1,
		map[int]int{0: 18, 1: 5, 2: 5})
	g.Totals = []int{0, 3, 4}
	scoreRound(&g)

	if g.Phase != PhaseGameOver {
		t.Fatalf("expected game_over, got %v", g.Phase)
	}
	if w := Winners(g); !slices.Equal(w, []int{1, 2}) {
		t.Fatalf("winners: got %v", w)
	}
	if err := ApplyAction(&g, -1, Action{Type: ActionDeal}); err == nil {
		t.Fatalf("deal accepted after game over")
	}
}
