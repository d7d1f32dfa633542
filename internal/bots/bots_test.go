package bots

import (
	"fmt"
	"testing"

	"twentyeight/internal/engine"
)

type actionRecord struct {
	round  int
	step   int
	phase  engine.Phase
	player int
	action engine.Action
}

func TestBotSelfPlayManySeeds(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		if err := runBotSelfPlay(seed, 3, 400); err != nil {
			t.Fatalf("bot self-play failed: %v", err)
		}
	}
}

func FuzzBotSelfPlay(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(42))
	f.Add(int64(20260211))
	f.Fuzz(func(t *testing.T, seed int64) {
		if err := runBotSelfPlay(seed, 2, 400); err != nil {
			t.Fatalf("bot self-play failed: %v", err)
		}
	})
}

func TestRandomBotIsSeeded(t *testing.T) {
	g, err := engine.InitializeGame([]string{"a", "b", "c"}, engine.ModeThreePlayer, 0, 5)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := engine.DealInitialCards(&g); err != nil {
		t.Fatalf("deal: %v", err)
	}
	a, b := NewRandom(3), NewRandom(3)
	for i := 0; i < 20; i++ {
		if x, y := a.ChooseAction(g, 1), b.ChooseAction(g, 1); x.String() != y.String() {
			t.Fatalf("same seed chose %v and %v", x, y)
		}
	}
}

func TestLowBotShedsCheapestCard(t *testing.T) {
	legal := []engine.Action{
		{Type: engine.ActionPlayCard, Card: &engine.Card{Suit: engine.SuitHearts, Rank: engine.RankJ}},
		{Type: engine.ActionPlayCard, Card: &engine.Card{Suit: engine.SuitHearts, Rank: engine.RankK}},
		{Type: engine.ActionPlayCard, Card: &engine.Card{Suit: engine.SuitHearts, Rank: engine.RankQ}},
		{Type: engine.ActionRequestReveal},
	}
	got := lowestLegalPlay(legal)
	if got.Card == nil || got.Card.Rank != engine.RankQ {
		t.Fatalf("expected queen, got %v", got)
	}
}

func runBotSelfPlay(seed int64, rounds int, maxSteps int) error {
	state, err := engine.InitializeGame([]string{"a", "b", "c", "d"}, engine.ModeFourPlayer, 0, seed)
	if err != nil {
		return err
	}
	seats := map[int]Bot{
		0: NewRandom(seed + 10),
		1: NewLow(),
		2: NewRandom(seed + 30),
		3: NewLow(),
	}

	for r := 0; r < rounds && state.Phase != engine.PhaseGameOver; r++ {
		if err := engine.DealInitialCards(&state); err != nil {
			return failure(seed, r, 0, state.Phase, -1, nil, fmt.Sprintf("deal: %v", err))
		}
		records := []actionRecord{}
		for step := 0; step < maxSteps; step++ {
			if state.Phase == engine.PhaseRoundComplete || state.Phase == engine.PhaseGameOver {
				break
			}
			if state.Phase == engine.PhaseTrickComplete {
				if err := engine.ConfirmTrick(&state); err != nil {
					return failure(seed, r, step, state.Phase, -1, records, fmt.Sprintf("confirm: %v", err))
				}
				continue
			}
			player, ok := engine.CurrentPlayer(state)
			if !ok {
				return failure(seed, r, step, state.Phase, -1, records, "no current player")
			}
			if len(engine.LegalActions(state, player)) == 0 {
				return failure(seed, r, step, state.Phase, player, records, "no legal actions")
			}
			action := seats[player].ChooseAction(state, player)
			if err := engine.ApplyAction(&state, player, action); err != nil {
				return failure(seed, r, step, state.Phase, player, records, fmt.Sprintf("apply error: %v", err))
			}
			records = append(records, actionRecord{round: r, step: step, phase: state.Phase, player: player, action: action})
		}
		if state.Phase != engine.PhaseRoundComplete && state.Phase != engine.PhaseGameOver {
			return failure(seed, r, maxSteps, state.Phase, -1, records, "round did not finish")
		}
	}
	return nil
}

func failure(seed int64, round int, step int, phase engine.Phase, player int, records []actionRecord, reason string) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	log := ""
	for _, r := range records[start:] {
		log += fmt.Sprintf("[r%d s%d p%d %v] %v\n", r.round, r.step, r.player, r.phase, r.action)
	}
	return fmt.Errorf("seed=%d round=%d step=%d phase=%v player=%d reason=%s\nlast actions:\n%s",
		seed, round, step, phase, player, reason, log)
}
